package components

import (
	"log/slog"

	"seat-reservation/internal/infra/gateway"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/usecase/commands"
	"seat-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPaymentGateway,
		fx.As(new(commands.PaymentGateway)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewHoldCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEventQueries,
		queries.NewSeatQueries,
		queries.NewBookingQueries,
	),
)

func NewPaymentGateway(cfg config.ReservationConfig, logger *slog.Logger) *gateway.SimulatedGateway {
	return gateway.NewSimulatedGateway(cfg.PaymentSuccessRate, logger)
}
