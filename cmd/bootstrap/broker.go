package bootstrap

import (
	"context"
	"log/slog"

	"seat-reservation/internal/infra/broker"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/usecase/jobs"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(jobs.EventPublisher)),
		),
	),
)

// NewEventPublisher connects lazily on first publish, so a broker that is
// down at startup only delays the outbox.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) broker.Publisher {
	var p broker.Publisher
	if cfg.Broker.URL == "" {
		logger.Info("broker disabled, lifecycle events are logged only")
		p = broker.NewLogPublisher(logger)
	} else {
		p = broker.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange, logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
