package gateway

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

// SimulatedGateway approves a payment with a fixed probability.
type SimulatedGateway struct {
	successRate float64
	draw        func() float64
	logger      *slog.Logger
}

func NewSimulatedGateway(successRate float64, logger *slog.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		successRate: successRate,
		draw:        rand.Float64,
		logger:      logger,
	}
}

// NewSimulatedGatewayWithSource replaces the random source, for deterministic runs.
func NewSimulatedGatewayWithSource(successRate float64, draw func() float64, logger *slog.Logger) *SimulatedGateway {
	g := NewSimulatedGateway(successRate, logger)
	g.draw = draw
	return g
}

func (g *SimulatedGateway) Authorize(ctx context.Context, bookingID uuid.UUID, idempotencyKey string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	approved := g.draw() < g.successRate
	g.logger.DebugContext(ctx, "payment gateway decision",
		"booking_id", bookingID,
		"idempotency_key", idempotencyKey,
		"approved", approved,
	)
	return approved, nil
}
