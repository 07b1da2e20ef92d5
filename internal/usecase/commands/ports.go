package commands

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// PaymentGateway decides the outcome of a charge. Implementations must be
// safe to call with the same idempotency key more than once.
type PaymentGateway interface {
	Authorize(ctx context.Context, bookingID uuid.UUID, idempotencyKey string) (bool, error)
}
