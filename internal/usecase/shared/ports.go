package shared

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

// SeatMapInvalidator drops cached seat maps after a committed seat status change.
// Implementations log their own failures; a stale entry expires on its TTL.
type SeatMapInvalidator interface {
	Invalidate(ctx context.Context, eventID uuid.UUID)
}
