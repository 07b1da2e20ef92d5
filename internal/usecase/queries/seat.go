package queries

import (
	"context"
	"log/slog"
	"time"

	"seat-reservation/internal/infra"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=seat.go -destination=../../../tests/mock/queries/seat.go -package=queriesmock

type SeatReadStore interface {
	ListByEvent(ctx context.Context, eventID uuid.UUID, now time.Time) ([]*SeatView, error)
	FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*SeatView, error)
}

// SeatMapCache holds the per event seat map between status changes.
type SeatMapCache interface {
	Get(ctx context.Context, eventID uuid.UUID) ([]*SeatView, bool, error)
	Set(ctx context.Context, eventID uuid.UUID, seats []*SeatView) error
}

type SeatQueries interface {
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*SeatView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SeatView, error)
}

type seatQueriesImpl struct {
	store  SeatReadStore
	cache  SeatMapCache
	clock  clock.Clock
	logger *slog.Logger
}

func NewSeatQueries(store SeatReadStore, cache SeatMapCache, clock clock.Clock, logger *slog.Logger) SeatQueries {
	return &seatQueriesImpl{
		store:  store,
		cache:  cache,
		clock:  clock,
		logger: logger,
	}
}

// ListByEvent serves the seat map from cache when possible. Cache errors fall
// through to the database.
func (q *seatQueriesImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*SeatView, error) {
	seats, ok, err := q.cache.Get(ctx, eventID)
	if err != nil {
		q.logger.WarnContext(ctx, "seat map cache read failed", "event_id", eventID, "error", err.Error())
	} else if ok {
		return seats, nil
	}

	seats, err = q.store.ListByEvent(ctx, eventID, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := q.cache.Set(ctx, eventID, seats); err != nil {
		q.logger.WarnContext(ctx, "seat map cache write failed", "event_id", eventID, "error", err.Error())
	}
	return seats, nil
}

func (q *seatQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SeatView, error) {
	s, err := q.store.FindByID(ctx, id, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSeatNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return s, nil
}
