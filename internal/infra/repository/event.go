package repository

import (
	"context"

	"seat-reservation/internal/domain/event"
	"seat-reservation/internal/infra"
	sqlc "seat-reservation/internal/infra/sqlc/generated"
	"seat-reservation/internal/pkg/pgconv"
)

//go:generate mockgen -source=event.go -destination=../../../tests/mock/repository/event.go -package=repositorymock

type EventWriteQueries interface {
	CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) error
	CreateSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSeatsParams) (int64, error)
}

type EventRepository struct {
	queries EventWriteQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventWriteQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the event and one available seat per number.
func (r *EventRepository) Create(ctx context.Context, tx sqlc.DBTX, ev *event.Event, seatNumbers []int32) (int64, error) {
	err := r.queries.CreateEvent(ctx, tx, sqlc.CreateEventParams{
		ID:        ev.ID(),
		Title:     ev.Title(),
		EventDate: pgconv.TimeToPgtype(ev.EventDate()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create event", err)
	}

	n, err := r.queries.CreateSeats(ctx, tx, sqlc.CreateSeatsParams{
		EventID:     ev.ID(),
		SeatNumbers: seatNumbers,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create seats", err)
	}
	return n, nil
}
