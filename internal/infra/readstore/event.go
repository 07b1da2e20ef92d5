package readstore

import (
	"context"

	"seat-reservation/internal/infra"
	sqlc "seat-reservation/internal/infra/sqlc/generated"
	"seat-reservation/internal/pkg/pgconv"
	"seat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventReadQueries interface {
	ListEventsWithSeatCounts(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListEventsWithSeatCountsRow, error)
	GetEventWithSeatCounts(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetEventWithSeatCountsRow, error)
}

type EventReadStore struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries EventReadQueries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *EventReadStore) List(ctx context.Context) ([]*queries.EventView, error) {
	rows, err := s.queries.ListEventsWithSeatCounts(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}

	result := make([]*queries.EventView, len(rows))
	for i, row := range rows {
		result[i] = &queries.EventView{
			ID:             row.ID,
			Title:          row.Title,
			EventDate:      pgconv.TimeFromPgtype(row.EventDate),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
			TotalSeats:     row.TotalSeats,
			AvailableSeats: row.AvailableSeats,
			HeldSeats:      row.HeldSeats,
			BookedSeats:    row.BookedSeats,
		}
	}
	return result, nil
}

func (s *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row, err := s.queries.GetEventWithSeatCounts(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	return &queries.EventView{
		ID:             row.ID,
		Title:          row.Title,
		EventDate:      pgconv.TimeFromPgtype(row.EventDate),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		TotalSeats:     row.TotalSeats,
		AvailableSeats: row.AvailableSeats,
		HeldSeats:      row.HeldSeats,
		BookedSeats:    row.BookedSeats,
	}, nil
}
