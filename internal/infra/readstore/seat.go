package readstore

import (
	"context"
	"time"

	"seat-reservation/internal/infra"
	sqlc "seat-reservation/internal/infra/sqlc/generated"
	"seat-reservation/internal/pkg/pgconv"
	"seat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type SeatReadQueries interface {
	ListSeatsWithLiveHold(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSeatsWithLiveHoldParams) ([]sqlc.ListSeatsWithLiveHoldRow, error)
	GetSeatWithLiveHold(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSeatWithLiveHoldParams) (sqlc.GetSeatWithLiveHoldRow, error)
}

type SeatReadStore struct {
	queries SeatReadQueries
	db      sqlc.DBTX
}

func NewSeatReadStore(queries SeatReadQueries, db sqlc.DBTX) *SeatReadStore {
	return &SeatReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByEvent joins each seat with the hold that is live at now.
func (s *SeatReadStore) ListByEvent(ctx context.Context, eventID uuid.UUID, now time.Time) ([]*queries.SeatView, error) {
	rows, err := s.queries.ListSeatsWithLiveHold(ctx, s.db, sqlc.ListSeatsWithLiveHoldParams{
		Now:     pgconv.TimeToPgtype(now),
		EventID: eventID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seats", err)
	}

	result := make([]*queries.SeatView, len(rows))
	for i, row := range rows {
		result[i] = &queries.SeatView{
			ID:            row.ID,
			EventID:       row.EventID,
			SeatNumber:    row.SeatNumber,
			Status:        row.Status,
			HoldID:        pgconv.UUIDPtrFromPgtype(row.HoldID),
			HeldBy:        pgconv.StringPtrFromPgtype(row.HeldBy),
			HoldExpiresAt: pgconv.TimePtrFromPgtype(row.HoldExpiresAt),
		}
	}
	return result, nil
}

func (s *SeatReadStore) FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*queries.SeatView, error) {
	row, err := s.queries.GetSeatWithLiveHold(ctx, s.db, sqlc.GetSeatWithLiveHoldParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seat not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seat by ID", err)
	}

	return &queries.SeatView{
		ID:            row.ID,
		EventID:       row.EventID,
		SeatNumber:    row.SeatNumber,
		Status:        row.Status,
		HoldID:        pgconv.UUIDPtrFromPgtype(row.HoldID),
		HeldBy:        pgconv.StringPtrFromPgtype(row.HeldBy),
		HoldExpiresAt: pgconv.TimePtrFromPgtype(row.HoldExpiresAt),
	}, nil
}
