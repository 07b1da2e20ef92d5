package readstore

import (
	"context"

	"seat-reservation/internal/infra"
	sqlc "seat-reservation/internal/infra/sqlc/generated"
	"seat-reservation/internal/pkg/pgconv"
	"seat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := s.queries.GetBookingByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &queries.BookingView{
		ID:         row.ID,
		SeatID:     row.SeatID,
		EventID:    row.EventID,
		SeatNumber: row.SeatNumber,
		SeatStatus: row.SeatStatus,
		UserEmail:  row.UserEmail,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
