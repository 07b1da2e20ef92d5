package repository

import (
	"context"
	"time"

	"seat-reservation/internal/domain/seat"
	"seat-reservation/internal/infra"
	sqlc "seat-reservation/internal/infra/sqlc/generated"
	"seat-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=seat.go -destination=../../../tests/mock/repository/seat.go -package=repositorymock

type SeatWriteQueries interface {
	LockSeatForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Seats, error)
	UpdateSeatStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSeatStatusParams) error
}

type SeatRepository struct {
	queries SeatWriteQueries
	db      sqlc.DBTX
}

func NewSeatRepository(queries SeatWriteQueries, db sqlc.DBTX) *SeatRepository {
	return &SeatRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SeatRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*seat.Seat, error) {
	row, err := r.queries.LockSeatForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seat not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock seat", err)
	}

	s, err := seat.Reconstruct(row.ID, row.EventID, row.SeatNumber, row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct seat", err)
	}
	return s, nil
}

func (r *SeatRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, s *seat.Seat, now time.Time) error {
	params := sqlc.UpdateSeatStatusParams{
		ID:        s.ID(),
		Status:    s.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}

	if err := r.queries.UpdateSeatStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update seat status", err)
	}
	return nil
}
