package repository

import (
	"context"
	"time"

	"seat-reservation/internal/domain/hold"
	"seat-reservation/internal/infra"
	sqlc "seat-reservation/internal/infra/sqlc/generated"
	"seat-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=hold.go -destination=../../../tests/mock/repository/hold.go -package=repositorymock

type HoldWriteQueries interface {
	CreateHold(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHoldParams) error
	LockLiveHold(ctx context.Context, db sqlc.DBTX, arg sqlc.LockLiveHoldParams) (sqlc.SeatHolds, error)
	LockNextExpiredHold(ctx context.Context, db sqlc.DBTX, arg sqlc.LockNextExpiredHoldParams) (sqlc.SeatHolds, error)
	DeleteHold(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type HoldRepository struct {
	queries HoldWriteQueries
	db      sqlc.DBTX
}

func NewHoldRepository(queries HoldWriteQueries, db sqlc.DBTX) *HoldRepository {
	return &HoldRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HoldRepository) Create(ctx context.Context, tx sqlc.DBTX, h *hold.Hold) error {
	params := sqlc.CreateHoldParams{
		ID:        h.ID(),
		SeatID:    h.SeatID(),
		UserEmail: h.Email().Value(),
		ExpiresAt: pgconv.TimeToPgtype(h.ExpiresAt()),
		CreatedAt: pgconv.TimeToPgtype(h.CreatedAt()),
	}

	if err := r.queries.CreateHold(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create hold", err)
	}
	return nil
}

func (r *HoldRepository) LockLive(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) (*hold.Hold, error) {
	row, err := r.queries.LockLiveHold(ctx, tx, sqlc.LockLiveHoldParams{
		ID:  id,
		Now: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("live hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock hold", err)
	}
	return toHold(row), nil
}

func (r *HoldRepository) LockNextExpired(ctx context.Context, tx sqlc.DBTX, now time.Time, exclude []uuid.UUID) (*hold.Hold, error) {
	if exclude == nil {
		exclude = []uuid.UUID{}
	}

	row, err := r.queries.LockNextExpiredHold(ctx, tx, sqlc.LockNextExpiredHoldParams{
		Now:        pgconv.TimeToPgtype(now),
		ExcludeIds: exclude,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no expired hold", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock expired hold", err)
	}
	return toHold(row), nil
}

func (r *HoldRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.DeleteHold(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to delete hold", err)
	}
	return nil
}

func toHold(row sqlc.SeatHolds) *hold.Hold {
	return hold.Reconstruct(
		row.ID,
		row.SeatID,
		row.UserEmail,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
