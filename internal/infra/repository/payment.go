package repository

import (
	"context"
	"time"

	"seat-reservation/internal/domain/payment"
	"seat-reservation/internal/infra"
	sqlc "seat-reservation/internal/infra/sqlc/generated"
	"seat-reservation/internal/pkg/pgconv"
	"seat-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/repository/payment.go -package=repositorymock

type PaymentWriteQueries interface {
	GetPaymentByIdempotencyKey(ctx context.Context, db sqlc.DBTX, idempotencyKey string) (sqlc.Payments, error)
	InsertPendingPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPendingPaymentParams) (sqlc.Payments, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) error
	LockStalePendingPayments(ctx context.Context, db sqlc.DBTX, cutoff pgtype.Timestamptz) ([]sqlc.LockStalePendingPaymentsRow, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) FindByIdempotencyKey(ctx context.Context, tx sqlc.DBTX, key payment.IdempotencyKey) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByIdempotencyKey(ctx, tx, key.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by idempotency key", err)
	}
	return toPayment(row)
}

// InsertPending relies on ON CONFLICT DO NOTHING: a concurrent insert of the
// same key blocks until the other transaction ends and then yields no row.
func (r *PaymentRepository) InsertPending(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (bool, error) {
	_, err := r.queries.InsertPendingPayment(ctx, tx, sqlc.InsertPendingPaymentParams{
		ID:             p.ID(),
		BookingID:      p.BookingID(),
		IdempotencyKey: p.IdempotencyKey().Value(),
		CreatedAt:      pgconv.TimeToPgtype(p.CreatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert pending payment", err)
	}
	return true, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	err := r.queries.UpdatePaymentStatus(ctx, tx, sqlc.UpdatePaymentStatusParams{
		ID:        p.ID(),
		Status:    p.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	return nil
}

func (r *PaymentRepository) LockStalePending(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) ([]*shared.StalePayment, error) {
	rows, err := r.queries.LockStalePendingPayments(ctx, tx, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock stale payments", err)
	}

	result := make([]*shared.StalePayment, 0, len(rows))
	for _, row := range rows {
		p, err := payment.Reconstruct(
			row.ID,
			row.BookingID,
			row.IdempotencyKey,
			row.Status,
			pgconv.TimeFromPgtype(row.CreatedAt),
			pgconv.TimeFromPgtype(row.UpdatedAt),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to reconstruct payment", err)
		}
		result = append(result, &shared.StalePayment{Payment: p, SeatID: row.SeatID})
	}
	return result, nil
}

func toPayment(row sqlc.Payments) (*payment.Payment, error) {
	p, err := payment.Reconstruct(
		row.ID,
		row.BookingID,
		row.IdempotencyKey,
		row.Status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct payment", err)
	}
	return p, nil
}
