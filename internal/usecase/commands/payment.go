package commands

import (
	"context"
	"log/slog"

	"seat-reservation/internal/domain/payment"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/queries"
	"seat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment.go -package=commandsmock

type SubmitPaymentResult struct {
	Payment    *queries.PaymentView
	IsReplayed bool
}

type PaymentCommands interface {
	// SubmitPayment returns errs.ErrPaymentFailed together with the stored
	// result when the gateway declines a first attempt.
	SubmitPayment(ctx context.Context, bookingID uuid.UUID, idempotencyKey string) (*SubmitPaymentResult, error)
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
	logger  *slog.Logger
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock, logger *slog.Logger) PaymentCommands {
	return &paymentCommandsImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
		logger:  logger,
	}
}

func (uc *paymentCommandsImpl) SubmitPayment(ctx context.Context, bookingID uuid.UUID, idempotencyKey string) (*SubmitPaymentResult, error) {
	key, err := payment.NewIdempotencyKey(idempotencyKey)
	if err != nil {
		return nil, err
	}

	snap, err := uc.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var (
		stored   *payment.Payment
		replayed bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, replayed = nil, false

		existing, err := uc.findByKey(ctx, tx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			stored, replayed = existing, true
			return nil
		}

		p := payment.NewPending(snap.ID, key, uc.clock.Now())
		inserted, err := tx.Payments().InsertPending(ctx, tx.DB(), p)
		if err != nil {
			return err
		}
		if !inserted {
			// A concurrent request with the same key committed first.
			existing, err := tx.Payments().FindByIdempotencyKey(ctx, tx.DB(), key)
			if err != nil {
				return err
			}
			stored, replayed = existing, true
			return nil
		}

		approved, err := uc.gateway.Authorize(ctx, snap.ID, key.Value())
		if err != nil {
			return errs.Mark(errs.Wrap(err, "payment gateway unavailable"), errs.ErrPaymentFailed)
		}

		now := uc.clock.Now()
		if err := p.Settle(approved, now); err != nil {
			return err
		}
		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), p); err != nil {
			return err
		}

		topic := shared.TopicPaymentFailed
		if approved {
			topic = shared.TopicPaymentSucceeded
		}
		bookingRef, paymentRef := snap.ID, p.ID()
		if err := shared.EnqueueLifecycleEvent(ctx, tx, topic, shared.LifecycleEvent{
			SeatID:     snap.SeatID,
			EventID:    snap.EventID,
			BookingID:  &bookingRef,
			PaymentID:  &paymentRef,
			OccurredAt: now,
		}); err != nil {
			return err
		}

		stored = p
		return nil
	})
	if err != nil {
		return nil, commandError(err)
	}

	result := &SubmitPaymentResult{
		Payment:    toPaymentView(stored),
		IsReplayed: replayed,
	}

	if replayed {
		uc.logger.InfoContext(ctx, "payment replayed", "payment_id", stored.ID(), "status", stored.Status().String())
		return result, nil
	}

	uc.logger.InfoContext(ctx, "payment processed",
		"payment_id", stored.ID(),
		"booking_id", snap.ID,
		"status", stored.Status().String(),
	)
	if stored.Status() == payment.StatusFailed {
		return result, errs.ErrPaymentFailed
	}
	return result, nil
}

func (uc *paymentCommandsImpl) findByKey(ctx context.Context, tx shared.Tx, key payment.IdempotencyKey) (*payment.Payment, error) {
	p, err := tx.Payments().FindByIdempotencyKey(ctx, tx.DB(), key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func toPaymentView(p *payment.Payment) *queries.PaymentView {
	return &queries.PaymentView{
		ID:             p.ID(),
		BookingID:      p.BookingID(),
		IdempotencyKey: p.IdempotencyKey().Value(),
		Status:         p.Status().String(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}
