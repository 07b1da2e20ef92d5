package jobs

import (
	"context"
	"log/slog"
	"time"

	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// PaymentRecoverer fails payments stuck in pending and frees their seats.
type PaymentRecoverer struct {
	uow        shared.UnitOfWork
	seatMap    shared.SeatMapInvalidator
	clock      clock.Clock
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewPaymentRecoverer(
	uow shared.UnitOfWork,
	seatMap shared.SeatMapInvalidator,
	clk clock.Clock,
	cfg config.ReservationConfig,
	logger *slog.Logger,
) *PaymentRecoverer {
	return &PaymentRecoverer{
		uow:        uow,
		seatMap:    seatMap,
		clock:      clk,
		staleAfter: cfg.PaymentStaleAfter,
		logger:     logger.With("job", "payment_recoverer"),
	}
}

// Run handles every stale payment in one transaction. Each payment gets its
// own savepoint so one failure does not undo the others.
func (r *PaymentRecoverer) Run(ctx context.Context) (int, error) {
	var (
		recovered int
		touched   map[uuid.UUID]struct{}
	)

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		recovered, touched = 0, make(map[uuid.UUID]struct{})
		now := r.clock.Now()

		stale, err := tx.Payments().LockStalePending(ctx, tx.DB(), now.Add(-r.staleAfter))
		if err != nil {
			return err
		}

		for _, sp := range stale {
			var eventID uuid.UUID
			err := tx.Savepoint(ctx, func(ctx context.Context) error {
				s, err := tx.Seats().LockByID(ctx, tx.DB(), sp.SeatID)
				if err != nil {
					return err
				}
				s.Forfeit()
				if err := tx.Seats().UpdateStatus(ctx, tx.DB(), s, now); err != nil {
					return err
				}

				if err := sp.Payment.Abandon(now); err != nil {
					return err
				}
				if err := tx.Payments().UpdateStatus(ctx, tx.DB(), sp.Payment); err != nil {
					return err
				}

				bookingID, paymentID := sp.Payment.BookingID(), sp.Payment.ID()
				eventID = s.EventID()
				return shared.EnqueueLifecycleEvent(ctx, tx, shared.TopicPaymentAbandoned, shared.LifecycleEvent{
					SeatID:     s.ID(),
					EventID:    s.EventID(),
					BookingID:  &bookingID,
					PaymentID:  &paymentID,
					OccurredAt: now,
				})
			})
			if err != nil {
				r.logger.WarnContext(ctx, "failed to recover payment", "payment_id", sp.Payment.ID(), "error", err.Error())
				continue
			}
			recovered++
			touched[eventID] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for eventID := range touched {
		r.seatMap.Invalidate(ctx, eventID)
	}
	if recovered > 0 {
		r.logger.InfoContext(ctx, "payment sweep finished", "recovered", recovered)
	}
	return recovered, nil
}
