package jobs

import (
	"context"
	"log/slog"

	"seat-reservation/internal/infra"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// HoldReclaimer releases seats whose holds have expired.
type HoldReclaimer struct {
	uow        shared.UnitOfWork
	seatMap    shared.SeatMapInvalidator
	clock      clock.Clock
	batchLimit int
	logger     *slog.Logger
}

func NewHoldReclaimer(
	uow shared.UnitOfWork,
	seatMap shared.SeatMapInvalidator,
	clk clock.Clock,
	cfg config.ReservationConfig,
	logger *slog.Logger,
) *HoldReclaimer {
	return &HoldReclaimer{
		uow:        uow,
		seatMap:    seatMap,
		clock:      clk,
		batchLimit: cfg.HoldSweepBatchLimit,
		logger:     logger.With("job", "hold_reclaimer"),
	}
}

// Run reclaims expired holds one transaction each until none are left or the
// batch limit is reached. A hold whose transaction fails is skipped for the
// rest of the cycle and retried on the next one.
func (r *HoldReclaimer) Run(ctx context.Context) (int, error) {
	var (
		released int
		skipped  []uuid.UUID
		touched  = make(map[uuid.UUID]struct{})
	)
	defer func() {
		for eventID := range touched {
			r.seatMap.Invalidate(ctx, eventID)
		}
	}()

	for released+len(skipped) < r.batchLimit {
		if err := ctx.Err(); err != nil {
			return released, err
		}

		var (
			pickedID uuid.UUID
			eventID  uuid.UUID
			found    bool
		)
		err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			pickedID, found = uuid.Nil, false
			now := r.clock.Now()

			h, err := tx.Holds().LockNextExpired(ctx, tx.DB(), now, skipped)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return nil
				}
				return err
			}
			pickedID, found = h.ID(), true

			s, err := tx.Seats().LockByID(ctx, tx.DB(), h.SeatID())
			if err != nil {
				return err
			}
			if err := tx.Holds().Delete(ctx, tx.DB(), h.ID()); err != nil {
				return err
			}
			if s.ReleaseHold() {
				if err := tx.Seats().UpdateStatus(ctx, tx.DB(), s, now); err != nil {
					return err
				}
			}

			holdID := h.ID()
			eventID = s.EventID()
			return shared.EnqueueLifecycleEvent(ctx, tx, shared.TopicHoldExpired, shared.LifecycleEvent{
				SeatID:     s.ID(),
				EventID:    s.EventID(),
				HoldID:     &holdID,
				OccurredAt: now,
			})
		})
		if err != nil {
			if pickedID == uuid.Nil {
				return released, errs.Wrap(err, "failed to select expired hold")
			}
			r.logger.WarnContext(ctx, "failed to reclaim hold", "hold_id", pickedID, "error", err.Error())
			skipped = append(skipped, pickedID)
			continue
		}
		if !found {
			break
		}

		released++
		touched[eventID] = struct{}{}
	}

	if released > 0 || len(skipped) > 0 {
		r.logger.InfoContext(ctx, "hold sweep finished", "released", released, "skipped", len(skipped))
	}
	return released, nil
}
