package commands

import (
	"context"
	"log/slog"
	"time"

	"seat-reservation/internal/domain/hold"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=hold.go -destination=../../../tests/mock/commands/hold.go -package=commandsmock

type CreateHoldResult struct {
	HoldID    uuid.UUID
	SeatID    uuid.UUID
	EventID   uuid.UUID
	ExpiresAt time.Time
}

type HoldCommands interface {
	CreateHold(ctx context.Context, seatID uuid.UUID, userEmail string) (*CreateHoldResult, error)
}

type holdCommandsImpl struct {
	uow        shared.UnitOfWork
	seatMap    shared.SeatMapInvalidator
	clock      clock.Clock
	holdWindow time.Duration
	logger     *slog.Logger
}

func NewHoldCommands(
	uow shared.UnitOfWork,
	seatMap shared.SeatMapInvalidator,
	clk clock.Clock,
	cfg config.ReservationConfig,
	logger *slog.Logger,
) HoldCommands {
	return &holdCommandsImpl{
		uow:        uow,
		seatMap:    seatMap,
		clock:      clk,
		holdWindow: cfg.HoldWindow,
		logger:     logger,
	}
}

// CreateHold locks the seat row and moves it from available to held.
// Concurrent callers for the same seat serialize on that lock, so exactly one wins.
func (uc *holdCommandsImpl) CreateHold(ctx context.Context, seatID uuid.UUID, userEmail string) (*CreateHoldResult, error) {
	email, err := hold.NewEmail(userEmail)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var result *CreateHoldResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		s, err := tx.Seats().LockByID(ctx, tx.DB(), seatID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrSeatNotFound)
			}
			return err
		}

		if err := s.Hold(); err != nil {
			return err
		}

		h, err := hold.New(s.ID(), email, now, uc.holdWindow)
		if err != nil {
			return err
		}

		if err := tx.Holds().Create(ctx, tx.DB(), h); err != nil {
			return err
		}
		if err := tx.Seats().UpdateStatus(ctx, tx.DB(), s, now); err != nil {
			return err
		}

		holdID := h.ID()
		if err := shared.EnqueueLifecycleEvent(ctx, tx, shared.TopicSeatHeld, shared.LifecycleEvent{
			SeatID:     s.ID(),
			EventID:    s.EventID(),
			HoldID:     &holdID,
			OccurredAt: now,
		}); err != nil {
			return err
		}

		result = &CreateHoldResult{
			HoldID:    h.ID(),
			SeatID:    s.ID(),
			EventID:   s.EventID(),
			ExpiresAt: h.ExpiresAt(),
		}
		return nil
	})
	if err != nil {
		return nil, commandError(err)
	}

	uc.seatMap.Invalidate(ctx, result.EventID)
	uc.logger.InfoContext(ctx, "seat held",
		"seat_id", result.SeatID,
		"hold_id", result.HoldID,
		"expires_at", result.ExpiresAt,
	)
	return result, nil
}
