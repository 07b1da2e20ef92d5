package commands

import (
	"context"
	"log/slog"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type CreateBookingResult struct {
	BookingID uuid.UUID
	SeatID    uuid.UUID
	EventID   uuid.UUID
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, holdID uuid.UUID) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	seatMap shared.SeatMapInvalidator
	clock   clock.Clock
	logger  *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, seatMap shared.SeatMapInvalidator, clk clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		seatMap: seatMap,
		clock:   clk,
		logger:  logger,
	}
}

// CreateBooking converts a live hold into a booking.
// Lock order is hold then seat, the same order the reclaimer uses.
func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, holdID uuid.UUID) (*CreateBookingResult, error) {
	var result *CreateBookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		h, err := tx.Holds().LockLive(ctx, tx.DB(), holdID, now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrInvalidOrExpiredHold)
			}
			return err
		}

		s, err := tx.Seats().LockByID(ctx, tx.DB(), h.SeatID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrSeatNotFound)
			}
			return err
		}

		if err := s.Book(); err != nil {
			return err
		}

		b := booking.FromHold(h, now)
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}
		if err := tx.Seats().UpdateStatus(ctx, tx.DB(), s, now); err != nil {
			return err
		}
		if err := tx.Holds().Delete(ctx, tx.DB(), h.ID()); err != nil {
			return err
		}

		heldID, bookingID := h.ID(), b.ID()
		if err := shared.EnqueueLifecycleEvent(ctx, tx, shared.TopicSeatBooked, shared.LifecycleEvent{
			SeatID:     s.ID(),
			EventID:    s.EventID(),
			HoldID:     &heldID,
			BookingID:  &bookingID,
			OccurredAt: now,
		}); err != nil {
			return err
		}

		result = &CreateBookingResult{
			BookingID: b.ID(),
			SeatID:    s.ID(),
			EventID:   s.EventID(),
		}
		return nil
	})
	if err != nil {
		return nil, commandError(err)
	}

	uc.seatMap.Invalidate(ctx, result.EventID)
	uc.logger.InfoContext(ctx, "seat booked", "seat_id", result.SeatID, "booking_id", result.BookingID)
	return result, nil
}
