package queries

import (
	"context"

	"seat-reservation/internal/infra"
	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type PaymentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
}

type BookingQueries interface {
	GetBookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	payments PaymentReadStore
}

func NewBookingQueries(bookings BookingReadStore, payments PaymentReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, payments: payments}
}

func (q *bookingQueriesImpl) GetBookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

func (q *bookingQueriesImpl) GetPaymentByID(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	p, err := q.payments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPaymentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return p, nil
}
