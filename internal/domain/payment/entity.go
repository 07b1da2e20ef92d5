package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = errors.New("invalid payment status")
	ErrAlreadySettled = errors.New("payment already settled")
)

type Payment struct {
	id             uuid.UUID
	bookingID      uuid.UUID
	idempotencyKey IdempotencyKey
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPending(bookingID uuid.UUID, key IdempotencyKey, now time.Time) *Payment {
	return &Payment{
		id:             uuid.New(),
		bookingID:      bookingID,
		idempotencyKey: key,
		status:         StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}
}

func Reconstruct(id, bookingID uuid.UUID, key, status string, createdAt, updatedAt time.Time) (*Payment, error) {
	st := Status(status)
	if !st.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return &Payment{
		id:             id,
		bookingID:      bookingID,
		idempotencyKey: IdempotencyKey{value: key},
		status:         st,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *Payment) ID() uuid.UUID                  { return p.id }
func (p *Payment) BookingID() uuid.UUID           { return p.bookingID }
func (p *Payment) IdempotencyKey() IdempotencyKey { return p.idempotencyKey }
func (p *Payment) Status() Status                 { return p.status }
func (p *Payment) CreatedAt() time.Time           { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time           { return p.updatedAt }

// Settle records the gateway outcome of a pending payment.
func (p *Payment) Settle(approved bool, now time.Time) error {
	if p.status != StatusPending {
		return ErrAlreadySettled
	}
	if approved {
		p.status = StatusSuccess
	} else {
		p.status = StatusFailed
	}
	p.updatedAt = now
	return nil
}

// Abandon fails a payment that stayed pending past the staleness threshold.
func (p *Payment) Abandon(now time.Time) error {
	if p.status != StatusPending {
		return ErrAlreadySettled
	}
	p.status = StatusFailed
	p.updatedAt = now
	return nil
}

// IsStale reports whether a pending payment created before now-staleAfter is stuck.
func (p *Payment) IsStale(now time.Time, staleAfter time.Duration) bool {
	return p.status == StatusPending && p.createdAt.Before(now.Add(-staleAfter))
}
