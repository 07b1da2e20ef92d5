package booking

import (
	"time"

	"seat-reservation/internal/domain/hold"

	"github.com/google/uuid"
)

// Booking is a permanent confirmed reservation. It is never updated or deleted.
type Booking struct {
	id        uuid.UUID
	seatID    uuid.UUID
	email     string
	createdAt time.Time
}

// FromHold converts a live hold into a booking for the same seat and holder.
func FromHold(h *hold.Hold, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		seatID:    h.SeatID(),
		email:     h.Email().Value(),
		createdAt: now,
	}
}

func Reconstruct(id, seatID uuid.UUID, email string, createdAt time.Time) *Booking {
	return &Booking{id: id, seatID: seatID, email: email, createdAt: createdAt}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) SeatID() uuid.UUID    { return b.seatID }
func (b *Booking) Email() string        { return b.email }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
