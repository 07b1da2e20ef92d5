package queries

import (
	"time"

	"github.com/google/uuid"
)

// EventView represents an event with its seat counts by status
type EventView struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	EventDate      time.Time `json:"event_date"`
	CreatedAt      time.Time `json:"created_at"`
	TotalSeats     int64     `json:"total_seats"`
	AvailableSeats int64     `json:"available_seats"`
	HeldSeats      int64     `json:"held_seats"`
	BookedSeats    int64     `json:"booked_seats"`
}

// SeatView represents a seat joined with its live hold, if any
type SeatView struct {
	ID            uuid.UUID  `json:"id"`
	EventID       uuid.UUID  `json:"event_id"`
	SeatNumber    int32      `json:"seat_number"`
	Status        string     `json:"status"`
	HoldID        *uuid.UUID `json:"hold_id,omitempty"`
	HeldBy        *string    `json:"held_by,omitempty"`
	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"`
}

type BookingView struct {
	ID         uuid.UUID `json:"id"`
	SeatID     uuid.UUID `json:"seat_id"`
	EventID    uuid.UUID `json:"event_id"`
	SeatNumber int32     `json:"seat_number"`
	SeatStatus string    `json:"seat_status"`
	UserEmail  string    `json:"user_email"`
	CreatedAt  time.Time `json:"created_at"`
}

type PaymentView struct {
	ID             uuid.UUID `json:"id"`
	BookingID      uuid.UUID `json:"booking_id"`
	IdempotencyKey string    `json:"idempotency_key"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
