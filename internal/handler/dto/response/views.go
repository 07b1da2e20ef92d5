package response

import (
	"time"

	"seat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	EventDate      time.Time `json:"event_date"`
	CreatedAt      time.Time `json:"created_at"`
	TotalSeats     int64     `json:"total_seats"`
	AvailableSeats int64     `json:"available_seats"`
	HeldSeats      int64     `json:"held_seats"`
	BookedSeats    int64     `json:"booked_seats"`
}

type SeatResponse struct {
	ID            uuid.UUID  `json:"id"`
	EventID       uuid.UUID  `json:"event_id"`
	SeatNumber    int32      `json:"seat_number"`
	Status        string     `json:"status"`
	HoldID        *uuid.UUID `json:"hold_id,omitempty"`
	HeldBy        *string    `json:"held_by,omitempty"`
	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"`
}

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	SeatID     uuid.UUID `json:"seat_id"`
	EventID    uuid.UUID `json:"event_id"`
	SeatNumber int32     `json:"seat_number"`
	SeatStatus string    `json:"seat_status"`
	UserEmail  string    `json:"user_email"`
	CreatedAt  time.Time `json:"created_at"`
}

type PaymentResponse struct {
	ID             uuid.UUID `json:"id"`
	BookingID      uuid.UUID `json:"booking_id"`
	IdempotencyKey string    `json:"idempotency_key"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromEventViews(views []*queries.EventView) ([]EventResponse, error) {
	resp := make([]EventResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromEventView(v *queries.EventView) (*EventResponse, error) {
	var resp EventResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromSeatViews(views []*queries.SeatView) ([]SeatResponse, error) {
	resp := make([]SeatResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromSeatView(v *queries.SeatView) (*SeatResponse, error) {
	var resp SeatResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromPaymentView(v *queries.PaymentView) (*PaymentResponse, error) {
	var resp PaymentResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}
