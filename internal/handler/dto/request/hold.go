package request

import (
	"github.com/google/uuid"
)

type CreateHoldRequest struct {
	SeatID    uuid.UUID `json:"seat_id" binding:"required"`
	UserEmail string    `json:"user_email" binding:"required,seatemail"`
}

type CreateBookingRequest struct {
	HoldID uuid.UUID `json:"hold_id" binding:"required"`
}

type SubmitPaymentRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}

type ListSeatsQuery struct {
	EventID string `form:"event_id" binding:"required,uuid"`
}
