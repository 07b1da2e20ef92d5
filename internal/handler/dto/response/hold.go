package response

import (
	"time"

	"seat-reservation/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HoldResponse struct {
	HoldID    uuid.UUID `json:"hold_id"`
	SeatID    uuid.UUID `json:"seat_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type BookingCreatedResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	SeatID    uuid.UUID `json:"seat_id"`
}

func FromCreateHoldResult(r *commands.CreateHoldResult) (*HoldResponse, error) {
	var resp HoldResponse
	if err := copier.Copy(&resp, r); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromCreateBookingResult(r *commands.CreateBookingResult) (*BookingCreatedResponse, error) {
	var resp BookingCreatedResponse
	if err := copier.Copy(&resp, r); err != nil {
		return nil, err
	}
	return &resp, nil
}
