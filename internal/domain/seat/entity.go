package seat

import (
	"errors"
	"fmt"

	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid seat status")

// Seat is the root of the ledger. Its status is a summary of the hold and
// booking rows that reference it and only changes under the seat's row lock.
type Seat struct {
	id      uuid.UUID
	eventID uuid.UUID
	number  int32
	status  Status
}

func Reconstruct(id, eventID uuid.UUID, number int32, status string) (*Seat, error) {
	st := Status(status)
	if !st.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return &Seat{id: id, eventID: eventID, number: number, status: st}, nil
}

func (s *Seat) ID() uuid.UUID      { return s.id }
func (s *Seat) EventID() uuid.UUID { return s.eventID }
func (s *Seat) Number() int32      { return s.number }
func (s *Seat) Status() Status     { return s.status }

// Hold moves an available seat to held.
func (s *Seat) Hold() error {
	if s.status != StatusAvailable {
		return errs.ErrSeatUnavailable
	}
	s.status = StatusHeld
	return nil
}

// Book moves a held seat to booked.
func (s *Seat) Book() error {
	if s.status != StatusHeld {
		return errs.ErrSeatNotHeld
	}
	s.status = StatusBooked
	return nil
}

// ReleaseHold returns a held seat to available. It reports false and leaves
// the seat untouched when the seat is not held, e.g. already booked.
func (s *Seat) ReleaseHold() bool {
	if s.status != StatusHeld {
		return false
	}
	s.status = StatusAvailable
	return true
}

// Forfeit returns the seat to available whatever its status. Used when the
// payment for its booking is abandoned.
func (s *Seat) Forfeit() {
	s.status = StatusAvailable
}
