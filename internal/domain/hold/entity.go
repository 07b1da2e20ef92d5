package hold

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidWindow = errors.New("hold window must be positive")

// Hold is a time boxed reservation of one seat by one holder.
type Hold struct {
	id        uuid.UUID
	seatID    uuid.UUID
	email     Email
	expiresAt time.Time
	createdAt time.Time
}

func New(seatID uuid.UUID, email Email, now time.Time, window time.Duration) (*Hold, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	return &Hold{
		id:        uuid.New(),
		seatID:    seatID,
		email:     email,
		expiresAt: now.Add(window),
		createdAt: now,
	}, nil
}

func Reconstruct(id, seatID uuid.UUID, email string, expiresAt, createdAt time.Time) *Hold {
	return &Hold{
		id:        id,
		seatID:    seatID,
		email:     Email{value: email},
		expiresAt: expiresAt,
		createdAt: createdAt,
	}
}

func (h *Hold) ID() uuid.UUID        { return h.id }
func (h *Hold) SeatID() uuid.UUID    { return h.seatID }
func (h *Hold) Email() Email         { return h.email }
func (h *Hold) ExpiresAt() time.Time { return h.expiresAt }
func (h *Hold) CreatedAt() time.Time { return h.createdAt }

// IsLive reports whether the hold still reserves its seat at now.
// A hold whose expires_at equals now is already expired.
func (h *Hold) IsLive(now time.Time) bool {
	return h.expiresAt.After(now)
}
