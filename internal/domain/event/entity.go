package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("event title is required")
	ErrInvalidEventDate = errors.New("event date is required")
	ErrInvalidSeatCount = errors.New("seat count must be positive")
)

type Event struct {
	id        uuid.UUID
	title     string
	eventDate time.Time
}

func New(title string, eventDate time.Time) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if eventDate.IsZero() {
		return nil, ErrInvalidEventDate
	}
	return &Event{id: uuid.New(), title: title, eventDate: eventDate}, nil
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Title() string        { return e.title }
func (e *Event) EventDate() time.Time { return e.eventDate }

// SeatNumbers returns the numbers 1..count for the seats of a fresh event.
func SeatNumbers(count int) ([]int32, error) {
	if count <= 0 {
		return nil, ErrInvalidSeatCount
	}
	numbers := make([]int32, count)
	for i := range numbers {
		numbers[i] = int32(i + 1) // #nosec G115 -- bounded by count
	}
	return numbers, nil
}
