//go:build unit

package event_test

import (
	"testing"
	"time"

	"seat-reservation/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	date := time.Date(2025, 12, 24, 19, 0, 0, 0, time.UTC)

	e, err := event.New("  Winter Gala ", date)
	require.NoError(t, err)
	assert.Equal(t, "Winter Gala", e.Title())
	assert.Equal(t, date, e.EventDate())

	_, err = event.New(" ", date)
	assert.ErrorIs(t, err, event.ErrEmptyTitle)

	_, err = event.New("Gala", time.Time{})
	assert.ErrorIs(t, err, event.ErrInvalidEventDate)
}

func TestSeatNumbers(t *testing.T) {
	numbers, err := event.SeatNumbers(3)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, numbers)

	_, err = event.SeatNumbers(0)
	assert.ErrorIs(t, err, event.ErrInvalidSeatCount)
}
