//go:build unit

package seat_test

import (
	"testing"

	"seat-reservation/internal/domain/seat"
	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeat(t *testing.T, status seat.Status) *seat.Seat {
	t.Helper()
	s, err := seat.Reconstruct(uuid.New(), uuid.New(), 7, status.String())
	require.NoError(t, err)
	return s
}

func TestReconstruct(t *testing.T) {
	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := seat.Reconstruct(uuid.New(), uuid.New(), 1, "reserved")
		assert.ErrorIs(t, err, seat.ErrInvalidStatus)
	})

	t.Run("keeps identity", func(t *testing.T) {
		id, eventID := uuid.New(), uuid.New()
		s, err := seat.Reconstruct(id, eventID, 12, "booked")
		require.NoError(t, err)
		assert.Equal(t, id, s.ID())
		assert.Equal(t, eventID, s.EventID())
		assert.Equal(t, int32(12), s.Number())
		assert.Equal(t, seat.StatusBooked, s.Status())
	})
}

func TestSeatTransitions(t *testing.T) {
	testCases := []struct {
		name       string
		from       seat.Status
		transition func(*seat.Seat) error
		wantErr    error
		wantStatus seat.Status
	}{
		{name: "hold available", from: seat.StatusAvailable, transition: (*seat.Seat).Hold, wantStatus: seat.StatusHeld},
		{name: "hold held", from: seat.StatusHeld, transition: (*seat.Seat).Hold, wantErr: errs.ErrSeatUnavailable, wantStatus: seat.StatusHeld},
		{name: "hold booked", from: seat.StatusBooked, transition: (*seat.Seat).Hold, wantErr: errs.ErrSeatUnavailable, wantStatus: seat.StatusBooked},
		{name: "book held", from: seat.StatusHeld, transition: (*seat.Seat).Book, wantStatus: seat.StatusBooked},
		{name: "book available", from: seat.StatusAvailable, transition: (*seat.Seat).Book, wantErr: errs.ErrSeatNotHeld, wantStatus: seat.StatusAvailable},
		{name: "book booked", from: seat.StatusBooked, transition: (*seat.Seat).Book, wantErr: errs.ErrSeatNotHeld, wantStatus: seat.StatusBooked},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSeat(t, tc.from)
			err := tc.transition(s)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantStatus, s.Status())
		})
	}
}

func TestReleaseHold(t *testing.T) {
	held := newSeat(t, seat.StatusHeld)
	assert.True(t, held.ReleaseHold())
	assert.Equal(t, seat.StatusAvailable, held.Status())

	booked := newSeat(t, seat.StatusBooked)
	assert.False(t, booked.ReleaseHold())
	assert.Equal(t, seat.StatusBooked, booked.Status())
}

func TestForfeit(t *testing.T) {
	for _, st := range []seat.Status{seat.StatusAvailable, seat.StatusHeld, seat.StatusBooked} {
		s := newSeat(t, st)
		s.Forfeit()
		assert.Equal(t, seat.StatusAvailable, s.Status(), "from %s", st)
	}
}
