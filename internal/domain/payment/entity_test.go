//go:build unit

package payment_test

import (
	"strings"
	"testing"
	"time"

	"seat-reservation/internal/domain/payment"
	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain", input: "k1", want: "k1"},
		{name: "inner space kept", input: "order 42", want: "order 42"},
		{name: "leading space", input: "  order-42", wantErr: errs.ErrInvalidIdempotencyKey},
		{name: "trailing space", input: "k1 ", wantErr: errs.ErrInvalidIdempotencyKey},
		{name: "empty", input: "", wantErr: errs.ErrMissingIdempotencyKey},
		{name: "blank", input: "   ", wantErr: errs.ErrMissingIdempotencyKey},
		{name: "too long", input: strings.Repeat("a", 256), wantErr: errs.ErrInvalidIdempotencyKey},
		{name: "control character", input: "k\x001", wantErr: errs.ErrInvalidIdempotencyKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := payment.NewIdempotencyKey(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Value())
		})
	}
}

func TestSettle(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	key, err := payment.NewIdempotencyKey("k1")
	require.NoError(t, err)

	t.Run("approved", func(t *testing.T) {
		p := payment.NewPending(uuid.New(), key, now)
		require.NoError(t, p.Settle(true, now.Add(time.Second)))
		assert.Equal(t, payment.StatusSuccess, p.Status())
		assert.Equal(t, now.Add(time.Second), p.UpdatedAt())
		assert.Equal(t, now, p.CreatedAt())
	})

	t.Run("declined", func(t *testing.T) {
		p := payment.NewPending(uuid.New(), key, now)
		require.NoError(t, p.Settle(false, now))
		assert.Equal(t, payment.StatusFailed, p.Status())
	})

	t.Run("settled payments are immutable", func(t *testing.T) {
		p := payment.NewPending(uuid.New(), key, now)
		require.NoError(t, p.Settle(true, now))
		assert.ErrorIs(t, p.Settle(false, now), payment.ErrAlreadySettled)
		assert.ErrorIs(t, p.Abandon(now), payment.ErrAlreadySettled)
		assert.Equal(t, payment.StatusSuccess, p.Status())
	})
}

func TestStaleness(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	old, err := payment.Reconstruct(uuid.New(), uuid.New(), "k1", "pending", now.Add(-6*time.Minute), now.Add(-6*time.Minute))
	require.NoError(t, err)
	fresh, err := payment.Reconstruct(uuid.New(), uuid.New(), "k2", "pending", now.Add(-time.Minute), now.Add(-time.Minute))
	require.NoError(t, err)
	settled, err := payment.Reconstruct(uuid.New(), uuid.New(), "k3", "success", now.Add(-time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)

	assert.True(t, old.IsStale(now, 5*time.Minute))
	assert.False(t, fresh.IsStale(now, 5*time.Minute))
	assert.False(t, settled.IsStale(now, 5*time.Minute))

	require.NoError(t, old.Abandon(now))
	assert.Equal(t, payment.StatusFailed, old.Status())

	_, err = payment.Reconstruct(uuid.New(), uuid.New(), "k4", "refunded", now, now)
	assert.ErrorIs(t, err, payment.ErrInvalidStatus)
}
