//go:build unit

package config_test

import (
	"testing"

	"seat-reservation/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *config.ReservationConfig)
		wantErr string
	}{
		{
			name:   "test defaults are valid",
			mutate: func(c *config.ReservationConfig) {},
		},
		{
			name:    "zero hold window",
			mutate:  func(c *config.ReservationConfig) { c.HoldWindow = 0 },
			wantErr: "HOLD_WINDOW",
		},
		{
			name:    "negative stale threshold",
			mutate:  func(c *config.ReservationConfig) { c.PaymentStaleAfter = -1 },
			wantErr: "PAYMENT_STALE_AFTER",
		},
		{
			name:    "zero sweep interval",
			mutate:  func(c *config.ReservationConfig) { c.PaymentSweepInterval = 0 },
			wantErr: "sweep intervals",
		},
		{
			name:    "zero batch limit would stop the reclaimer",
			mutate:  func(c *config.ReservationConfig) { c.HoldSweepBatchLimit = 0 },
			wantErr: "HOLD_SWEEP_BATCH_LIMIT",
		},
		{
			name:    "negative batch limit",
			mutate:  func(c *config.ReservationConfig) { c.HoldSweepBatchLimit = -5 },
			wantErr: "HOLD_SWEEP_BATCH_LIMIT",
		},
		{
			name:    "success rate above one",
			mutate:  func(c *config.ReservationConfig) { c.PaymentSuccessRate = 1.5 },
			wantErr: "PAYMENT_SUCCESS_RATE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.NewTestConfig().Reservation
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadConfigRejectsZeroBatchLimit(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "seats")
	t.Setenv("HOLD_SWEEP_BATCH_LIMIT", "0")

	_, err := config.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOLD_SWEEP_BATCH_LIMIT")
}
