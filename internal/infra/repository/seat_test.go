//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seat-reservation/internal/domain/seat"
	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/repository"
	sqlc "seat-reservation/internal/infra/sqlc/generated"
	repositorymock "seat-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// LockByID Tests
// =============================================================================

func TestSeatRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	seatID, eventID := uuid.New(), uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockSeatWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: seat locked",
			setupMock: func(mock *repositorymock.MockSeatWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockSeatForUpdate(ctx, tx, seatID).
					Return(sqlc.Seats{ID: seatID, EventID: eventID, SeatNumber: 7, Status: "held"}, nil)
			},
		},
		{
			name: "error: seat does not exist",
			setupMock: func(mock *repositorymock.MockSeatWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockSeatForUpdate(ctx, tx, seatID).Return(sqlc.Seats{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: lock timeout",
			setupMock: func(mock *repositorymock.MockSeatWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockSeatForUpdate(ctx, tx, seatID).
					Return(sqlc.Seats{}, &pgconn.PgError{Code: "55P03", Message: "could not obtain lock on row"})
			},
			expectKind: infra.KindLockNotAvailable,
		},
		{
			name: "error: unknown status in row",
			setupMock: func(mock *repositorymock.MockSeatWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockSeatForUpdate(ctx, tx, seatID).
					Return(sqlc.Seats{ID: seatID, EventID: eventID, SeatNumber: 7, Status: "cancelled"}, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSeatWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSeatRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			s, err := repo.LockByID(ctx, mockDB, seatID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, seatID, s.ID())
			assert.Equal(t, eventID, s.EventID())
			assert.Equal(t, int32(7), s.Number())
			assert.Equal(t, seat.StatusHeld, s.Status())
		})
	}
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestSeatRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success: writes the entity status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSeatWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSeatRepository(mockQueries, mockDB)

		s, err := seat.Reconstruct(uuid.New(), uuid.New(), 1, "available")
		require.NoError(t, err)
		require.NoError(t, s.Hold())

		mockQueries.EXPECT().UpdateSeatStatus(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateSeatStatusParams) error {
				assert.Equal(t, s.ID(), arg.ID)
				assert.Equal(t, "held", arg.Status)
				assert.True(t, arg.UpdatedAt.Valid)
				assert.True(t, now.Equal(arg.UpdatedAt.Time))
				return nil
			})

		require.NoError(t, repo.UpdateStatus(ctx, mockDB, s, now))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSeatWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSeatRepository(mockQueries, mockDB)

		s, _ := seat.Reconstruct(uuid.New(), uuid.New(), 1, "held")
		mockQueries.EXPECT().UpdateSeatStatus(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))

		err := repo.UpdateStatus(ctx, mockDB, s, now)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
