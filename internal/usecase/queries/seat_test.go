//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"seat-reservation/internal/infra"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/queries"
	queriesmock "seat-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var queryNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newSeatQueries(t *testing.T) (queries.SeatQueries, *queriesmock.MockSeatReadStore, *queriesmock.MockSeatMapCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSeatReadStore(ctrl)
	cache := queriesmock.NewMockSeatMapCache(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return queries.NewSeatQueries(store, cache, clock.NewMockClock(queryNow), logger), store, cache
}

func TestSeatQueries_ListByEvent(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	seats := []*queries.SeatView{
		{ID: uuid.New(), EventID: eventID, SeatNumber: 1, Status: "available"},
		{ID: uuid.New(), EventID: eventID, SeatNumber: 2, Status: "booked"},
	}

	t.Run("cache hit skips the database", func(t *testing.T) {
		q, _, cache := newSeatQueries(t)
		cache.EXPECT().Get(ctx, eventID).Return(seats, true, nil)

		got, err := q.ListByEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, seats, got)
	})

	t.Run("cache miss loads and fills the cache", func(t *testing.T) {
		q, store, cache := newSeatQueries(t)
		gomock.InOrder(
			cache.EXPECT().Get(ctx, eventID).Return(nil, false, nil),
			store.EXPECT().ListByEvent(ctx, eventID, queryNow).Return(seats, nil),
			cache.EXPECT().Set(ctx, eventID, seats).Return(nil),
		)

		got, err := q.ListByEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("cache failures fall back to the database", func(t *testing.T) {
		q, store, cache := newSeatQueries(t)
		cache.EXPECT().Get(ctx, eventID).Return(nil, false, errors.New("dial tcp: connection refused"))
		store.EXPECT().ListByEvent(ctx, eventID, queryNow).Return(seats, nil)
		cache.EXPECT().Set(ctx, eventID, seats).Return(errors.New("dial tcp: connection refused"))

		got, err := q.ListByEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, seats, got)
	})

	t.Run("database failure is internal", func(t *testing.T) {
		q, store, cache := newSeatQueries(t)
		cache.EXPECT().Get(ctx, eventID).Return(nil, false, nil)
		store.EXPECT().ListByEvent(ctx, eventID, queryNow).Return(nil, errors.New("timeout"))

		_, err := q.ListByEvent(ctx, eventID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestSeatQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown seat", func(t *testing.T) {
		q, store, _ := newSeatQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id, queryNow).
			Return(nil, infra.WrapRepoErr("seat not found", errors.New("no rows"), infra.KindNotFound))

		_, err := q.GetByID(ctx, id)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSeatNotFound))
	})
}
