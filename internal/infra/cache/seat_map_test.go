//go:build unit

package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"seat-reservation/internal/infra/cache"
	"seat-reservation/internal/usecase/queries"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleSeats(eventID uuid.UUID) []*queries.SeatView {
	heldBy := "alice@example.com"
	expires := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)
	holdID := uuid.New()
	return []*queries.SeatView{
		{ID: uuid.New(), EventID: eventID, SeatNumber: 1, Status: "available"},
		{ID: uuid.New(), EventID: eventID, SeatNumber: 2, Status: "held", HoldID: &holdID, HeldBy: &heldBy, HoldExpiresAt: &expires},
	}
}

func TestRedisSeatMap_Get(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	key := cache.SeatMapKey(eventID)

	t.Run("hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisSeatMap(client, 5*time.Second, discardLogger())

		want := sampleSeats(eventID)
		raw, err := json.Marshal(want)
		require.NoError(t, err)
		mock.ExpectGet(key).SetVal(string(raw))

		got, ok, err := c.Get(ctx, eventID)
		require.NoError(t, err)
		assert.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, want[1].ID, got[1].ID)
		assert.Equal(t, *want[1].HeldBy, *got[1].HeldBy)
		assert.True(t, want[1].HoldExpiresAt.Equal(*got[1].HoldExpiresAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisSeatMap(client, 5*time.Second, discardLogger())
		mock.ExpectGet(key).RedisNil()

		got, ok, err := c.Get(ctx, eventID)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisSeatMap(client, 5*time.Second, discardLogger())
		mock.ExpectGet(key).SetErr(errors.New("connection refused"))

		_, ok, err := c.Get(ctx, eventID)
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisSeatMap(client, 5*time.Second, discardLogger())
		mock.ExpectGet(key).SetVal("{not json")

		_, ok, err := c.Get(ctx, eventID)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestRedisSeatMap_Set(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	client, mock := redismock.NewClientMock()
	c := cache.NewRedisSeatMap(client, 5*time.Second, discardLogger())

	seats := sampleSeats(eventID)
	raw, err := json.Marshal(seats)
	require.NoError(t, err)
	mock.ExpectSet(cache.SeatMapKey(eventID), raw, 5*time.Second).SetVal("OK")

	require.NoError(t, c.Set(ctx, eventID, seats))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSeatMap_Invalidate(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	t.Run("deletes the key", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisSeatMap(client, 5*time.Second, discardLogger())
		mock.ExpectDel(cache.SeatMapKey(eventID)).SetVal(1)

		c.Invalidate(ctx, eventID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("errors are swallowed", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisSeatMap(client, 5*time.Second, discardLogger())
		mock.ExpectDel(cache.SeatMapKey(eventID)).SetErr(errors.New("timeout"))

		assert.NotPanics(t, func() { c.Invalidate(ctx, eventID) })
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNopSeatMap(t *testing.T) {
	var c cache.SeatMap = cache.NopSeatMap{}
	got, ok, err := c.Get(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(context.Background(), uuid.New(), nil))
}
