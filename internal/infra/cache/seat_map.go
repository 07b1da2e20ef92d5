package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"seat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const seatMapKeyPrefix = "seatmap:"

// SeatMap is read by the seat queries and invalidated by every seat transition.
type SeatMap interface {
	Get(ctx context.Context, eventID uuid.UUID) ([]*queries.SeatView, bool, error)
	Set(ctx context.Context, eventID uuid.UUID, seats []*queries.SeatView) error
	Invalidate(ctx context.Context, eventID uuid.UUID)
}

type RedisSeatMap struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisSeatMap(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisSeatMap {
	return &RedisSeatMap{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func SeatMapKey(eventID uuid.UUID) string {
	return seatMapKeyPrefix + eventID.String()
}

func (c *RedisSeatMap) Get(ctx context.Context, eventID uuid.UUID) ([]*queries.SeatView, bool, error) {
	raw, err := c.client.Get(ctx, SeatMapKey(eventID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var seats []*queries.SeatView
	if err := json.Unmarshal(raw, &seats); err != nil {
		return nil, false, err
	}
	return seats, true, nil
}

func (c *RedisSeatMap) Set(ctx context.Context, eventID uuid.UUID, seats []*queries.SeatView) error {
	raw, err := json.Marshal(seats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, SeatMapKey(eventID), raw, c.ttl).Err()
}

func (c *RedisSeatMap) Invalidate(ctx context.Context, eventID uuid.UUID) {
	if err := c.client.Del(ctx, SeatMapKey(eventID)).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate seat map", "event_id", eventID, "error", err.Error())
	}
}

// NopSeatMap disables caching when no Redis address is configured.
type NopSeatMap struct{}

func (NopSeatMap) Get(context.Context, uuid.UUID) ([]*queries.SeatView, bool, error) {
	return nil, false, nil
}

func (NopSeatMap) Set(context.Context, uuid.UUID, []*queries.SeatView) error { return nil }

func (NopSeatMap) Invalidate(context.Context, uuid.UUID) {}
