package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"seat-reservation/internal/infra/cache"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/usecase/queries"
	"seat-reservation/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewSeatMapCache,
			fx.As(new(queries.SeatMapCache)),
			fx.As(new(shared.SeatMapInvalidator)),
		),
	),
)

// NewSeatMapCache returns the Redis backed seat map cache, or a no-op cache
// when REDIS_ADDR is empty. An unreachable Redis at startup is logged, not
// fatal: reads fall back to PostgreSQL.
func NewSeatMapCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.SeatMap {
	if cfg.Redis.Addr == "" {
		logger.Info("seat map cache disabled")
		return cache.NopSeatMap{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				logger.Warn("redis is unreachable, serving seat maps from the database", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisSeatMap(client, cfg.Redis.SeatMapTTL, logger)
}
