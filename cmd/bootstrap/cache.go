package bootstrap

import (
	"context"
	"log/slog"

	"expense-matching/internal/infra/cache"
	"expense-matching/internal/pkg/config"
	"expense-matching/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewUserCache,
	),
)

// NewUserCache connects to redis when REDIS_URL is set and falls back to a
// cache that always misses.
func NewUserCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (queries.UserCache, error) {
	if cfg.Cache.RedisURL == "" {
		logger.Info("user cache disabled")
		return cache.NewNoopUserCache(), nil
	}

	c, err := cache.New(context.Background(), cfg.Cache.RedisURL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return cache.NewUserCache(c, cfg.Cache.UserTTL), nil
}
