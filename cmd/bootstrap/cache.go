package bootstrap

import (
	"context"
	"log/slog"

	"carestay/internal/infra/cache"
	"carestay/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCacheClient,
		func(c *cache.Client) cache.Store { return c },
		cache.NewService,
	),
)

// NewCacheClient connects on startup but never fails it: a down Redis
// leaves the client disabled and the service degrades to cache misses.
func NewCacheClient(lc fx.Lifecycle, cfg config.RedisConfig) *cache.Client {
	client := cache.NewClient(cfg)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Connect(ctx); err != nil {
				slog.Warn("redis unavailable, caching disabled", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
