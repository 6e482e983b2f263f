package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"lodging-service/internal/infra/cache"
	"lodging-service/internal/pkg/config"
	"lodging-service/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const catalogKeyPrefix = "lodging:"

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewCatalogCache,
	),
)

// NewCatalogCache falls back to a no-op cache when REDIS_ADDR is unset or unreachable.
func NewCatalogCache(lc fx.Lifecycle, cfg config.Config, observer cache.Observer, logger *slog.Logger) queries.CatalogCache {
	if cfg.Redis.Addr == "" {
		logger.Info("catalog cache disabled")
		return cache.NoopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("catalog cache unreachable, continuing without it", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = client.Close()
		return cache.NoopCache{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("catalog cache connected", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	return cache.NewRedisCache(client, catalogKeyPrefix, observer)
}
