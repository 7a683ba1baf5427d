package bootstrap

import (
	"context"
	"log/slog"

	"padel-booking/internal/infra/cache"
	"padel-booking/internal/pkg/config"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewCourtCache,
			fx.As(new(queries.CourtCache)),
			fx.As(new(commands.CourtCacheInvalidator)),
		),
	),
)

type courtCache interface {
	queries.CourtCache
	commands.CourtCacheInvalidator
}

// NewCourtCache falls back to a no-op cache when REDIS_ADDR is unset.
func NewCourtCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) courtCache {
	if !cfg.Cache.Enabled() {
		logger.Info("court cache disabled")
		return cache.NopCourtCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable Redis only degrades reads to the database
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Cache.RedisAddr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewCourtCache(client, cfg.Cache.CourtTTL)
}
