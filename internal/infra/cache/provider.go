package cache

import (
	"context"
	"log/slog"

	"naguil/config"
	"naguil/internal/domain/lifecycle"
	"naguil/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the preference cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPreferenceCache returns the Redis cache when enabled and a no-op cache otherwise
func NewPreferenceCache(params Params) (service.PreferenceCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis not configured, preference cache disabled")

		return NewNoopPreferenceCache(), nil
	}

	if cfg.Addr == "" {
		return nil, errors.New("redis address is required when the cache is enabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using Redis preference cache",
		slog.String("addr", cfg.Addr),
		slog.Duration("ttl", cfg.TTL),
	)

	return NewRedisPreferenceCache(client, cfg.TTL), nil
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPreferenceCache),
)
