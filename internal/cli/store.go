package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/orthology/pkg/adapters/file"
	"github.com/aretw0/orthology/pkg/adapters/redis"
	"github.com/aretw0/orthology/pkg/cache"
	"github.com/aretw0/orthology/pkg/domain"
)

// setupCache builds the table cache selected by opts.Store. The returned
// close function is never nil.
func setupCache(ctx context.Context, opts Options, logger *slog.Logger) (*cache.Manager, func() error, error) {
	noop := func() error { return nil }

	switch opts.Store {
	case "":
		return nil, noop, nil
	case "file":
		store := file.NewStore(opts.StorePath)
		logger.Debug("Cache Enabled", "backend", "file", "path", opts.StorePath)
		return cache.NewManager(store, cache.WithLogger(logger)), noop, nil
	case "redis":
		store := redis.New(opts.RedisAddr, "", 0, redis.WithTTL(opts.CacheTTL))
		if err := store.Client().Ping(ctx).Err(); err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("redis cache at %s unavailable: %w", opts.RedisAddr, err)
		}
		logger.Debug("Cache Enabled", "backend", "redis", "addr", opts.RedisAddr)
		manager := cache.NewManager(store,
			cache.WithLogger(logger),
			cache.WithLocker(redis.NewLocker(store.Client(), redis.DefaultPrefix)),
		)
		return manager, store.Close, nil
	}
	return nil, noop, &domain.ConfigurationError{Field: "store", Value: opts.Store, Reason: "must be file or redis"}
}
