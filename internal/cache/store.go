package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/database"
)

// Store is a byte oriented key/value backend. A miss is (nil, false, nil).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
	Name() string
}

// NewStore builds the backend selected in cfg.
func NewStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, error) {
	switch cfg.CacheBackend {
	case config.CacheBackendMemory, "":
		return NewMemoryStore(cfg.CacheMaxEntries)
	case config.CacheBackendBigCache:
		return NewBigCacheStore(ctx, cfg.BigCacheSizeMB, cfg.CacheDuration, logger)
	case config.CacheBackendRedis:
		client, err := database.NewRedisClient(cfg, logger)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, cfg.RedisKeyPrefix), nil
	case config.CacheBackendNone:
		return NewNoopStore(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
