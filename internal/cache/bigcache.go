package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"github.com/pageza/recipe-finder/backend/internal/metrics"
)

var _ Store = (*BigCacheStore)(nil)

// BigCacheStore keeps entries in a sharded byte cache bounded by a size
// budget in megabytes.
type BigCacheStore struct {
	cache  *bigcache.BigCache
	logger *zap.Logger
}

// NewBigCacheStore creates a BigCacheStore. Entries older than lifeWindow are
// dropped by bigcache itself.
func NewBigCacheStore(ctx context.Context, sizeMB int, lifeWindow time.Duration, logger *zap.Logger) (*BigCacheStore, error) {
	cfg := bigcache.DefaultConfig(lifeWindow)
	cfg.Shards = 64
	cfg.HardMaxCacheSize = sizeMB
	cfg.MaxEntriesInWindow = 10 * 1024
	cfg.MaxEntrySize = 2048
	cfg.Verbose = false
	cfg.OnRemoveWithReason = func(_ string, _ []byte, reason bigcache.RemoveReason) {
		if reason == bigcache.NoSpace {
			metrics.RecordCacheEviction("bigcache")
		}
	}

	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigcache store: %w", err)
	}
	return &BigCacheStore{cache: cache, logger: logger}, nil
}

func (b *BigCacheStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, err := b.cache.Get(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read bigcache entry: %w", err)
	}
	return val, true, nil
}

func (b *BigCacheStore) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	if err := b.cache.Set(key, val); err != nil {
		return fmt.Errorf("failed to write bigcache entry: %w", err)
	}
	return nil
}

func (b *BigCacheStore) Delete(_ context.Context, key string) error {
	err := b.cache.Delete(key)
	if err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		return fmt.Errorf("failed to delete bigcache entry: %w", err)
	}
	return nil
}

func (b *BigCacheStore) Close() error {
	b.logger.Debug("Closing bigcache store", zap.Int("entries", b.cache.Len()))
	return b.cache.Close()
}

func (b *BigCacheStore) Name() string { return "bigcache" }
