package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recipe-finder/backend/internal/metrics"
)

// Cache stores JSON encoded values in a Store and serves them back while
// they are younger than the configured ttl. Backend failures never reach
// the caller: they are logged and reported as misses.
type Cache struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Cache
type Option func(*Cache)

// WithClock replaces time.Now, used in tests to move time forward.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates a Cache over store
func New(store Store, ttl time.Duration, logger *zap.Logger, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load decodes the fresh value stored under key into dst and reports whether
// it did. Stale entries stay in place until the next Save overwrites them.
func (c *Cache) Load(ctx context.Context, key string, dst any) bool {
	ns := namespaceOf(key)

	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Cache read failed", zap.String("key", key), zap.String("backend", c.store.Name()), zap.Error(err))
		metrics.RecordCacheError(c.store.Name(), "read")
		metrics.RecordCacheMiss(ns)
		return false
	}
	if !found {
		metrics.RecordCacheMiss(ns)
		return false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.discard(ctx, key, err)
		metrics.RecordCacheMiss(ns)
		return false
	}
	if !entry.Fresh(c.now(), c.ttl) {
		metrics.RecordCacheMiss(ns)
		return false
	}
	if err := json.Unmarshal(entry.Data, dst); err != nil {
		c.discard(ctx, key, err)
		metrics.RecordCacheMiss(ns)
		return false
	}

	metrics.RecordCacheHit(ns)
	return true
}

// Save stores v under key, replacing whatever was there.
func (c *Cache) Save(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("Failed to encode cache value", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(c.store.Name(), "encode")
		return
	}

	raw, err := json.Marshal(Entry{Data: data, StoredAt: c.now()})
	if err != nil {
		c.logger.Error("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(c.store.Name(), "encode")
		return
	}

	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.String("backend", c.store.Name()), zap.Error(err))
		metrics.RecordCacheError(c.store.Name(), "write")
	}
}

// Close releases the underlying store
func (c *Cache) Close() error {
	return c.store.Close()
}

func (c *Cache) discard(ctx context.Context, key string, cause error) {
	c.logger.Warn("Removing corrupted cache entry", zap.String("key", key), zap.Error(cause))
	metrics.RecordCacheError(c.store.Name(), "decode")
	if err := c.store.Delete(ctx, key); err != nil {
		c.logger.Warn("Failed to remove corrupted cache entry", zap.String("key", key), zap.Error(err))
	}
}
