package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pageza/recipe-finder/backend/internal/metrics"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps entries in process, evicting the least recently used
// entry once maxEntries is reached.
type MemoryStore struct {
	entries *lru.Cache[string, []byte]
}

// NewMemoryStore creates a MemoryStore holding at most maxEntries entries
func NewMemoryStore(maxEntries int) (*MemoryStore, error) {
	entries, err := lru.New[string, []byte](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory store: %w", err)
	}
	return &MemoryStore{entries: entries}, nil
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, ok := m.entries.Get(key)
	return val, ok, nil
}

// Set ignores ttl; freshness is decided by Cache on read.
func (m *MemoryStore) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	if evicted := m.entries.Add(key, val); evicted {
		metrics.RecordCacheEviction(m.Name())
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.entries.Remove(key)
	return nil
}

// Len returns the number of stored entries
func (m *MemoryStore) Len() int {
	return m.entries.Len()
}

func (m *MemoryStore) Close() error {
	m.entries.Purge()
	return nil
}

func (m *MemoryStore) Name() string { return "memory" }
