package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type payload struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *MemoryStore, *fakeClock) {
	t.Helper()
	store, err := NewMemoryStore(16)
	require.NoError(t, err)
	clock := newFakeClock()
	return New(store, ttl, zap.NewNop(), WithClock(clock.Now)), store, clock
}

func TestCache_SaveAndLoad(t *testing.T) {
	c, _, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Save(ctx, "recipes?offset=0", payload{Name: "pasta", Items: []string{"a", "b"}})

	var got payload
	require.True(t, c.Load(ctx, "recipes?offset=0", &got))
	assert.Equal(t, payload{Name: "pasta", Items: []string{"a", "b"}}, got)
}

func TestCache_LoadMissing(t *testing.T) {
	c, _, _ := newTestCache(t, time.Minute)

	var got payload
	assert.False(t, c.Load(context.Background(), "recipe_1", &got))
}

func TestCache_TTLWindow(t *testing.T) {
	c, _, clock := newTestCache(t, 30*time.Minute)
	ctx := context.Background()
	c.Save(ctx, "recipe_1", payload{Name: "toast"})

	var got payload
	clock.Advance(30*time.Minute - time.Millisecond)
	assert.True(t, c.Load(ctx, "recipe_1", &got), "entry is fresh just before the window closes")

	clock.Advance(time.Millisecond)
	assert.False(t, c.Load(ctx, "recipe_1", &got), "entry is stale once the window has elapsed")

	c.Save(ctx, "recipe_1", payload{Name: "fresh toast"})
	require.True(t, c.Load(ctx, "recipe_1", &got))
	assert.Equal(t, "fresh toast", got.Name)
}

func TestCache_CorruptedEntryRemoved(t *testing.T) {
	c, store, _ := newTestCache(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "recipe_1", []byte("{not json"), time.Minute))

	var got payload
	assert.False(t, c.Load(ctx, "recipe_1", &got))

	_, found, err := store.Get(ctx, "recipe_1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_WrongShapeRemoved(t *testing.T) {
	c, store, _ := newTestCache(t, time.Minute)
	ctx := context.Background()
	c.Save(ctx, "recipe_1", []int{1, 2})

	var got payload
	assert.False(t, c.Load(ctx, "recipe_1", &got))
	assert.Equal(t, 0, store.Len())
}

type failingStore struct {
	NoopStore
}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func TestCache_StoreErrorsAreMisses(t *testing.T) {
	c := New(failingStore{}, time.Minute, zap.NewNop())
	ctx := context.Background()

	assert.NotPanics(t, func() { c.Save(ctx, "recipe_1", payload{Name: "x"}) })

	var got payload
	assert.False(t, c.Load(ctx, "recipe_1", &got))
}

func TestCache_NoopStore(t *testing.T) {
	c := New(NewNoopStore(), time.Minute, zap.NewNop())
	ctx := context.Background()
	c.Save(ctx, "recipe_1", payload{Name: "x"})

	var got payload
	assert.False(t, c.Load(ctx, "recipe_1", &got))
	assert.NoError(t, c.Close())
}
