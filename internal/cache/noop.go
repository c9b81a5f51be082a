package cache

import (
	"context"
	"time"
)

var _ Store = (*NoopStore)(nil)

// NoopStore never stores anything; every lookup is a miss.
type NoopStore struct{}

// NewNoopStore creates a NoopStore
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (NoopStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NoopStore) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NoopStore) Delete(context.Context, string) error { return nil }

func (NoopStore) Close() error { return nil }

func (NoopStore) Name() string { return "none" }
