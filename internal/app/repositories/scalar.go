package repositories

import (
	"context"
	"sync"

	"github.com/clubhub-app/clubhub/internal/kvstore"
)

// Scalar owns one storage key holding a single JSON value rather than a
// collection (theme settings, site logo, seed flag).
type Scalar[T any] struct {
	key   string
	store *kvstore.Store

	mu    sync.Mutex
	value T
}

// NewScalar loads the current value, defaulting when absent or malformed
func NewScalar[T any](ctx context.Context, store *kvstore.Store, key string, defaultValue T) *Scalar[T] {
	return &Scalar[T]{
		key:   key,
		store: store,
		value: kvstore.Get(ctx, store, key, defaultValue),
	}
}

// Get returns the current value
func (s *Scalar[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value and persists it
func (s *Scalar[T]) Set(ctx context.Context, value T) kvstore.WriteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	return s.store.Set(ctx, s.key, s.value)
}
