package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/clubhub-app/clubhub/internal/kvstore"
)

// ErrNoChange can be returned by an Update callback to signal that the
// current value already satisfies the edit; the write is skipped and the
// Update reports success.
var ErrNoChange = errors.New("collection unchanged")

// Collection owns one storage key holding a JSON array of entities.
// All mutation funnels through Replace/Update, which move the in-memory
// value forward and then write the whole collection back in one Set.
// A failed write leaves the in-memory value updated; the store is
// best-effort durable and the WriteResult carries the divergence.
type Collection[T any] struct {
	key   string
	store *kvstore.Store

	mu    sync.Mutex
	items []T
}

// NewCollection loads the current collection value, defaulting to empty
func NewCollection[T any](ctx context.Context, store *kvstore.Store, key string) *Collection[T] {
	return &Collection[T]{
		key:   key,
		store: store,
		items: kvstore.Get(ctx, store, key, []T{}),
	}
}

// All returns a snapshot copy of the collection
func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the current number of entities
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Replace swaps in a whole new collection value and persists it
func (c *Collection[T]) Replace(ctx context.Context, items []T) kvstore.WriteResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items
	return c.store.Set(ctx, c.key, c.items)
}

// Update applies fn to the current value under the collection lock and
// persists the result. fn receives a copy, so when it returns an error
// nothing changes, even if it mutated elements before failing. The
// read-modify-write is atomic with respect to other Update calls, which
// is what enforces business checks like membership uniqueness.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) (kvstore.WriteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	work := make([]T, len(c.items))
	copy(work, c.items)

	next, err := fn(work)
	if err != nil {
		if errors.Is(err, ErrNoChange) {
			return kvstore.WriteResult{Persisted: true}, nil
		}
		return kvstore.WriteResult{}, err
	}

	c.items = next
	return c.store.Set(ctx, c.key, c.items), nil
}
