package kvstore

import (
	"context"
	"sync"
)

// MemoryBackend is a map-backed Backend for tests and ephemeral runs
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte

	// FailWrites makes every Write fail with the given error; used by
	// tests to simulate storage failures
	FailWrites error
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Read returns the raw bytes under key
func (b *MemoryBackend) Read(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores a copy of data under key
func (b *MemoryBackend) Write(_ context.Context, key string, data []byte) error {
	if b.FailWrites != nil {
		return b.FailWrites
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	b.values[key] = stored
	return nil
}

// Delete removes the value under key
func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.values[key]; !ok {
		return ErrKeyNotFound
	}
	delete(b.values, key)
	return nil
}
