// Package session tracks the current-user marker for live sessions.
// A marker is an opaque token mapped to a user id with a TTL; logout
// deletes it. Markers are deliberately not durable application state:
// they live in process memory or redis, never in the kv store.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a marker is absent or expired
var ErrNotFound = errors.New("session not found")

// Store holds session markers
type Store interface {
	// Put records a marker for userID with the given lifetime
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	// Lookup resolves a marker to the user id it was issued for
	Lookup(ctx context.Context, token string) (string, error)
	// Delete clears a marker; deleting an absent marker is not an error
	Delete(ctx context.Context, token string) error
}
