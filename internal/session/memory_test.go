package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutLookupDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "tok", "u1", time.Hour))

	userID, err := s.Lookup(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	require.NoError(t, s.Delete(ctx, "tok"))
	_, err = s.Lookup(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Lookup(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s := NewMemoryStore()
	s.now = func() time.Time { return current }

	require.NoError(t, s.Put(ctx, "tok", "u1", time.Hour))

	current = current.Add(30 * time.Minute)
	_, err := s.Lookup(ctx, "tok")
	assert.NoError(t, err)

	current = current.Add(31 * time.Minute)
	_, err = s.Lookup(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)

	// Expired entries stay gone even if the clock moves back
	current = current.Add(-time.Hour)
	_, err = s.Lookup(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_PutSweepsExpired(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s := NewMemoryStore()
	s.now = func() time.Time { return current }

	require.NoError(t, s.Put(ctx, "short", "u1", time.Minute))
	current = current.Add(time.Hour)
	require.NoError(t, s.Put(ctx, "fresh", "u2", time.Hour))

	assert.Len(t, s.entries, 1)
}
