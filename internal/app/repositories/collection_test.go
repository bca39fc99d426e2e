package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/internal/kvstore"
)

type widget struct {
	ID string `json:"id"`
}

func newTestCollection(t *testing.T) (*Collection[widget], *kvstore.MemoryBackend) {
	t.Helper()
	backend := kvstore.NewMemoryBackend()
	store := kvstore.New(backend, 0, zerolog.Nop())
	return NewCollection[widget](context.Background(), store, "widgets"), backend
}

func TestCollection_ReplaceAndAll(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCollection(t)

	res := c.Replace(ctx, []widget{{ID: "a"}, {ID: "b"}})
	require.True(t, res.Persisted)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []widget{{ID: "a"}, {ID: "b"}}, c.All())
}

func TestCollection_AllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCollection(t)
	c.Replace(ctx, []widget{{ID: "a"}})

	snapshot := c.All()
	snapshot[0].ID = "mutated"

	assert.Equal(t, "a", c.All()[0].ID)
}

func TestCollection_UpdateAppliesAtomically(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCollection(t)
	c.Replace(ctx, []widget{{ID: "a"}})

	res, err := c.Update(ctx, func(items []widget) ([]widget, error) {
		return append(items, widget{ID: "b"}), nil
	})
	require.NoError(t, err)
	assert.True(t, res.Persisted)
	assert.Equal(t, 2, c.Len())
}

func TestCollection_UpdateErrorLeavesValue(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCollection(t)
	c.Replace(ctx, []widget{{ID: "a"}})

	wantErr := errors.New("rejected")
	_, err := c.Update(ctx, func(items []widget) ([]widget, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_UpdateErrorDiscardsPartialMutation(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCollection(t)
	c.Replace(ctx, []widget{{ID: "a"}})

	wantErr := errors.New("rejected")
	_, err := c.Update(ctx, func(items []widget) ([]widget, error) {
		items[0].ID = "half-edited"
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, "a", c.All()[0].ID)
}

func TestCollection_UpdateNoChangeSkipsWrite(t *testing.T) {
	ctx := context.Background()
	c, backend := newTestCollection(t)
	c.Replace(ctx, []widget{{ID: "a"}})

	backend.FailWrites = errors.New("disk full")
	res, err := c.Update(ctx, func(items []widget) ([]widget, error) {
		return nil, ErrNoChange
	})
	require.NoError(t, err)
	assert.True(t, res.Persisted)
}

func TestCollection_InMemoryAdvancesWhenWriteFails(t *testing.T) {
	ctx := context.Background()
	c, backend := newTestCollection(t)
	c.Replace(ctx, []widget{{ID: "a"}})

	backend.FailWrites = errors.New("disk full")

	res := c.Replace(ctx, []widget{{ID: "a"}, {ID: "b"}})
	assert.False(t, res.Persisted)
	assert.Error(t, res.Err)

	// The in-memory value moved forward anyway
	assert.Equal(t, 2, c.Len())

	// A reload sees only the durable state
	backend.FailWrites = nil
	store2 := kvstore.New(backend, 0, zerolog.Nop())
	reloaded := NewCollection[widget](ctx, store2, "widgets")
	assert.Equal(t, 1, reloaded.Len())
}
