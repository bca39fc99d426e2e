package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore(quota int64) (*Store, *MemoryBackend) {
	backend := NewMemoryBackend()
	return New(backend, quota, zerolog.Nop()), backend
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(0)

	in := []record{{ID: "1", Name: "chess"}, {ID: "2", Name: "robotics"}}
	res := store.Set(ctx, "records", in)
	require.True(t, res.Persisted)
	require.NoError(t, res.Err)

	out := Get(ctx, store, "records", []record{})
	assert.Equal(t, in, out)
}

func TestStore_MissingKeyReturnsDefault(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(0)

	out := Get(ctx, store, "never-written", []record{{ID: "d"}})
	assert.Equal(t, []record{{ID: "d"}}, out)
}

func TestStore_MalformedValueReturnsDefault(t *testing.T) {
	ctx := context.Background()
	store, backend := newTestStore(0)

	require.NoError(t, backend.Write(ctx, "records", []byte("{not json")))

	out := Get(ctx, store, "records", []record{})
	assert.Empty(t, out)
}

func TestStore_QuotaRejectsOversizedValue(t *testing.T) {
	ctx := context.Background()
	store, backend := newTestStore(64)

	big := make([]record, 0, 10)
	for i := 0; i < 10; i++ {
		big = append(big, record{ID: "xxxxxxxxxxxxxxxx", Name: "yyyyyyyyyyyyyyyy"})
	}

	res := store.Set(ctx, "records", big)
	assert.False(t, res.Persisted)
	assert.ErrorIs(t, res.Err, ErrQuotaExceeded)

	// Nothing reached the backend
	_, err := backend.Read(ctx, "records")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStore_BackendFailureReported(t *testing.T) {
	ctx := context.Background()
	store, backend := newTestStore(0)
	backend.FailWrites = errors.New("disk full")

	res := store.Set(ctx, "records", []record{{ID: "1"}})
	assert.False(t, res.Persisted)
	assert.Error(t, res.Err)
}

func TestStore_DeleteMissingKeyIsNoError(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(0)

	assert.NoError(t, store.Delete(ctx, "never-written"))
}

func TestFileBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()

	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, backend.Write(ctx, "users", []byte(`[{"id":"1"}]`)))

	data, err := backend.Read(ctx, "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(data))

	require.NoError(t, backend.Delete(ctx, "users"))
	_, err = backend.Read(ctx, "users")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileBackend_RejectsTraversalKeys(t *testing.T) {
	ctx := context.Background()

	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, backend.Write(ctx, "../escape", []byte("x")))
	assert.Error(t, backend.Write(ctx, "a/b", []byte("x")))
}
