package kv

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "greeting", []byte("hello")))

	value, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), value)

	// The store hands out copies, not its internal slice.
	value[0] = 'X'
	again, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), again)

	require.NoError(t, store.Set(ctx, "greeting", []byte("bye")))
	value, err = store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("bye"), value)

	require.NoError(t, store.Delete(ctx, "greeting"))
	_, err = store.Get(ctx, "greeting")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete(ctx, "missing"))
}
