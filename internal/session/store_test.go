package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreMissingKeyReadsEmpty(t *testing.T) {
	store := NewMemoryStore()

	value, err := store.Get(context.Background(), TokenKey)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestMemoryStoreSetGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, TokenKey, "token-value"))
	require.NoError(t, store.Set(ctx, RefreshTokenKey, "refresh-value"))

	value, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "token-value", value)

	require.NoError(t, store.Delete(ctx, TokenKey, RefreshTokenKey))

	value, err = store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Empty(t, value)

	value, err = store.Get(ctx, RefreshTokenKey)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, TokenKey, "first"))
	require.NoError(t, store.Set(ctx, TokenKey, "second"))

	value, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}
