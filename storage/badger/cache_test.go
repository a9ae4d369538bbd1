package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyptra/pdfscan/core"
	"github.com/calyptra/pdfscan/storage"
)

func newTestCache(t *testing.T) storage.TextCache {
	t.Helper()
	cache, backend, err := NewMemoryCache()
	require.NoError(t, err)
	t.Cleanup(func() {
		cache.Close()
		backend.Close()
	})
	return cache
}

func TestTextCache_PutGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	id := core.IDFromBytes([]byte("document bytes"))
	require.NoError(t, cache.PutText(ctx, id, "extracted text"))

	text, found, err := cache.GetText(ctx, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "extracted text", text)
}

func TestTextCache_Miss(t *testing.T) {
	cache := newTestCache(t)

	text, found, err := cache.GetText(context.Background(), core.ID(12345))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, text)
}

func TestTextCache_Overwrite(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	id := core.ID(7)
	require.NoError(t, cache.PutText(ctx, id, "first"))
	require.NoError(t, cache.PutText(ctx, id, "second"))

	text, found, err := cache.GetText(ctx, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", text)
}

func TestTextCache_CancelledContext(t *testing.T) {
	cache := newTestCache(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := cache.GetText(ctx, core.ID(1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, cache.PutText(ctx, core.ID(1), "x"), context.Canceled)
}

func TestNewTextCache_NilBackend(t *testing.T) {
	_, err := NewTextCache(nil)
	assert.Equal(t, storage.ErrBackendRequired, err)
}

func TestOpenTextCache_OnDisk(t *testing.T) {
	dir := t.TempDir()

	cache, err := OpenTextCache(dir)
	require.NoError(t, err)

	ctx := context.Background()
	id := core.IDFromBytes([]byte("persisted"))
	require.NoError(t, cache.PutText(ctx, id, "survives reopen"))
	require.NoError(t, cache.Close())

	cache, err = OpenTextCache(dir)
	require.NoError(t, err)
	defer cache.Close()

	text, found, err := cache.GetText(ctx, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "survives reopen", text)
}
