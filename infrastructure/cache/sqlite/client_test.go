package sqlite

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Client, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	cache, err := NewSQLiteCache(path)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache, path
}

func TestSQLiteCache_SetGetDelete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "news-full-cache", []byte(`{"items":[],"timestamp":1}`), 24*time.Hour))

	got, err := cache.Get(ctx, "news-full-cache")
	require.NoError(t, err)
	assert.Equal(t, `{"items":[],"timestamp":1}`, string(got))

	require.NoError(t, cache.Delete(ctx, "news-full-cache"))
	_, err = cache.Get(ctx, "news-full-cache")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing key is not an error
	assert.NoError(t, cache.Delete(ctx, "news-full-cache"))
}

func TestSQLiteCache_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "news-full-cache", []byte("entry"), time.Hour))
	require.NoError(t, first.Close())

	second, err := NewSQLiteCache(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "news-full-cache")
	require.NoError(t, err)
	assert.Equal(t, "entry", string(got))
}

func TestSQLiteCache_Expiry(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "short", []byte("v"), time.Minute))
	require.NoError(t, cache.Set(ctx, "forever", []byte("v"), 0))

	now = now.Add(2 * time.Minute)

	_, err := cache.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = cache.Get(ctx, "forever")
	assert.NoError(t, err)

	removed, err := cache.cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	stats, err := cache.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats["total_entries"])
	assert.Equal(t, 0, stats["expired_entries"])
}

func TestSQLiteCache_KeyValidation(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	assert.Error(t, cache.Set(ctx, "", []byte("v"), 0))
	assert.Error(t, cache.Set(ctx, strings.Repeat("k", maxKeyLength+1), []byte("v"), 0))
	assert.Error(t, cache.Set(ctx, "k", nil, 0))
	_, err := cache.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, cache.Delete(ctx, ""))
}

func TestSQLiteCache_InjectionKeysAreData(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	keys := []string{
		"key'; DROP TABLE cache_entries; --",
		"key' OR '1'='1",
		"key' UNION SELECT null, null, null, null--",
		"key'); INSERT INTO cache_entries VALUES ('hack', 'data', 0, 0); --",
		"key\nwith\nnewlines",
		"键值",
	}

	for _, key := range keys {
		require.NoError(t, cache.Set(ctx, key, []byte("value for "+key), time.Hour), key)
	}
	for _, key := range keys {
		got, err := cache.Get(ctx, key)
		require.NoError(t, err, key)
		assert.Equal(t, "value for "+key, string(got))
	}

	_, err := cache.Get(ctx, "hack")
	assert.ErrorIs(t, err, ErrNotFound)

	stats, err := cache.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(keys), stats["total_entries"])
}

func TestSQLiteCache_BinaryAndLargeValues(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	values := map[string][]byte{
		"binary":  {0x00, 0x01, 0xFF, 0xFE},
		"unicode": []byte("新闻 🎉 ñ"),
		"large":   bytes.Repeat([]byte("x"), 4<<20),
	}

	for key, value := range values {
		require.NoError(t, cache.Set(ctx, key, value, 0))
		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(value, got), key)
	}
}

func TestSQLiteCache_Clear(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, cache.Clear(ctx))

	stats, err := cache.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats["total_entries"])
}

func TestSQLiteCache_CloseIsIdempotentForCleanup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	cache, err := NewSQLiteCache(path)
	require.NoError(t, err)

	require.NoError(t, cache.Close())
	// second close returns the driver's error but must not block
	_ = cache.Close()
}
