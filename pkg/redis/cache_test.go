package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotsPayload struct {
	Booked []string `json:"booked"`
}

func setupTestCache(t *testing.T) (IRedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return NewRedisCache(client, logger.New("disabled")), mr
}

func TestRedisCache_SaveGet(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	t.Run("success: struct round trip", func(t *testing.T) {
		in := slotsPayload{Booked: []string{"09:00 AM"}}
		require.NoError(t, cache.Save(ctx, "bookease:cache:slots:2025-03-10", in, 60))

		var out slotsPayload
		require.NoError(t, cache.Get(ctx, "bookease:cache:slots:2025-03-10", &out))
		assert.Equal(t, in, out)
		assert.True(t, mr.TTL("bookease:cache:slots:2025-03-10") > 0)
	})

	t.Run("success: raw string", func(t *testing.T) {
		require.NoError(t, cache.Save(ctx, "k", "v", 60))

		var out string
		require.NoError(t, cache.Get(ctx, "k", &out))
		assert.Equal(t, "v", out)
	})

	t.Run("error: miss", func(t *testing.T) {
		var out slotsPayload
		assert.ErrorIs(t, cache.Get(ctx, "missing", &out), ErrCacheMiss)
	})
}

func TestRedisCache_DeleteClear(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "bookease:cache:slots:2025-03-10", "a", 60))
	require.NoError(t, cache.Save(ctx, "bookease:cache:slots:2025-03-11", "b", 60))
	require.NoError(t, cache.Save(ctx, "bookease:cache:other", "c", 60))

	require.NoError(t, cache.Delete(ctx, "bookease:cache:other"))
	assert.False(t, mr.Exists("bookease:cache:other"))

	require.NoError(t, cache.Clear(ctx, "bookease:cache:slots:*"))
	assert.False(t, mr.Exists("bookease:cache:slots:2025-03-10"))
	assert.False(t, mr.Exists("bookease:cache:slots:2025-03-11"))
}
