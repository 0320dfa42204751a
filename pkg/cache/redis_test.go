package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestClient_SetGet(t *testing.T) {
	_, client := setupCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "greeting", "hello", time.Minute))

	val, err := client.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", val)
}

func TestClient_Get_Missing(t *testing.T) {
	_, client := setupCache(t)

	_, err := client.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestClient_Exists(t *testing.T) {
	_, client := setupCache(t)
	ctx := context.Background()

	exists, err := client.Exists(ctx, "flag")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, client.Set(ctx, "flag", "1", time.Minute))

	exists, err = client.Exists(ctx, "flag")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_Delete(t *testing.T) {
	_, client := setupCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, client.Set(ctx, "b", "2", time.Minute))

	require.NoError(t, client.Delete(ctx, "a", "b"))

	exists, err := client.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_Expiration(t *testing.T) {
	mr, client := setupCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "temp", "x", time.Minute))

	ttl, err := client.TTL(ctx, "temp")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(2 * time.Minute)

	exists, err := client.Exists(ctx, "temp")
	require.NoError(t, err)
	assert.False(t, exists)
}
