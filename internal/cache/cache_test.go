package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pdrpinto/gridastar"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1000, 0)
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return now }

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte("payload")
	require.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'X'

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), got)

	now = now.Add(time.Minute)
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_SweepsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1000, 0)
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "old", []byte("a")))
	for i := 0; i < 1000; i++ {
		now = now.Add(time.Hour)
		require.NoError(t, store.Set(ctx, fmt.Sprintf("k%d", i), []byte("v")))
	}
	assert.Equal(t, 1, store.Len())
	_, ok := store.entries["old"]
	assert.False(t, ok)

	now = now.Add(time.Minute)
	require.NoError(t, store.Set(ctx, "fresh", []byte("b")))
	now = now.Add(30 * time.Second)
	require.NoError(t, store.Set(ctx, "later", []byte("c")))
	assert.Equal(t, 2, store.Len())
	got, ok, err := store.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("b"), got)
}

func TestKey(t *testing.T) {
	g := gridastar.ReferenceGrid()
	a := gridastar.Coordinate{Row: 0, Col: 0}
	b := gridastar.Coordinate{Row: 9, Col: 9}

	key := Key(g, a, b, "euclidean")
	assert.Equal(t, key, Key(gridastar.ReferenceGrid(), a, b, "euclidean"))
	assert.NotEqual(t, key, Key(g, b, a, "euclidean"))
	assert.NotEqual(t, key, Key(g, a, b, "chebyshev"))

	require.NoError(t, g.SetPassable(gridastar.Coordinate{Row: 1, Col: 1}, false))
	assert.NotEqual(t, key, Key(g, a, b, "euclidean"))
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	store := NewRedisStore(client, time.Minute)
	require.NoError(t, store.Ping(ctx))

	key := "gridastar:test:" + time.Now().Format(time.RFC3339Nano)
	defer client.Del(ctx, key)

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, key, []byte("v")))
	got, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}
