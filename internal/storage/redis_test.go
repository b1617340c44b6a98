package storage

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedis(&redis.Options{Addr: mr.Addr()}, log.New(io.Discard, "", 0))
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisSaveLoad(t *testing.T) {
	store, _ := newTestRedis(t)
	ctx := context.Background()

	store.Save(ctx, "cart:abc", `[{"id":1}]`)

	val, ok := store.Load(ctx, "cart:abc")
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, val)
}

func TestRedisLoadMissing(t *testing.T) {
	store, _ := newTestRedis(t)

	val, ok := store.Load(context.Background(), "cart:nope")
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestRedisRemove(t *testing.T) {
	store, _ := newTestRedis(t)
	ctx := context.Background()

	store.Save(ctx, "cart:abc", "x")
	store.Remove(ctx, "cart:abc")

	_, ok := store.Load(ctx, "cart:abc")
	assert.False(t, ok)

	// Removing an absent key is not an error.
	store.Remove(ctx, "cart:abc")
}

func TestRedisSaveHasNoTTL(t *testing.T) {
	store, mr := newTestRedis(t)

	store.Save(context.Background(), "cart:abc", "x")
	assert.Zero(t, mr.TTL("cart:abc"))
}

func TestRedisAvailable(t *testing.T) {
	store, mr := newTestRedis(t)
	ctx := context.Background()

	assert.True(t, store.Available(ctx))
	_, ok := store.Load(ctx, probeKey)
	assert.False(t, ok, "availability probe must not leave its key behind")

	mr.Close()
	assert.False(t, store.Available(ctx))
}
