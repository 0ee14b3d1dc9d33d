package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisadapter "parley/pkg/adapters/redis"
	"parley/pkg/domain"
	"parley/pkg/ports"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redisadapter.NewFromClient(newTestClient(t))
	ports.RunSessionStoreContract(t, store)
}

func TestRedisStore_PrefixIsolation(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	a := redisadapter.NewFromClient(client, redisadapter.WithPrefix("a:"))
	b := redisadapter.NewFromClient(client, redisadapter.WithPrefix("b:"))

	require.NoError(t, a.Save(ctx, domain.NewSession("conv-1")))

	_, err := b.Load(ctx, "conv-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisStore_TTLRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	store := redisadapter.NewFromClient(client, redisadapter.WithTTL(time.Hour))

	sess := domain.NewSession("conv-ttl")
	sess.Set("Station", "Park St")
	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Load(ctx, "conv-ttl")
	require.NoError(t, err)
	v, _ := loaded.Get("Station")
	assert.Equal(t, "Park St", v)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "conv-ttl")
}
