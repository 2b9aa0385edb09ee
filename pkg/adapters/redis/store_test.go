package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/orthology/pkg/adapters/redis"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ports.RunTableStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(time.Minute), redis.WithPrefix("test:"))
	ctx := context.Background()

	table := domain.NewTable([]string{"man_a", "mouse_a"})
	table.Set("man_a", "mouse_a", domain.Orthologous)
	require.NoError(t, store.Save(ctx, "k", table))

	assert.True(t, mr.Exists("test:k"))
	assert.InDelta(t, time.Minute.Seconds(), mr.TTL("test:k").Seconds(), 1)

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)

	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrTableNotFound)
}

func TestRedisStore_List(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	for _, key := range []string{"a", "b"} {
		require.NoError(t, store.Save(ctx, key, domain.NewTable(nil)))
	}
	require.NoError(t, store.Delete(ctx, "a"))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)
}
