package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/orthology/pkg/adapters/memory"
	"github.com/aretw0/orthology/pkg/cache"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *domain.Table {
	table := domain.NewTable([]string{"man_a", "mouse_a"})
	table.Set("man_a", "mouse_a", domain.Orthologous)
	return table
}

func TestManager_ComputesOnce(t *testing.T) {
	store := memory.NewStore()
	manager := cache.NewManager(store)
	ctx := context.Background()

	var calls atomic.Int32
	compute := func(context.Context) (*domain.Table, error) {
		calls.Add(1)
		time.Sleep(5 * time.Millisecond)
		return sampleTable(), nil
	}

	var wg sync.WaitGroup
	hits := make([]bool, 10)
	for i := range hits {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table, hit, err := manager.GetOrCompute(ctx, "k", compute)
			assert.NoError(t, err)
			assert.NotNil(t, table)
			hits[i] = hit
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent lookups of one key must compute once")
	misses := 0
	for _, hit := range hits {
		if !hit {
			misses++
		}
	}
	assert.Equal(t, 1, misses)
}

func TestManager_ComputeError(t *testing.T) {
	store := memory.NewStore()
	manager := cache.NewManager(store)
	boom := errors.New("boom")

	_, _, err := manager.GetOrCompute(context.Background(), "k", func(context.Context) (*domain.Table, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.Len(), "failed computations must not be cached")
}

func TestManager_Invalidate(t *testing.T) {
	store := memory.NewStore()
	manager := cache.NewManager(store)
	ctx := context.Background()

	compute := func(context.Context) (*domain.Table, error) { return sampleTable(), nil }

	_, hit, err := manager.GetOrCompute(ctx, "k", compute)
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = manager.GetOrCompute(ctx, "k", compute)
	require.NoError(t, err)
	assert.True(t, hit)

	require.NoError(t, manager.Invalidate(ctx, "k"))

	_, hit, err = manager.GetOrCompute(ctx, "k", compute)
	require.NoError(t, err)
	assert.False(t, hit)
}

// recordingLocker counts lock round trips.
type recordingLocker struct {
	locks, unlocks atomic.Int32
	ttl            time.Duration
	fail           error
}

func (l *recordingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	if l.fail != nil {
		return nil, l.fail
	}
	l.locks.Add(1)
	l.ttl = ttl
	return func(context.Context) error {
		l.unlocks.Add(1)
		return nil
	}, nil
}

func TestManager_DistributedLock(t *testing.T) {
	locker := &recordingLocker{}
	manager := cache.NewManager(memory.NewStore(), cache.WithLocker(locker), cache.WithLockTTL(time.Minute))

	_, _, err := manager.GetOrCompute(context.Background(), "k", func(context.Context) (*domain.Table, error) {
		return sampleTable(), nil
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), locker.locks.Load())
	assert.Equal(t, int32(1), locker.unlocks.Load())
	assert.Equal(t, time.Minute, locker.ttl)
}

func TestManager_DistributedLockFailure(t *testing.T) {
	locker := &recordingLocker{fail: errors.New("redis down")}
	manager := cache.NewManager(memory.NewStore(), cache.WithLocker(locker))

	called := false
	_, _, err := manager.GetOrCompute(context.Background(), "k", func(context.Context) (*domain.Table, error) {
		called = true
		return sampleTable(), nil
	})
	assert.ErrorContains(t, err, "failed to acquire distributed lock")
	assert.False(t, called)
}

func TestKey(t *testing.T) {
	input := []byte("((man_a,man_b),mouse_a);")
	base := cache.Key(input, 0, "_", false)

	assert.Equal(t, base, cache.Key(input, 0, "_", false), "keys must be deterministic")
	assert.NotEqual(t, base, cache.Key(input, 1, "_", false))
	assert.NotEqual(t, base, cache.Key(input, 0, "-", false))
	assert.NotEqual(t, base, cache.Key(input, 0, "_", true))
	assert.NotEqual(t, base, cache.Key([]byte("(a_1,b_1);"), 0, "_", false))
}
