package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/orthology/pkg/domain"
)

// nopStore never finds anything and drops every save.
type nopStore struct{}

func (nopStore) Save(ctx context.Context, key string, table *domain.Table) error { return nil }
func (nopStore) Load(ctx context.Context, key string) (*domain.Table, error) {
	return nil, domain.ErrTableNotFound
}
func (nopStore) Delete(ctx context.Context, key string) error { return nil }

func TestManager_LockLifecycle(t *testing.T) {
	mgr := NewManager(nopStore{})
	ctx := context.Background()
	count := 10000

	compute := func(context.Context) (*domain.Table, error) {
		return domain.NewTable(nil), nil
	}

	for i := 0; i < count; i++ {
		key := fmt.Sprintf("table-%d", i)
		_, _, _ = mgr.GetOrCompute(ctx, key, compute)
		_ = mgr.Invalidate(ctx, key)
	}

	lockCount := len(mgr.locks)
	t.Logf("Keys used: %d, Locks Leaked: %d", count, lockCount)

	if lockCount != 0 {
		t.Errorf("Memory Leak Detected: %d locks remaining in memory after Invalidate", lockCount)
	}
}
