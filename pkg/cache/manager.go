package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/orthology/internal/logging"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
)

// DefaultLockTTL bounds how long a distributed lock survives a crashed holder.
const DefaultLockTTL = 30 * time.Second

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// ComputeFunc produces the table for a key on a cache miss.
type ComputeFunc func(ctx context.Context) (*domain.Table, error)

// Manager orchestrates table lookups, ensuring each key is computed once.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	store ports.TableStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker  ports.DistributedLocker // Optional distributed locker
	lockTTL time.Duration
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL sets the TTL of distributed locks.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.lockTTL = ttl
		}
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a new cache Manager over the given store.
func NewManager(store ports.TableStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: DefaultLockTTL,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(key) after unlocking.
func (m *Manager) acquire(key string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[key]
	if !exists {
		entry = &lockEntry{}
		m.locks[key] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[key]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, key)
	}
}

// GetOrCompute returns the table cached under key, computing and storing it
// on a miss. The boolean reports a cache hit. A failing store save is logged
// and does not fail the call: the computed table is still returned.
func (m *Manager) GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (*domain.Table, bool, error) {
	var (
		table *domain.Table
		hit   bool
	)
	err := m.WithLock(ctx, key, func(ctx context.Context) error {
		cached, err := m.store.Load(ctx, key)
		if err == nil {
			table, hit = cached, true
			return nil
		}
		if !errors.Is(err, domain.ErrTableNotFound) {
			return fmt.Errorf("failed to check cache: %w", err)
		}

		table, err = compute(ctx)
		if err != nil {
			return err
		}
		if err := m.store.Save(ctx, key, table); err != nil {
			m.logger.Warn("Failed to cache table", "key", key, "err", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	m.logger.Debug("cache lookup", "key", key, "hit", hit)
	return table, hit, nil
}

// Invalidate removes the table cached under key.
func (m *Manager) Invalidate(ctx context.Context, key string) error {
	return m.WithLock(ctx, key, func(ctx context.Context) error {
		return m.store.Delete(ctx, key)
	})
}

// Store returns the underlying table store.
func (m *Manager) Store() ports.TableStore {
	return m.store
}

// WithLock executes a function while holding the lock for the key.
func (m *Manager) WithLock(ctx context.Context, key string, fn func(context.Context) error) error {
	entry := m.acquire(key)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(key)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, key, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"key", key,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
