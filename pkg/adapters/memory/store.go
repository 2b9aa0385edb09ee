package memory

import (
	"context"
	"sync"

	"github.com/aretw0/orthology/pkg/domain"
)

// Store implements ports.TableStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Table
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Table),
	}
}

// Save persists a copy of the table in memory.
func (s *Store) Save(ctx context.Context, key string, table *domain.Table) error {
	copied := cloneTable(table)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Load retrieves a copy of the table so callers cannot mutate the store.
func (s *Store) Load(ctx context.Context, key string) (*domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.data[key]
	if !ok {
		return nil, domain.ErrTableNotFound
	}
	return cloneTable(table), nil
}

// Delete removes the table.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len returns the number of cached tables.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func cloneTable(t *domain.Table) *domain.Table {
	out := domain.NewTable(t.Taxa)
	for a, row := range t.Relations {
		for b, rel := range row {
			out.Set(a, b, rel)
		}
	}
	return out
}
