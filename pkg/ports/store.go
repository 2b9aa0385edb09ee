package ports

import (
	"context"

	"github.com/aretw0/orthology/pkg/domain"
)

// RecordWriter defines where relationship records are delivered.
type RecordWriter interface {
	// Write delivers the records of one target taxon. tree is the zero-based
	// index of the tree in the input, for inputs holding several trees.
	Write(ctx context.Context, tree int, target string, records []domain.Record) error
}

// TableStore defines the interface for caching completed relationship tables.
type TableStore interface {
	// Save persists the table under key.
	Save(ctx context.Context, key string, table *domain.Table) error

	// Load retrieves the table stored under key.
	// Returns domain.ErrTableNotFound if the key does not exist.
	Load(ctx context.Context, key string) (*domain.Table, error)

	// Delete removes the table stored under key.
	Delete(ctx context.Context, key string) error
}
