package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/orthology/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTableStoreContract runs a suite of tests to verify that a TableStore
// implementation adheres to the defined interface contract.
func RunTableStoreContract(t *testing.T, store TableStore) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405")

	sample := func() *domain.Table {
		table := domain.NewTable([]string{"man_a", "man_b", "mouse_a"})
		table.Set("man_a", "man_b", domain.InParalogous)
		table.Set("man_a", "mouse_a", domain.Orthologous)
		table.Set("man_b", "mouse_a", domain.Orthologous)
		return table
	}

	t.Run("Save and Load", func(t *testing.T) {
		table := sample()

		err := store.Save(ctx, key, table)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, table.Taxa, loaded.Taxa)
		assert.Equal(t, table.Relations, loaded.Relations)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrTableNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, sample()))

		replacement := domain.NewTable([]string{"x_1", "y_1"})
		replacement.Set("x_1", "y_1", domain.Ambiguous)
		require.NoError(t, store.Save(ctx, key, replacement))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		rel, ok := loaded.Get("y_1", "x_1")
		assert.True(t, ok)
		assert.Equal(t, domain.Ambiguous, rel)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, sample()))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrTableNotFound, "Load after Delete should return ErrTableNotFound")
	})

	t.Run("Delete Non-Existent", func(t *testing.T) {
		err := store.Delete(ctx, "never-saved-"+key)
		assert.NoError(t, err, "Delete of a missing key should be a no-op")
	})
}
