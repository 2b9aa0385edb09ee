package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/orthology/pkg/adapters/memory"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunTableStoreContract(t, store)
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	table := domain.NewTable([]string{"a_1", "b_1"})
	table.Set("a_1", "b_1", domain.Orthologous)
	require.NoError(t, store.Save(ctx, "k", table))

	table.Set("a_1", "b_1", domain.Ambiguous)

	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	rel, _ := loaded.Get("a_1", "b_1")
	assert.Equal(t, domain.Orthologous, rel, "store must keep its own copy")
	assert.Equal(t, 1, store.Len())
}
