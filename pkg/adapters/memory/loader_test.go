package memory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/orthology/pkg/adapters/memory"
	contract "github.com/aretw0/orthology/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_ReturnsConfiguredTrees(t *testing.T) {
	tree := memory.Inner(
		memory.Leaves("man_a", "man_b"),
		memory.Leaves("mouse_a", "mouse_b"),
	)
	loader := memory.NewLoader(tree)

	trees, err := loader.Load(context.Background(), strings.NewReader("ignored"))
	require.NoError(t, err)
	require.Len(t, trees, 1)
	assert.Equal(t, []string{"man_a", "man_b", "mouse_a", "mouse_b"}, contract.Leaves(trees[0]))
}

func TestLoader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.NewLoader(memory.Leaf("a_1")).Load(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNode(t *testing.T) {
	leaf := memory.Leaf("man_a")
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, "man_a", leaf.Label())
	assert.Empty(t, leaf.Children())

	inner := memory.Named("95", leaf, memory.Leaf("rat_a"))
	assert.False(t, inner.IsLeaf())
	assert.Equal(t, "95", inner.Label())
	assert.Len(t, inner.Children(), 2)
}
