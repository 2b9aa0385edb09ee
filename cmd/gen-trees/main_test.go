package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/orthology"
	"github.com/aretw0/orthology/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	p := params{trees: 3, leaves: 12, species: 3, sep: "_", seed: 7}

	var buf bytes.Buffer
	require.NoError(t, generate(&buf, p))

	eng, err := orthology.New(orthology.WithSeparator("_"))
	require.NoError(t, err)
	roots, err := eng.Load(context.Background(), &buf)
	require.NoError(t, err)
	require.Len(t, roots, 3)

	for _, root := range roots {
		assert.Len(t, tests.Leaves(root), 12)
		table, err := eng.Classify(context.Background(), root)
		require.NoError(t, err)
		assert.Equal(t, 12*11/2, table.Pairs())

		_, err = eng.Compact(context.Background(), root)
		assert.NoError(t, err, "generated trees are binary")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := params{trees: 2, leaves: 8, species: 2, sep: "|", seed: 42}

	var a, b bytes.Buffer
	require.NoError(t, generate(&a, p))
	require.NoError(t, generate(&b, p))
	assert.Equal(t, a.String(), b.String())
}

func TestGenerate_InvalidParams(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, generate(&buf, params{trees: 1, leaves: 1, species: 1}))
}
