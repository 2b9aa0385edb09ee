package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/orthology/internal/runtime"
	"github.com/aretw0/orthology/internal/testutils"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
	"github.com/aretw0/orthology/pkg/species"
	"github.com/stretchr/testify/require"
)

// sampleTrees covers binary trees, polytomies and deep nesting.
var sampleTrees = []string{
	"((man_a,man_b),(mouse_a,mouse_b));",
	"((man_a,man_b),rat_c);",
	"((man_a,mouse_a),(man_b,mouse_b));",
	"(((man_a,rat_a),(man_b,rat_b)),(mouse_a,(mouse_b,mouse_c)));",
	"(man_a,mouse_a,rat_a);",
	"(man_a,man_b,mouse_a);",
	"((man_a,mouse_a),man_b,(rat_a,rat_b),dog_a);",
}

func mustTree(t *testing.T, input string) ports.Node {
	t.Helper()
	return testutils.ParseTree(t, input)
}

func newAnnotator(t *testing.T, opts ...runtime.Option) *runtime.Annotator {
	t.Helper()
	ext, err := species.New("_", false)
	require.NoError(t, err)
	return runtime.NewAnnotator(ext, opts...)
}

func classifyTree(t *testing.T, input string) *domain.Table {
	t.Helper()
	rec := runtime.NewPairwiseRecorder()
	_, err := newAnnotator(t).Run(context.Background(), mustTree(t, input), rec)
	require.NoError(t, err)
	table, err := rec.Table()
	require.NoError(t, err)
	return table
}

func compactTree(t *testing.T, input string) []domain.Statement {
	t.Helper()
	rec := runtime.NewCompactRecorder()
	_, err := newAnnotator(t).Run(context.Background(), mustTree(t, input), rec)
	require.NoError(t, err)
	statements, err := rec.Statements()
	require.NoError(t, err)
	return statements
}
