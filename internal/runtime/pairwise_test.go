package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/orthology/internal/classify"
	"github.com/aretw0/orthology/internal/runtime"
	"github.com/aretw0/orthology/pkg/adapters/memory"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expectation struct {
	a, b string
	want domain.Relationship
}

func TestPairwise_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []expectation
	}{
		{
			name:  "two duplicated genes across two species",
			input: "((man_a,man_b),(mouse_a,mouse_b));",
			want: []expectation{
				{"man_a", "man_b", domain.InParalogous},
				{"mouse_a", "mouse_b", domain.InParalogous},
				{"man_a", "mouse_a", domain.Orthologous},
				{"man_a", "mouse_b", domain.Orthologous},
				{"man_b", "mouse_a", domain.Orthologous},
				{"man_b", "mouse_b", domain.Orthologous},
			},
		},
		{
			name:  "duplication below a speciation",
			input: "((man_a,man_b),rat_c);",
			want: []expectation{
				{"man_a", "man_b", domain.InParalogous},
				{"man_a", "rat_c", domain.Orthologous},
				{"man_b", "rat_c", domain.Orthologous},
			},
		},
		{
			name:  "duplication above two speciations",
			input: "((man_a,mouse_a),(man_b,mouse_b));",
			want: []expectation{
				{"man_a", "mouse_a", domain.Orthologous},
				{"man_b", "mouse_b", domain.Orthologous},
				{"man_a", "man_b", domain.OutParalogous},
				{"man_a", "mouse_b", domain.OutParalogous},
				{"mouse_a", "man_b", domain.OutParalogous},
				{"mouse_a", "mouse_b", domain.OutParalogous},
			},
		},
		{
			name:  "duplication mixing a speciated and a fresh lineage",
			input: "((man_a,mouse_a),man_b);",
			want: []expectation{
				{"man_a", "mouse_a", domain.Orthologous},
				{"man_a", "man_b", domain.OutParalogous},
				{"mouse_a", "man_b", domain.OutParalogous},
			},
		},
		{
			name:  "disjoint polytomy",
			input: "(man_a,mouse_a,rat_a);",
			want: []expectation{
				{"man_a", "mouse_a", domain.Orthologous},
				{"man_a", "rat_a", domain.Orthologous},
				{"mouse_a", "rat_a", domain.Orthologous},
			},
		},
		{
			name:  "overlapping polytomy",
			input: "(man_a,man_b,man_c);",
			want: []expectation{
				{"man_a", "man_b", domain.InParalogous},
				{"man_a", "man_c", domain.InParalogous},
				{"man_b", "man_c", domain.InParalogous},
			},
		},
		{
			name:  "ambiguous polytomy",
			input: "(man_a,man_b,mouse_a);",
			want: []expectation{
				{"man_a", "man_b", domain.Paralogous},
				{"man_a", "mouse_a", domain.Ambiguous},
				{"man_b", "mouse_a", domain.Ambiguous},
			},
		},
		{
			name:  "ambiguous polytomy over a speciated clade",
			input: "((man_a,mouse_a),man_b,rat_a);",
			want: []expectation{
				{"man_a", "mouse_a", domain.Orthologous},
				{"man_a", "man_b", domain.OutParalogous},
				{"mouse_a", "man_b", domain.OutParalogous},
				{"man_a", "rat_a", domain.Ambiguous},
				{"mouse_a", "rat_a", domain.Ambiguous},
				{"man_b", "rat_a", domain.Ambiguous},
			},
		},
		{
			name:  "duplication after an ambiguous polytomy",
			input: "((man_a,man_b,mouse_a),man_c);",
			want: []expectation{
				{"man_a", "man_b", domain.Paralogous},
				{"man_a", "man_c", domain.Paralogous},
				{"mouse_a", "man_c", domain.OutParalogous},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := classifyTree(t, tt.input)
			for _, e := range tt.want {
				got, ok := table.Get(e.a, e.b)
				require.True(t, ok, "missing pair %s/%s", e.a, e.b)
				assert.Equal(t, e.want, got, "%s/%s", e.a, e.b)
			}
		})
	}
}

func TestPairwise_Symmetric(t *testing.T) {
	for _, input := range sampleTrees {
		t.Run(input, func(t *testing.T) {
			table := classifyTree(t, input)
			for _, a := range table.Taxa {
				for _, b := range table.Taxa {
					if a == b {
						continue
					}
					ab, ok := table.Get(a, b)
					require.True(t, ok)
					ba, ok := table.Get(b, a)
					require.True(t, ok)
					assert.Equal(t, ab, ba, "%s/%s", a, b)
				}
			}
			n := len(table.Taxa)
			assert.Equal(t, n*(n-1)/2, table.Pairs(), "every unordered pair must be classified once")
		})
	}
}

func TestPairwise_Idempotent(t *testing.T) {
	for _, input := range sampleTrees {
		t.Run(input, func(t *testing.T) {
			root := mustTree(t, input)
			annotator := newAnnotator(t)

			run := func() *domain.Table {
				rec := runtime.NewPairwiseRecorder()
				_, err := annotator.Run(context.Background(), root, rec)
				require.NoError(t, err)
				table, err := rec.Table()
				require.NoError(t, err)
				return table
			}

			first, second := run(), run()
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("re-running the traversal changed the table (-first +second):\n%s", diff)
			}
		})
	}
}

func TestPairwise_TaxaInPostorder(t *testing.T) {
	table := classifyTree(t, "((man_b,(rat_a,man_a)),mouse_a);")
	assert.Equal(t, []string{"man_b", "rat_a", "man_a", "mouse_a"}, table.Taxa)
}

func TestPairwise_SingleLeaf(t *testing.T) {
	rec := runtime.NewPairwiseRecorder()
	_, err := newAnnotator(t).Run(context.Background(), memory.Leaf("man_a"), rec)
	require.NoError(t, err)

	table, err := rec.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"man_a"}, table.Taxa)

	records, err := table.Records("man_a")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPairwise_TableBeforeEnd(t *testing.T) {
	rec := runtime.NewPairwiseRecorder()
	_, err := rec.Table()
	assert.ErrorIs(t, err, domain.ErrTraversalIncomplete)

	rec.Begin(classify.NewAnnotations())
	_, err = rec.Table()
	assert.ErrorIs(t, err, domain.ErrTraversalIncomplete)
}

func TestPairwise_FailedRunHasNoTable(t *testing.T) {
	rec := runtime.NewPairwiseRecorder()
	tree := memory.Inner(memory.Leaves("man_a", "man_b"), memory.Leaf("nosep"))

	_, err := newAnnotator(t).Run(context.Background(), tree, rec)
	require.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = rec.Table()
	assert.ErrorIs(t, err, domain.ErrTraversalIncomplete)
}
