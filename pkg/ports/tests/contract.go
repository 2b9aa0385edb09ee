package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
)

// TreeLoaderContractTest is a reusable test suite that verifies if an adapter
// complies with ports.TreeLoader.
func TreeLoaderContractTest(t *testing.T, loader ports.TreeLoader) {
	t.Helper()
	ctx := context.Background()

	// 1. Binary tree
	t.Run("Load_Binary", func(t *testing.T) {
		trees, err := loader.Load(ctx, strings.NewReader("((man_a,man_b),(mouse_a,mouse_b));"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(trees) != 1 {
			t.Fatalf("expected 1 tree, got %d", len(trees))
		}
		got := Leaves(trees[0])
		want := []string{"man_a", "man_b", "mouse_a", "mouse_b"}
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("leaves mismatch. got %v, want %v", got, want)
		}
	})

	// 2. Polytomy keeps every child
	t.Run("Load_Polytomy", func(t *testing.T) {
		trees, err := loader.Load(ctx, strings.NewReader("(a_1,b_1,c_1);"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := len(trees[0].Children()); n != 3 {
			t.Errorf("expected 3 children at the root, got %d", n)
		}
	})

	// 3. Several trees in one input
	t.Run("Load_Multiple", func(t *testing.T) {
		trees, err := loader.Load(ctx, strings.NewReader("(a_1,b_1);\n(c_1,(d_1,e_1));\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(trees) != 2 {
			t.Fatalf("expected 2 trees, got %d", len(trees))
		}
	})

	// 4. Malformed input
	t.Run("Load_Malformed", func(t *testing.T) {
		_, err := loader.Load(ctx, strings.NewReader("((a_1,b_1);"))
		if err == nil {
			t.Fatal("expected error for unbalanced parentheses, got nil")
		}
		if !errors.Is(err, domain.ErrMalformedInput) {
			t.Errorf("expected ErrMalformedInput, got %v", err)
		}
	})
}

// Leaves returns the leaf labels of root from left to right.
func Leaves(root ports.Node) []string {
	if root.IsLeaf() {
		return []string{root.Label()}
	}
	var labels []string
	for _, child := range root.Children() {
		labels = append(labels, Leaves(child)...)
	}
	return labels
}
