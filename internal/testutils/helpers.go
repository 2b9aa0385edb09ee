// Package testutils holds helpers shared by the test suites.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/orthology/pkg/adapters/newick"
	"github.com/aretw0/orthology/pkg/ports"
	"github.com/stretchr/testify/require"
)

// WriteFile creates name with content in a fresh temporary directory and
// returns its absolute path. It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp file")
	require.NoError(t, os.WriteFile(absPath, []byte(content), 0644), "Failed to write temp file")

	return absPath
}

// ParseTree parses input, which must hold exactly one Newick tree.
func ParseTree(t *testing.T, input string) ports.Node {
	t.Helper()

	trees, err := newick.Parse(input)
	require.NoError(t, err, "Failed to parse %q", input)
	require.Len(t, trees, 1, "Expected a single tree in %q", input)

	return trees[0]
}
