package newick_test

import (
	"strings"
	"testing"

	"github.com/aretw0/orthology/pkg/adapters/newick"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain tree", "(man_a,rat_c);", "(man_a,rat_c);"},
		{"whitespace controls", "(man_a,\n\trat_c);\r\n", "(man_a,\n\trat_c);\r\n"},
		{"ansi escape", "(\x1b[31mman_a,rat_c);", "([31mman_a,rat_c);"},
		{"null byte", "(man\x00_a,rat_c);", "(man_a,rat_c);"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newick.Sanitize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitize_Rejects(t *testing.T) {
	t.Setenv(newick.EnvMaxInputSize, "16")

	_, err := newick.Sanitize(strings.Repeat("a", 16))
	assert.NoError(t, err)

	_, err = newick.Sanitize(strings.Repeat("a", 17))
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
	assert.ErrorIs(t, err, newick.ErrInputTooLarge)

	_, err = newick.Sanitize("(man_a,\xff);")
	assert.ErrorIs(t, err, newick.ErrInvalidUTF8)
}

func TestSanitize_IgnoresBadLimit(t *testing.T) {
	t.Setenv(newick.EnvMaxInputSize, "lots")
	_, err := newick.Sanitize(strings.Repeat("a", 1024))
	assert.NoError(t, err)
}
