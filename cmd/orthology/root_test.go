package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/orthology/internal/cli"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseOptions runs loadOptions on a throwaway command carrying the same
// flags as the classify command.
func parseOptions(t *testing.T, args ...string) (cli.Options, error) {
	t.Helper()
	var (
		opts cli.Options
		err  error
	)
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err = loadOptions(cmd)
			return nil
		},
	}
	addGlobalFlags(cmd.Flags())
	addClassifyFlags(cmd)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return opts, err
}

func TestLoadOptions_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orthology.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \"|\"\nid_first: true\njobs: 2\ntargets: a|x\n"), 0644))

	opts, err := parseOptions(t, "--config", path, "--sep", "_", "--targets", "man_a,rat_c", "--json")
	require.NoError(t, err)

	assert.Equal(t, "_", opts.Separator)
	assert.True(t, opts.IDFirst, "unset flags keep the file value")
	assert.Equal(t, 2, opts.Jobs)
	assert.Equal(t, []string{"man_a", "rat_c"}, opts.Targets)
	assert.Equal(t, "json", opts.Format)
}

func TestLoadOptions_MissingExplicitConfig(t *testing.T) {
	_, err := parseOptions(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOptions_InvalidCache(t *testing.T) {
	_, err := parseOptions(t, "--cache", "s3")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&domain.ConfigurationError{Field: "separator"}, 2},
		{&domain.MalformedInputError{Err: errors.New("x")}, 3},
		{fmt.Errorf("tree 1: %w", &domain.UnsupportedTopologyError{}), 4},
		{&domain.OutputTargetError{Path: "out", Err: errors.New("x")}, 5},
		{errors.New("boom"), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exitCode(tt.err), tt.err.Error())
	}
}
