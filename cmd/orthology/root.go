package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/orthology/internal/cli"
	"github.com/aretw0/orthology/internal/config"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "orthology",
	Short: "Label orthologous and paralogous relationships in gene trees",
	Long: `Orthology reads rooted Newick gene trees whose leaves are named
<species><sep><gene id> and infers, for every pair of leaves, whether they are
orthologous, in-paralogous, out-paralogous or ambiguous.

Running it without a subcommand is the same as 'orthology classify'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error kinds to distinct process exit statuses.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrConfiguration):
		return 2
	case errors.Is(err, domain.ErrMalformedInput):
		return 3
	case errors.Is(err, domain.ErrUnsupportedTopology):
		return 4
	case errors.Is(err, domain.ErrOutputTarget):
		return 5
	}
	return 1
}

func init() {
	// Persistent flags (available to all commands)
	addGlobalFlags(rootCmd.PersistentFlags())
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	flags.String("sep", "", "Separator between species name and gene id in leaf labels")
	flags.Bool("id-first", false, "Leaf labels put the gene id before the species name")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
}

// loadOptions reads the configuration file and applies the flags the user
// set on top of it.
func loadOptions(cmd *cobra.Command) (cli.Options, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path, flags.Changed("config"))
	if err != nil {
		return cli.Options{}, err
	}
	opts := cli.Options{Config: cfg}

	setString(flags, "sep", &opts.Separator)
	setBool(flags, "id-first", &opts.IDFirst)
	setString(flags, "log-level", &opts.LogLevel)
	setStrings(flags, "targets", &opts.Targets)
	setString(flags, "output", &opts.Output)
	setBool(flags, "display-tree", &opts.DisplayTree)
	setBool(flags, "compact", &opts.Compact)
	setInt(flags, "jobs", &opts.Jobs)
	setString(flags, "cache", &opts.Store)
	setString(flags, "cache-path", &opts.StorePath)
	setString(flags, "redis-addr", &opts.RedisAddr)
	setBool(flags, "pretty", &opts.Pretty)
	setBool(flags, "mermaid", &opts.Mermaid)
	setString(flags, "transport", &opts.Transport)
	setBool(flags, "quiet", &opts.Quiet)

	if json, _ := flags.GetBool("json"); json {
		opts.Format = "json"
	}
	opts.Input, _ = flags.GetString("input")
	opts.Addr, _ = flags.GetString("addr")

	return opts, opts.Validate()
}

func setString(flags *pflag.FlagSet, name string, dst *string) {
	if flags.Lookup(name) != nil && flags.Changed(name) {
		*dst, _ = flags.GetString(name)
	}
}

func setStrings(flags *pflag.FlagSet, name string, dst *[]string) {
	if flags.Lookup(name) != nil && flags.Changed(name) {
		*dst, _ = flags.GetStringSlice(name)
	}
}

func setBool(flags *pflag.FlagSet, name string, dst *bool) {
	if flags.Lookup(name) != nil && flags.Changed(name) {
		*dst, _ = flags.GetBool(name)
	}
}

func setInt(flags *pflag.FlagSet, name string, dst *int) {
	if flags.Lookup(name) != nil && flags.Changed(name) {
		*dst, _ = flags.GetInt(name)
	}
}
