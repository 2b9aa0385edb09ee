package main

import (
	"github.com/aretw0/orthology/internal/cli"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify every pair of leaves of the input trees",
	Long: `Reads the Newick trees of --input and prints, for each target, its
relationship to every other leaf. With --output the records are written as one
CSV file per target into that directory instead.`,
	Example: `  orthology classify --input genes.nwk --sep _ --targets man_a,mouse_b
  orthology --input genes.nwk --sep "|" --id-first --output ./out`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.RunClassify(ctx, opts, cli.StdStreams())
	},
}

// addInputFlags registers the flags shared by every command reading trees.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Newick tree file ('-' for standard input)")
	cmd.Flags().StringSlice("targets", nil, "Leaf labels to report (default: every leaf)")
}

func addClassifyFlags(cmd *cobra.Command) {
	addInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Directory to write one CSV file per target into")
	cmd.Flags().Bool("display-tree", false, "Draw the tree before the relationships")
	cmd.Flags().Bool("compact", false, "Print compact node statements instead of pairs")
	cmd.Flags().Bool("json", false, "Print one JSON object per record")
	cmd.Flags().Int("jobs", 0, "Trees classified concurrently (0: no limit)")
	cmd.Flags().String("cache", "", "Cache classified tables: file or redis")
	cmd.Flags().String("cache-path", "", "Directory of the file cache")
	cmd.Flags().String("redis-addr", "", "Address of the Redis cache")
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	addClassifyFlags(classifyCmd)

	// Classify is the default command.
	addClassifyFlags(rootCmd)
	rootCmd.RunE = classifyCmd.RunE
}
