package main

import (
	"github.com/aretw0/orthology/internal/cli"
	"github.com/spf13/cobra"
)

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Print one relationship statement per internal node",
	Long: `Summarises binary trees node by node: each statement relates every leaf
on its left to every leaf on its right, e.g.

   ORTHOLOGY RELATIONSHIP: man_a,man_b <====> rat_c`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.RunCompact(ctx, opts, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(compactCmd)
	compactCmd.Flags().StringP("input", "i", "", "Newick tree file ('-' for standard input)")
	compactCmd.Flags().Bool("pretty", false, "Render the statements as a formatted table")
	compactCmd.Flags().Bool("json", false, "Print the statements as JSON")
}
