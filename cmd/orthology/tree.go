package main

import (
	"github.com/aretw0/orthology/internal/cli"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Draw the input trees with their inferred events",
	Long:  `Prints each tree as ASCII art, or as a Mermaid flowchart (graph TD) with --mermaid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunTree(cmd.Context(), opts, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	addInputFlags(treeCmd)
	treeCmd.Flags().Bool("mermaid", false, "Output a Mermaid flowchart; --targets are highlighted")
}
