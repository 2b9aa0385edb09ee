package main

import (
	"github.com/aretw0/orthology/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the input trees without classifying them",
	Long: `Crawls every tree and reports all problems at once: nodes with a single
child, empty or duplicated leaf labels, labels without the separator and, with
--compact, polytomies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunValidate(cmd.Context(), opts, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringP("input", "i", "", "Newick tree file ('-' for standard input)")
	validateCmd.Flags().Bool("compact", false, "Validate for compact classification (binary trees only)")
}
