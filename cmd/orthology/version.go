package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/orthology"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of orthology",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "orthology version %s\n", strings.TrimSpace(orthology.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
