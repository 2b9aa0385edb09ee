package main

import (
	"github.com/aretw0/orthology"
	"github.com/aretw0/orthology/internal/cli"
	"github.com/aretw0/orthology/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Exposes POST /classify, POST /compact, GET /healthz and GET /metrics.
The separator is chosen per request; --cache shares tables between requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		if !opts.Quiet {
			tui.PrintBanner(cmd.OutOrStdout(), orthology.Version)
		}
		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.RunServe(ctx, opts, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("cache", "", "Cache classified tables: file or redis")
	serveCmd.Flags().String("cache-path", "", "Directory of the file cache")
	serveCmd.Flags().String("redis-addr", "", "Address of the Redis cache")
	serveCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
}
