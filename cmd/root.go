// Package cmd implements the command-line interface for the newspaper
// crawler: the root command plus the crawl, stats, and sources
// subcommands.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ysleecn1234/newspaper-project/cmd/common"
	"github.com/ysleecn1234/newspaper-project/cmd/crawl"
	"github.com/ysleecn1234/newspaper-project/cmd/sources"
	"github.com/ysleecn1234/newspaper-project/cmd/stats"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "newspaper",
	Short: "Korean news-article crawler",
	Long: `Crawls Korean news publishers' category listings, extracts structured
article records, and persists them to PostgreSQL with per-journalist
statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&common.CfgFile, "config", "",
		"config file (default is ./config.yaml or ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&common.Debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("newspaper version %s\n", Version)
		},
	})

	rootCmd.AddCommand(crawl.Command())
	rootCmd.AddCommand(stats.Command())
	rootCmd.AddCommand(sources.Command())
}
