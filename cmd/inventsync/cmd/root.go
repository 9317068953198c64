// Package cmd implements the CLI commands for the inventsync server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "inventsync",
	Short: "Multi-channel inventory manager",
	Long:  "An API-first service that manages a product catalog and publishes products to connected marketplaces, starting with eBay.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
