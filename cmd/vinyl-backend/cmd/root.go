// Package cmd implements the CLI commands for vinyl-backend.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vinyl-backend",
	Short: "Vinyl record discovery API",
	Long: "An HTTP API that finds, ranks and prices vinyl records by querying the eBay " +
		"Browse and Finding APIs: trending listings, search, barcode lookup, " +
		"recommendations and sold price history.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command, for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}
