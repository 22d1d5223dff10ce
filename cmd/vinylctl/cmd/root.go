// Package cmd implements the vinylctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/clareta27/vinyl-backend/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "vinylctl",
		Short: "CLI client for the vinyl discovery API",
		Long: "vinylctl is a command-line client for the vinyl-backend API.\n" +
			"It browses trending records, searches and looks up releases,\n" +
			"and shows sold price history from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.vinylctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("country", "", "marketplace country code (server default when empty)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("country", rootCmd.PersistentFlags().Lookup("country")))

	rootCmd.AddCommand(trendingCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(lookupCmd())
	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(chartCmd())
	rootCmd.AddCommand(quotaCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vinylctl")
	}

	viper.SetEnvPrefix("VINYL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func country() string {
	return viper.GetString("country")
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
