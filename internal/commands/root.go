package commands

import (
	"github.com/spf13/cobra"

	"github.com/skinledger/skinledger/internal/buildinfo"
	"github.com/skinledger/skinledger/internal/config"
	"github.com/skinledger/skinledger/internal/keys"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	envFile    string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "skinledger",
		Short:   "Skinport transaction history reports",
		Long:    "Skinledger fetches your Skinport transaction history and reports sales and purchases over time, sales per buyer country, and item searches.",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.DefaultPath, "config file (optional)")
	rootCmd.PersistentFlags().StringVar(&g.envFile, "env-file", keys.DefaultPath, "file holding API_CLIENT_ID and API_CLIENT_SECRET")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(
		newDailyCommand(g),
		newCountriesCommand(g),
		newSearchCommand(g),
		newKeysCommand(g),
		newServeCommand(g),
	)

	return rootCmd
}
