package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	envFile    string
	appVersion string
)

// Execute creates the root command tree and runs it.
func Execute(version string) error {
	appVersion = version
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanenergy-leads",
		Short: "Lead capture API for the clean energy reseller",
		Long: `Lead capture API for the clean energy reseller.

Running without a subcommand starts the HTTP server. Configuration comes from
environment variables, optionally loaded from a .env file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "config", "", "env file to load before ./.env")
	cmd.PersistentFlags().String("port", "", "HTTP port (overrides PORT)")
	viper.BindPFlag("PORT", cmd.PersistentFlags().Lookup("port"))

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newAdminCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("cleanenergy-leads %s\n", appVersion)
		},
	}
}

// loadEnvFile loads the --config env file. Variables already set in the
// environment win, as with ./.env.
func loadEnvFile() error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}
