package cli

import (
	"fmt"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(cfg *config.Config, db *gorm.DB) error {
				if err := models.AutoMigrate(db); err != nil {
					return fmt.Errorf("auto migrate: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
				return nil
			})
		},
	}
}

// withDatabase loads configuration, opens the store and runs fn against it.
func withDatabase(fn func(cfg *config.Config, db *gorm.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return err
	}
	defer config.CloseDatabase(db)

	return fn(cfg, db)
}
