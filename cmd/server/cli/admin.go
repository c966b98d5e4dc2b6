package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"cleanenergy-leads/internal/adapters/persistence/models"
	"cleanenergy-leads/internal/adapters/persistence/repositories"
	"cleanenergy-leads/internal/config"
	"cleanenergy-leads/internal/core/services"
	"cleanenergy-leads/internal/pkg/password"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/gorm"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
		Long:  "Create and list the admin accounts that can read and delete leads.",
	}

	cmd.AddCommand(newAdminCreateCmd())
	cmd.AddCommand(newAdminListCmd())

	return cmd
}

// ---------- admin create ----------

func newAdminCreateCmd() *cobra.Command {
	var (
		email  string
		secret string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new admin account",
		Example: `  cleanenergy-leads admin create --email admin@example.com --password s3cretpass
  cleanenergy-leads admin create --email admin@example.com  # prompts for password`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCreate(cmd, email, secret)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email address (required)")
	cmd.Flags().StringVar(&secret, "password", "", "Admin password (prompted if omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runAdminCreate(cmd *cobra.Command, email, secret string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address: %q", email)
	}

	// Prompt for password if not provided
	if secret == "" {
		var err error
		if secret, err = promptPassword(); err != nil {
			return err
		}
	}

	if !password.ValidatePassword(secret) {
		return fmt.Errorf("password must be at least %d characters", password.MinLength)
	}

	return withDatabase(func(cfg *config.Config, db *gorm.DB) error {
		if err := models.AutoMigrate(db); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}

		authService := services.NewAuthService(repositories.NewAdminRepository(db), cfg)
		admin, err := authService.ProvisionAdmin(context.Background(), &services.ProvisionAdminInput{
			Email:    email,
			Password: secret,
		})
		if errors.Is(err, services.ErrAdminAlreadyExists) {
			return fmt.Errorf("admin %q already exists", email)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created admin %q (id %d)\n", admin.Email, admin.ID)
		return nil
	})
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()

	fmt.Print("Confirm password: ")
	confirmBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}
	fmt.Println()

	if string(pwBytes) != string(confirmBytes) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(pwBytes), nil
}

// ---------- admin list ----------

func newAdminListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all admin accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminList(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runAdminList(cmd *cobra.Command, jsonOutput bool) error {
	return withDatabase(func(cfg *config.Config, db *gorm.DB) error {
		authService := services.NewAuthService(repositories.NewAdminRepository(db), cfg)
		admins, err := authService.ListAdmins(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(admins)
		}

		if len(admins) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No admin accounts. Use 'cleanenergy-leads admin create' to create one.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-40s\n", "ID", "EMAIL")
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-40s\n", "--", "-----")
		for _, a := range admins {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8d %-40s\n", a.ID, a.Email)
		}
		return nil
	})
}
