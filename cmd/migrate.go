package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structech/survey-api/internal/database"
	"github.com/structech/survey-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the Crack Survey API.

Migrations are applied with GORM auto migration: the schema is brought
up to date from the model definitions, adding missing tables, columns
and indexes. Existing columns are never dropped.

Available subcommands:
  up      - Apply all pending migrations
  status  - Show current migration status`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply all pending database migrations.

This command brings the database schema up to date with the current
model definitions, creating any missing tables, columns and indexes.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

This command shows, for every model, whether its table already exists
in the configured database.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Fprintf(cmd.OutOrStdout(), "Schema is up to date at %s\n", cfg.Database.Path)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg.Database.Path, database.Options{
		EnableForeignKeys: cfg.Database.EnableForeignKeys,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Database: %s\n\n", cfg.Database.Path)

	migrator := db.Migrator()
	for _, model := range allModels() {
		state := "missing"
		if migrator.HasTable(model) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-20T %s\n", model, state)
	}

	return nil
}
