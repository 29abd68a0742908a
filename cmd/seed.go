package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structech/survey-api/internal/models"
	"github.com/structech/survey-api/internal/services/projects"
	"github.com/structech/survey-api/internal/services/users"
	"github.com/structech/survey-api/pkg/config"
)

var (
	seedEmail    string
	seedPassword string
	seedName     string
	seedDemo     bool
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the initial admin account",
	Long: `Create the initial admin account in the configured database.

Seeding is idempotent: if the admin account already exists it is left
untouched. With --demo a sample project and a project-scoped user are
created as well, which is useful for local development.

Example:
  survey-api seed --email admin@example.com --password changeme
  survey-api seed --email admin@example.com --password changeme --demo`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&seedEmail, "email", "admin@example.com", "admin email address")
	seedCmd.Flags().StringVar(&seedPassword, "password", "", "admin password (required)")
	seedCmd.Flags().StringVar(&seedName, "name", "Administrator", "admin display name")
	seedCmd.Flags().BoolVar(&seedDemo, "demo", false, "also create demo project data")
	_ = seedCmd.MarkFlagRequired("password")
}

func runSeed(cmd *cobra.Command, args []string) error {
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

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	userService := users.NewService(users.NewRepository(db.DB), cfg.Auth.BcryptCost)

	admin, err := userService.CreateUser(ctx, seedEmail, seedPassword, seedName, models.RoleAdmin)
	switch {
	case errors.Is(err, users.ErrDuplicateEmail):
		fmt.Fprintf(out, "Admin account %s already exists, skipping\n", seedEmail)
	case err != nil:
		return fmt.Errorf("failed to create admin account: %w", err)
	default:
		fmt.Fprintf(out, "Created admin account %s (id %d)\n", admin.Email, admin.ID)
	}

	if !seedDemo {
		return nil
	}

	projectService := projects.NewService(projects.NewRepository(db.DB), users.NewRepository(db.DB))

	location := "Pier 4, east elevation"
	description := "Demo project for local development"
	project, err := projectService.CreateProject(ctx, "Demo Bridge Survey", "Structech Demo", &location, &description, nil)
	if err != nil {
		return fmt.Errorf("failed to create demo project: %w", err)
	}
	fmt.Fprintf(out, "Created demo project %q (id %d)\n", project.Name, project.ID)

	inspector, err := userService.CreateUser(ctx, "inspector@example.com", "inspector1", "Demo Inspector", models.RoleProjectUser)
	if errors.Is(err, users.ErrDuplicateEmail) {
		inspector, err = userService.GetUserByEmail(ctx, "inspector@example.com")
	}
	if err != nil {
		return fmt.Errorf("failed to create demo inspector: %w", err)
	}

	if err := projectService.AddMember(ctx, project.ID, inspector.ID); err != nil {
		return fmt.Errorf("failed to add demo inspector to project: %w", err)
	}
	fmt.Fprintf(out, "Added %s to project %d\n", inspector.Email, project.ID)

	return nil
}
