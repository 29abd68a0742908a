package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/structech/survey-api/api"
	"github.com/structech/survey-api/internal/database"
	"github.com/structech/survey-api/internal/models"
	"github.com/structech/survey-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Crack Survey API server with the configured settings.

The server exposes the project, crack record and design map endpoints
and serves uploaded project files from local storage.

Example:
  survey-api serve
  survey-api serve --port 9090
  survey-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDatabase(db)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting Crack Survey API server on %s\n", address)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s\n", address)

	// Wait for interrupt signal, command cancellation or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case <-cmd.Context().Done():
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// openDatabase connects to SQLite and brings the schema up to date
func openDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.Initialize(cfg.Database.Path, database.Options{
		LogQueries:        cfg.Database.LogQueries,
		EnableWAL:         cfg.Database.EnableWAL,
		EnableForeignKeys: cfg.Database.EnableForeignKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.AutoMigrate(allModels()...); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// allModels lists every persisted model in migration order
func allModels() []any {
	return []any{
		&models.User{},
		&models.RefreshToken{},
		&models.Project{},
		&models.ProjectUser{},
		&models.ProjectFile{},
		&models.Block{},
		&models.CrackRecord{},
		&models.DesignMap{},
	}
}
