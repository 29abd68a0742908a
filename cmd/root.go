package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structech/survey-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "survey-api",
	Short: "Crack Survey API server",
	Long: `Crack Survey API - crack survey records and design map management

This API manages projects, survey blocks, imported crack records and the
design maps that place each crack on a project's design drawing.

Features:
  • Crack record import from Excel survey workbooks
  • Run-scoped block catalogues with fill-down resolution
  • Design map placement with per-crack uniqueness
  • Project membership and token-based authentication
  • Project file uploads and downloads`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig initializes the configuration system. Commands that need
// config call this at the top of their RunE rather than via OnInitialize,
// so help and version stay usable without a config file.
func loadConfig() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}
	return nil
}
