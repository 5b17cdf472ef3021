package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alextrs/oestandards/internal/cli/config"
	"github.com/alextrs/oestandards/internal/cli/output"
	"github.com/alextrs/oestandards/internal/state"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	statePath := getEnvOrDefault("OESTANDARDS_STATE_PATH", config.DefaultStateFile)
	outputFormat := getEnvOrDefault("OESTANDARDS_OUTPUT", config.DefaultOutput)
	severity := getEnvOrDefault("OESTANDARDS_SEVERITY", config.DefaultSeverity)
	verbose := os.Getenv("OESTANDARDS_VERBOSE") == "true"
	workers, _ := strconv.Atoi(os.Getenv("OESTANDARDS_WORKERS"))

	return &config.Config{
		StatePath:         statePath,
		Workers:           workers,
		Verbose:           verbose,
		OutputFormat:      outputFormat,
		SeverityThreshold: severity,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// openStateStore opens (creating if needed) the SQLite state database.
// The caller must Close the returned store.
func openStateStore(cfg *config.Config, logger *slog.Logger) (*state.SQLiteStore, error) {
	statePath := cfg.StatePath
	if statePath == "" {
		statePath = config.DefaultStateFile
	}

	// Ensure state directory exists
	stateDir := filepath.Dir(statePath)
	if stateDir != "." && stateDir != "" {
		if err := os.MkdirAll(stateDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	store := state.NewSQLiteStore(logger)
	if err := store.Open(statePath); err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := store.InitSchema(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}
