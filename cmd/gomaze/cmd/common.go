package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gomaze/internal/config"
	"github.com/dbsmedya/gomaze/internal/database"
	"github.com/dbsmedya/gomaze/internal/history"
	"github.com/dbsmedya/gomaze/internal/logger"
	"github.com/dbsmedya/gomaze/internal/render"
	"github.com/dbsmedya/gomaze/internal/solver"
)

// loadConfig reads, overrides and validates the configuration. When
// allowMissing is set and the default config file does not exist, the
// built-in defaults are used instead.
func loadConfig(cmd *cobra.Command, allowMissing bool) (*config.Config, error) {
	configFile := GetConfigFile()

	useDefaults := false
	if allowMissing && !cmd.Flags().Changed("config") {
		if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
			useDefaults = true
		}
	}

	cfg := config.DefaultConfig()
	if !useDefaults {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.NoColor, overrides.VerifyMethod)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup loads the config and builds a logger for it.
func setup(cmd *cobra.Command, allowMissing bool) (*config.Config, *logger.Logger, error) {
	cfg, err := loadConfig(cmd, allowMissing)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}

// newRenderer writes to the command's output.
func newRenderer(cmd *cobra.Command, cfg *config.Config) *render.Renderer {
	return render.New(cmd.OutOrStdout(), render.OptionsFromConfig(cfg.Render))
}

// openHistory connects the history store. It returns a nil store when history
// is disabled. The returned close function is always safe to call.
func openHistory(ctx context.Context, cfg *config.Config, log *logger.Logger) (*history.Store, func(), error) {
	noop := func() {}
	if !cfg.History.Enabled {
		return nil, noop, nil
	}

	cfg.History.SQLitePath = cfg.ResolvePath(cfg.History.SQLitePath)
	dbManager := database.NewManager(&cfg.History)
	if err := dbManager.Connect(ctx); err != nil {
		return nil, noop, err
	}
	closeFn := func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("Failed to close history database: %v", err)
		}
	}

	store, err := history.NewStore(dbManager.DB, dbManager.Dialect, cfg.History.Table, log)
	if err != nil {
		closeFn()
		return nil, noop, err
	}
	if err := store.InitializeTables(ctx); err != nil {
		closeFn()
		return nil, noop, err
	}
	return store, closeFn, nil
}

// parseAlgorithmFlag turns a comma separated --algorithm value into algorithms.
// An empty value returns nil so the configured algorithms apply.
func parseAlgorithmFlag(value string) ([]solver.Algorithm, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	return solver.ParseAlgorithms(strings.Split(value, ","))
}

// checkMazeSource enforces exactly one of --maze and --file.
func checkMazeSource(maze, file string) error {
	switch {
	case maze == "" && file == "":
		return fmt.Errorf("one of --maze or --file is required")
	case maze != "" && file != "":
		return fmt.Errorf("--maze and --file are mutually exclusive")
	}
	return nil
}

