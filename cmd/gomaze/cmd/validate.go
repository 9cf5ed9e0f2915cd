package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gomaze/internal/config"
	"github.com/dbsmedya/gomaze/internal/database"
	"github.com/dbsmedya/gomaze/internal/grid"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and maze files",
	Long: `Validate checks the configuration file and parses every configured
maze layout.

Checks performed:
  - Configuration syntax and required fields
  - Each maze file exists and parses (rectangular, one start, one end,
    known symbols, start and end not walls)
  - History database connectivity when history is enabled

Example:
  gomaze validate --config gomaze.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, log, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("Starting validation checks...")

	cmd.Printf("\n=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n", configFile)
	cmd.Printf("Mazes found: %d\n\n", len(cfg.Mazes))

	failed := 0
	for _, name := range cfg.ListMazes() {
		g, err := loadMaze(cfg, name)
		if err != nil {
			failed++
			cmd.Printf("  ✗ %s: %v\n", name, err)
			log.WithMaze(name).Errorf("Maze validation FAILED: %v", err)
			continue
		}
		cmd.Printf("  ✓ %s: %dx%d, %d open cells, start %s, end %s\n",
			name, g.Rows(), g.Cols(), g.OpenCells(), g.Start().Coord(), g.End().Coord())
	}

	if cfg.History.Enabled {
		ctx, stop := database.SetupSignalHandler(cmd.Context())
		defer stop()

		cfg.History.SQLitePath = cfg.ResolvePath(cfg.History.SQLitePath)
		dbManager := database.NewManager(&cfg.History)
		if err := dbManager.Connect(ctx); err != nil {
			failed++
			cmd.Printf("  ✗ history (%s): %v\n", cfg.History.Driver, err)
		} else {
			if err := dbManager.Ping(ctx); err != nil {
				failed++
				cmd.Printf("  ✗ history (%s): %v\n", cfg.History.Driver, err)
			} else {
				cmd.Printf("  ✓ history (%s): connected\n", cfg.History.Driver)
			}
			dbManager.Close()
		}
	}

	cmd.Println()
	if failed > 0 {
		return fmt.Errorf("validation failed: %d problem(s) found", failed)
	}

	cmd.Println("✓ All checks passed")
	log.Info("Validation completed successfully")
	return nil
}

// loadMaze parses the layout file of a configured maze.
func loadMaze(cfg *config.Config, name string) (*grid.Grid, error) {
	path, err := cfg.MazePath(name)
	if err != nil {
		return nil, err
	}
	return grid.Load(path)
}
