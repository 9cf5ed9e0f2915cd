package cmd

import (
	"fmt"

	"github.com/dbsmedya/gomaze/internal/config"
	"github.com/spf13/cobra"
)

var listMazesCmd = &cobra.Command{
	Use:   "list-mazes",
	Short: "List all mazes defined in configuration",
	Long: `List-mazes displays all mazes defined in the configuration file
along with their layout file and solver settings.

Example:
  gomaze list-mazes --config gomaze.yaml`,
	RunE: runListMazes,
}

func init() {
	rootCmd.AddCommand(listMazesCmd)
}

func runListMazes(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	names := cfg.ListMazes()
	if len(names) == 0 {
		cmd.Printf("No mazes defined in %s\n", configFile)
		return nil
	}

	cmd.Printf("Mazes defined in %s:\n\n", configFile)

	for i, name := range names {
		maze, err := cfg.GetMaze(name)
		if err != nil {
			return fmt.Errorf("failed to get maze %q: %w", name, err)
		}

		cmd.Printf("%d. %s\n", i+1, name)
		cmd.Printf("   File:          %s\n", cfg.ResolvePath(maze.File))
		if maze.Description != "" {
			cmd.Printf("   Description:   %s\n", maze.Description)
		}

		if maze.Solver != nil {
			solverCfg := maze.GetMazeSolver(cfg.Solver)
			cmd.Printf("   Solver:        Custom (algorithms=%v, verify=%s)\n",
				solverCfg.Algorithms, solverCfg.VerifyMethod)
		}

		if i < len(names)-1 {
			cmd.Println()
		}
	}

	cmd.Printf("\nTotal: %d maze(s)\n", len(names))
	return nil
}
