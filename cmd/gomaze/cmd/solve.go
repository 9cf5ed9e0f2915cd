package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gomaze/internal/database"
	"github.com/dbsmedya/gomaze/internal/runner"
)

var (
	solveMaze      string
	solveFile      string
	solveAlgorithm string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a maze and print each solution",
	Long: `Solve loads a maze, runs the selected algorithms on it and prints the
maze with each solution path overlaid.

The grid is reset before every algorithm, so DFS and BFS see the same
untouched maze. Every path is verified before it is printed and, when
history is enabled, each run is recorded.

Examples:
  gomaze solve --maze tiny
  gomaze solve --file mazes/winding.txt --algorithm bfs
  gomaze solve --maze tiny --algorithm dfs,bfs --verify sha256`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveMaze, "maze", "m", "",
		"Maze name from configuration file")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "",
		"Path to a maze layout file")
	solveCmd.Flags().StringVarP(&solveAlgorithm, "algorithm", "a", "",
		"Algorithms to run: dfs, bfs, all or a comma separated list (default from config)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if err := checkMazeSource(solveMaze, solveFile); err != nil {
		return err
	}
	algs, err := parseAlgorithmFlag(solveAlgorithm)
	if err != nil {
		return err
	}

	cfg, log, err := setup(cmd, solveFile != "")
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := database.SetupSignalHandler(cmd.Context())
	defer stop()

	store, closeHistory, err := openHistory(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer closeHistory()

	opts := []runner.Option{runner.WithRenderer(newRenderer(cmd, cfg))}
	if store != nil {
		opts = append(opts, runner.WithRecorder(store))
	}
	r, err := runner.New(cfg, log, opts...)
	if err != nil {
		return err
	}

	var report *runner.Report
	if solveFile != "" {
		report, err = r.RunFile(ctx, solveFile, algs)
	} else {
		report, err = r.RunMaze(ctx, solveMaze, algs)
	}
	if err != nil {
		return err
	}

	cmd.Printf("Solved %d of %d\n", report.Solved(), report.Outcomes.Len())
	return nil
}
