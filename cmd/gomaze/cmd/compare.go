package cmd

import (
	"fmt"
	"strconv"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/gomaze/internal/database"
	"github.com/dbsmedya/gomaze/internal/runner"
	"github.com/dbsmedya/gomaze/internal/solver"
)

var (
	compareMaze string
	compareFile string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare DFS and BFS side by side",
	Long: `Compare solves a maze with both DFS and BFS and prints the two
solutions next to each other, followed by a summary of path lengths and
cells explored.

The BFS path is checked to be no longer than the DFS path.

Example:
  gomaze compare --maze winding`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareMaze, "maze", "m", "",
		"Maze name from configuration file")
	compareCmd.Flags().StringVarP(&compareFile, "file", "f", "",
		"Path to a maze layout file")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if err := checkMazeSource(compareMaze, compareFile); err != nil {
		return err
	}

	cfg, log, err := setup(cmd, compareFile != "")
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

	var opts []runner.Option
	if store != nil {
		opts = append(opts, runner.WithRecorder(store))
	}
	r, err := runner.New(cfg, log, opts...)
	if err != nil {
		return err
	}

	algs := []solver.Algorithm{solver.DFS, solver.BFS}
	var report *runner.Report
	if compareFile != "" {
		report, err = r.RunFile(ctx, compareFile, algs)
	} else {
		report, err = r.RunMaze(ctx, compareMaze, algs)
	}
	if err != nil {
		return err
	}

	ren := newRenderer(cmd, cfg)
	dfs, _ := report.Outcome(solver.DFS)
	bfs, _ := report.Outcome(solver.BFS)

	ren.Header("DFS vs BFS: %s", report.Maze)
	fmt.Fprintln(cmd.OutOrStdout())
	ren.Columns("DFS\n"+ren.Grid(report.Grid, pathOf(dfs)), "BFS\n"+ren.Grid(report.Grid, pathOf(bfs)))
	fmt.Fprintln(cmd.OutOrStdout())

	ren.Section("Summary")
	ren.Summary(compareSummary(dfs, bfs))
	return nil
}

func pathOf(o *runner.Outcome) solver.Path {
	if o == nil || o.Result == nil {
		return nil
	}
	return o.Result.Path
}

func compareSummary(dfs, bfs *runner.Outcome) *orderedmap.OrderedMap[string, string] {
	m := orderedmap.NewOrderedMap[string, string]()
	m.Set("Status", fmt.Sprintf("%s / %s", dfs.Status, bfs.Status))
	m.Set("Steps", fmt.Sprintf("%d / %d", dfs.Steps(), bfs.Steps()))
	m.Set("Explored", fmt.Sprintf("%d / %d", dfs.Explored, bfs.Explored))
	if dfs.Result != nil && bfs.Result != nil {
		m.Set("Frontier peak", fmt.Sprintf("%d / %d", dfs.Result.MaxFrontier, bfs.Result.MaxFrontier))
		m.Set("Extra DFS steps", strconv.Itoa(dfs.Steps()-bfs.Steps()))
		m.Set("Same path", strconv.FormatBool(dfs.Fingerprint == bfs.Fingerprint))
	}
	return m
}
