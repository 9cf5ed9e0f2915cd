package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/gomaze/internal/config"
	"github.com/dbsmedya/gomaze/internal/database"
	"github.com/dbsmedya/gomaze/internal/grid"
	"github.com/dbsmedya/gomaze/internal/history"
	"github.com/dbsmedya/gomaze/internal/solver"
	"github.com/dbsmedya/gomaze/internal/verifier"
)

var (
	historyMaze      string
	historyAlgorithm string
	historyLimit     int
	historyID        string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solve runs",
	Long: `History lists the most recent solve runs recorded in the history
database, newest first. History must be enabled in the configuration.

With --id a single run is shown in detail. When its maze is still
configured, the run is replayed and the new path is compared with the
recorded fingerprint.

Examples:
  gomaze history --maze winding --limit 10
  gomaze history --id 0192f5c4-7c1e-7d2a-9b1f-3a6e2c9d8f10`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyMaze, "maze", "m", "",
		"Only show runs of this maze")
	historyCmd.Flags().StringVarP(&historyAlgorithm, "algorithm", "a", "",
		"Only show runs of this algorithm (dfs, bfs)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", history.DefaultListLimit,
		"Maximum number of runs to show")
	historyCmd.Flags().StringVar(&historyID, "id", "",
		"Show a single run in detail")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled in %s (set history.enabled: true)", GetConfigFile())
	}

	algorithm := historyAlgorithm
	if algorithm != "" {
		alg, err := parseAlgorithmFlag(algorithm)
		if err != nil {
			return err
		}
		if len(alg) != 1 {
			return fmt.Errorf("--algorithm takes a single algorithm")
		}
		algorithm = string(alg[0])
	}

	ctx, stop := database.SetupSignalHandler(cmd.Context())
	defer stop()

	store, closeHistory, err := openHistory(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer closeHistory()

	if historyID != "" {
		return showRun(ctx, cmd, cfg, store, historyID)
	}

	runs, err := store.List(ctx, history.Filter{
		Maze:      historyMaze,
		Algorithm: algorithm,
		Limit:     historyLimit,
	})
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tMAZE\tALG\tSTATUS\tSTEPS\tEXPLORED\tMS\tID")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			run.Maze,
			run.Algorithm,
			run.Status,
			run.Steps,
			run.Explored,
			run.DurationMS,
			run.ID,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	cmd.Printf("\nTotal: %d run(s)\n", len(runs))
	return nil
}

// showRun prints one recorded run and replays it against the configured maze.
func showRun(ctx context.Context, cmd *cobra.Command, cfg *config.Config, store *history.Store, id string) error {
	run, err := store.Get(ctx, id)
	if err != nil {
		return err
	}

	ren := newRenderer(cmd, cfg)
	ren.Header("Run %s", run.ID)

	m := orderedmap.NewOrderedMap[string, string]()
	m.Set("Maze", run.Maze)
	m.Set("Algorithm", run.Algorithm)
	m.Set("Status", string(run.Status))
	m.Set("Steps", strconv.Itoa(run.Steps))
	m.Set("Explored", strconv.Itoa(run.Explored))
	if run.Fingerprint != "" {
		m.Set("SHA-256", run.Fingerprint)
	}
	m.Set("Duration", fmt.Sprintf("%d ms", run.DurationMS))
	m.Set("Created", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	if run.ErrorMessage != "" {
		m.Set("Error", run.ErrorMessage)
	}

	g, path, err := replayRun(cfg, run)
	switch {
	case err != nil:
		m.Set("Replay", err.Error())
	case path == nil:
		m.Set("Replay", "no path")
	case verifier.Fingerprint(path) == run.Fingerprint:
		m.Set("Replay", "path unchanged")
	default:
		m.Set("Replay", "path changed")
	}
	ren.Summary(m)

	if g != nil && path != nil {
		fmt.Fprintln(ren.Writer())
		ren.Section("Replay")
		ren.PrintGrid(g, path)
	}
	return nil
}

// replayRun solves the run's maze again. A nil path with a nil error means the
// maze has no path.
func replayRun(cfg *config.Config, run *history.Run) (*grid.Grid, solver.Path, error) {
	mazePath, err := cfg.MazePath(run.Maze)
	if err != nil {
		return nil, nil, fmt.Errorf("maze no longer configured")
	}
	alg, err := solver.ParseAlgorithm(run.Algorithm)
	if err != nil {
		return nil, nil, err
	}
	g, err := grid.Load(mazePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load maze %q: %w", run.Maze, err)
	}

	res, err := solver.Solve(g, alg)
	if errors.Is(err, solver.ErrNoPathExists) {
		return g, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return g, res.Path, nil
}
