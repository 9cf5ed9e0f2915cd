// Package runner solves a maze with one or more algorithms, verifies and
// renders each solution and records the runs.
package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/gomaze/internal/config"
	"github.com/dbsmedya/gomaze/internal/grid"
	"github.com/dbsmedya/gomaze/internal/history"
	"github.com/dbsmedya/gomaze/internal/logger"
	"github.com/dbsmedya/gomaze/internal/render"
	"github.com/dbsmedya/gomaze/internal/solver"
	"github.com/dbsmedya/gomaze/internal/verifier"
)

// Recorder persists finished runs. *history.Store implements it.
type Recorder interface {
	Record(ctx context.Context, run *history.Run) error
}

// Outcome is the result of one algorithm on one maze.
type Outcome struct {
	Algorithm   solver.Algorithm
	Status      history.Status
	Result      *solver.Result // nil unless the search found a path
	Explored    int
	Fingerprint string
	Duration    time.Duration
	RunID       string // set when a recorder stored the run
	Err         error
}

// Steps returns the path length in moves, or 0 when unsolved.
func (o *Outcome) Steps() int {
	if o.Result == nil {
		return 0
	}
	return o.Result.Path.Steps()
}

// Report collects the outcomes of one Run call in algorithm order.
type Report struct {
	Maze        string
	Grid        *grid.Grid
	StartedAt   time.Time
	CompletedAt time.Time
	Outcomes    *orderedmap.OrderedMap[solver.Algorithm, *Outcome]
}

// Outcome returns the outcome for alg.
func (r *Report) Outcome(alg solver.Algorithm) (*Outcome, bool) {
	return r.Outcomes.Get(alg)
}

// Solved counts outcomes with status solved.
func (r *Report) Solved() int {
	n := 0
	for el := r.Outcomes.Front(); el != nil; el = el.Next() {
		if el.Value.Status == history.StatusSolved {
			n++
		}
	}
	return n
}

// Option configures a Runner.
type Option func(*Runner)

// WithRecorder stores every outcome through rec.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

// WithRenderer prints every outcome through ren.
func WithRenderer(ren *render.Renderer) Option {
	return func(r *Runner) { r.renderer = ren }
}

// Runner drives solve runs for configured mazes.
type Runner struct {
	config   *config.Config
	logger   *logger.Logger
	recorder Recorder
	renderer *render.Renderer
	now      func() time.Time
}

// New creates a runner. A nil logger uses the default logger.
func New(cfg *config.Config, log *logger.Logger, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	r := &Runner{
		config: cfg,
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RunMaze loads the configured maze name and runs it with algs, or with the
// maze's configured algorithms when algs is empty.
func (r *Runner) RunMaze(ctx context.Context, name string, algs []solver.Algorithm) (*Report, error) {
	path, err := r.config.MazePath(name)
	if err != nil {
		return nil, err
	}
	g, err := grid.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load maze %q: %w", name, err)
	}
	return r.Run(ctx, name, g, algs)
}

// RunFile loads an unconfigured maze file. The maze is named after the file
// and always uses the global solver settings, even when a configured maze
// shares its name.
func (r *Runner) RunFile(ctx context.Context, path string, algs []solver.Algorithm) (*Report, error) {
	g, err := grid.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load maze file %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return r.run(ctx, name, g, algs, r.config.Solver)
}

// Run solves g with each algorithm in algs, or with the maze's configured
// algorithms when algs is empty. The grid is reset before every search.
// A maze without a path is a normal outcome, not an error. When both DFS and
// BFS solve the maze, the BFS path must not be longer.
func (r *Runner) Run(ctx context.Context, name string, g *grid.Grid, algs []solver.Algorithm) (*Report, error) {
	return r.run(ctx, name, g, algs, r.config.GetMazeSolver(name))
}

func (r *Runner) run(ctx context.Context, name string, g *grid.Grid, algs []solver.Algorithm, solverCfg config.SolverConfig) (*Report, error) {
	if g == nil {
		return nil, solver.ErrNilGrid
	}

	if len(algs) == 0 {
		parsed, err := solver.ParseAlgorithms(solverCfg.Algorithms)
		if err != nil {
			return nil, fmt.Errorf("maze %q: %w", name, err)
		}
		algs = parsed
	}

	log := r.logger.WithMaze(name)
	check, err := verifier.NewVerifier(verifier.VerificationMethod(solverCfg.VerifyMethod), log)
	if err != nil {
		return nil, fmt.Errorf("maze %q: %w", name, err)
	}
	log.Debugf("Verifying solutions with method %s", check.Method())

	report := &Report{
		Maze:      name,
		Grid:      g,
		StartedAt: r.now(),
		Outcomes:  orderedmap.NewOrderedMap[solver.Algorithm, *Outcome](),
	}

	if r.renderer != nil {
		r.renderer.Header("Maze %s (%dx%d)", name, g.Rows(), g.Cols())
	}

	log.Infof("Solving maze %s (%dx%d, %d open cells) with %d algorithm(s)",
		name, g.Rows(), g.Cols(), g.OpenCells(), len(algs))

	for _, alg := range algs {
		if err := ctx.Err(); err != nil {
			report.CompletedAt = r.now()
			return report, err
		}

		algLog := log.WithAlgorithm(string(alg))
		outcome := r.solveOne(g, alg, check, algLog)
		report.Outcomes.Set(alg, outcome)

		if r.recorder != nil {
			if err := r.record(ctx, name, outcome, algLog); err != nil {
				report.CompletedAt = r.now()
				return report, err
			}
		}

		if r.renderer != nil {
			r.print(g, outcome)
		}
	}

	report.CompletedAt = r.now()

	dfs, okDFS := report.Outcome(solver.DFS)
	bfs, okBFS := report.Outcome(solver.BFS)
	if okDFS && okBFS && dfs.Result != nil && bfs.Result != nil {
		if err := verifier.CompareLengths(bfs.Result.Path, dfs.Result.Path); err != nil {
			log.Errorf("Length check FAILED: %v", err)
			return report, err
		}
	}

	log.Infof("Maze %s: %d of %d algorithm(s) solved", name, report.Solved(), report.Outcomes.Len())
	return report, nil
}

func (r *Runner) solveOne(g *grid.Grid, alg solver.Algorithm, check *verifier.Verifier, log *logger.Logger) *Outcome {
	outcome := &Outcome{Algorithm: alg}

	g.Reset()
	started := r.now()
	res, err := solver.Solve(g, alg)
	outcome.Duration = r.now().Sub(started)

	if err != nil {
		var searchErr *solver.SearchError
		if errors.As(err, &searchErr) {
			outcome.Explored = searchErr.Explored
		}
		outcome.Err = err
		if errors.Is(err, solver.ErrNoPathExists) {
			outcome.Status = history.StatusNoPath
			log.Infof("%s: no path (%d cells explored)", alg, outcome.Explored)
		} else {
			outcome.Status = history.StatusFailed
			log.Errorf("%s: search failed: %v", alg, err)
		}
		return outcome
	}

	outcome.Result = res
	outcome.Explored = res.Explored
	outcome.Fingerprint = verifier.Fingerprint(res.Path)

	if _, err := check.Check(g, res.Path); err != nil {
		outcome.Status = history.StatusFailed
		outcome.Err = fmt.Errorf("%s path failed verification: %w", alg, err)
		return outcome
	}

	outcome.Status = history.StatusSolved
	log.Infof("%s: solved in %d steps (%d cells explored, frontier peak %d)",
		alg, res.Path.Steps(), res.Explored, res.MaxFrontier)
	return outcome
}

func (r *Runner) record(ctx context.Context, name string, o *Outcome, log *logger.Logger) error {
	run := &history.Run{
		Maze:        name,
		Algorithm:   string(o.Algorithm),
		Status:      o.Status,
		Steps:       o.Steps(),
		Explored:    o.Explored,
		Fingerprint: o.Fingerprint,
		DurationMS:  o.Duration.Milliseconds(),
	}
	if o.Err != nil {
		run.ErrorMessage = o.Err.Error()
	}

	if err := r.recorder.Record(ctx, run); err != nil {
		return fmt.Errorf("failed to record %s run of maze %q: %w", string(o.Algorithm), name, err)
	}
	o.RunID = run.ID
	log.WithRun(run.ID).Debugf("Recorded %s run", run.Status)
	return nil
}

func (r *Runner) print(g *grid.Grid, o *Outcome) {
	r.renderer.Section(o.Algorithm.String())

	var path solver.Path
	if o.Result != nil {
		path = o.Result.Path
	}
	r.renderer.SideBySide(r.renderer.Grid(g, path), render.SummaryLines(Summary(o)))
	fmt.Fprintln(r.renderer.Writer())
}

// Summary describes an outcome as ordered key/value pairs.
func Summary(o *Outcome) *orderedmap.OrderedMap[string, string] {
	m := orderedmap.NewOrderedMap[string, string]()
	m.Set("Status", string(o.Status))
	if o.Result != nil {
		m.Set("Steps", strconv.Itoa(o.Result.Path.Steps()))
		m.Set("Cells", strconv.Itoa(o.Result.Path.Len()))
		m.Set("Frontier", strconv.Itoa(o.Result.MaxFrontier))
	}
	m.Set("Explored", strconv.Itoa(o.Explored))
	if o.Fingerprint != "" {
		m.Set("SHA-256", o.Fingerprint[:12])
	}
	if o.RunID != "" {
		m.Set("Run", o.RunID)
	}
	if o.Err != nil && o.Status == history.StatusFailed {
		m.Set("Error", o.Err.Error())
	}
	return m
}
