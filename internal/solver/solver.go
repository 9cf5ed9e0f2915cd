// Package solver finds a path from a grid's start cell to its end cell with
// depth-first or breadth-first search.
//
// Both searches share one skeleton and differ only in the frontier discipline.
// Neighbors are examined North, East, South, West and are marked visited, with
// their predecessor recorded, when first discovered rather than when expanded.
// BFS therefore returns a path with the fewest steps; DFS returns some simple
// path, deterministic for a given layout.
//
// A search mutates the grid's per-cell state. Call grid.Reset between searches.
package solver

import (
	"fmt"
	"strings"

	"github.com/dbsmedya/gomaze/internal/grid"
)

// Algorithm names a search discipline.
type Algorithm string

const (
	// DFS explores the most recently discovered cell first.
	DFS Algorithm = "dfs"
	// BFS explores cells in discovery order.
	BFS Algorithm = "bfs"
)

// Algorithms returns every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, BFS}
}

// ParseAlgorithm converts a name such as "BFS" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case DFS:
		return DFS, nil
	case BFS:
		return BFS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// ParseAlgorithms converts a list of names. "all" expands to every algorithm;
// duplicates are dropped, order is kept.
func ParseAlgorithms(names []string) ([]Algorithm, error) {
	var out []Algorithm
	seen := make(map[Algorithm]bool)
	add := func(a Algorithm) {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			for _, a := range Algorithms() {
				add(a)
			}
			continue
		}
		a, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		add(a)
	}
	return out, nil
}

// String returns the upper-case display name.
func (a Algorithm) String() string {
	return strings.ToUpper(string(a))
}

// Result is a successful search.
type Result struct {
	Algorithm   Algorithm
	Path        Path
	Explored    int // cells expanded, end excluded
	MaxFrontier int // largest frontier size observed
}

// SolveDFS runs depth-first search on g and returns the path from start to end.
func SolveDFS(g *grid.Grid) (Path, error) {
	res, err := Solve(g, DFS)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// SolveBFS runs breadth-first search on g and returns a shortest path from start to end.
func SolveBFS(g *grid.Grid) (Path, error) {
	res, err := Solve(g, BFS)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Solve runs the named algorithm on g. Failures are returned as *SearchError
// wrapping ErrNoPathExists or ErrBrokenPredecessorChain.
func Solve(g *grid.Grid, alg Algorithm) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	var frontier Frontier
	switch alg {
	case DFS:
		frontier = NewStack()
	case BFS:
		frontier = NewQueue()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}

	res := &Result{Algorithm: alg}
	if err := search(g, frontier, res); err != nil {
		return nil, &SearchError{Algorithm: alg, Explored: res.Explored, Err: err}
	}

	path, err := Reconstruct(g)
	if err != nil {
		return nil, &SearchError{Algorithm: alg, Explored: res.Explored, Err: err}
	}
	res.Path = path
	return res, nil
}

// search expands cells from start until the end cell becomes current.
func search(g *grid.Grid, frontier Frontier, res *Result) error {
	current := g.Start()
	current.MarkVisited()
	end := g.End()

	for current != end {
		res.Explored++
		from := g.Index(current.Row, current.Col)

		for _, d := range grid.Directions {
			row, col := current.Row+d.DRow, current.Col+d.DCol
			if !g.IsValidCell(row, col) {
				continue
			}
			next := g.Cell(row, col)
			next.MarkVisited()
			next.SetPredecessor(from)
			frontier.Push(g.Index(row, col))
		}

		if n := frontier.Len(); n > res.MaxFrontier {
			res.MaxFrontier = n
		}

		idx, ok := frontier.Pop()
		if !ok {
			return ErrNoPathExists
		}
		current = g.CellAt(idx)
	}
	return nil
}
