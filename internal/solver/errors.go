package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPathExists is returned when the frontier empties before the end cell is reached.
	ErrNoPathExists = errors.New("solver: no path exists from start to end")
	// ErrBrokenPredecessorChain is returned when the end cell's predecessor chain does not
	// lead back to start within rows×cols steps. It points at a search defect or a grid
	// that was not reset between runs.
	ErrBrokenPredecessorChain = errors.New("solver: broken predecessor chain")
	// ErrUnknownAlgorithm is returned for an algorithm name other than dfs or bfs.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
	// ErrNilGrid is returned when a search is started without a grid.
	ErrNilGrid = errors.New("solver: grid is nil")
)

// SearchError describes a failed search. It unwraps to one of the sentinels above.
type SearchError struct {
	Algorithm Algorithm
	Explored  int // cells expanded before the failure
	Err       error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%s search failed after expanding %d cells: %v", e.Algorithm, e.Explored, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}
