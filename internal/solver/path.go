package solver

import (
	"strings"

	"github.com/dbsmedya/gomaze/internal/grid"
)

// Path is an ordered sequence of coordinates from start to end inclusive.
type Path []grid.Coord

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Steps returns the number of moves, one less than the cell count.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether c is on the path.
func (p Path) Contains(c grid.Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Set returns the path's cells as a lookup set.
func (p Path) Set() map[grid.Coord]bool {
	set := make(map[grid.Coord]bool, len(p))
	for _, c := range p {
		set[c] = true
	}
	return set
}

// String joins the coordinates with arrows.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

// Reconstruct walks predecessor links from the end cell back to start and
// returns the path in start-to-end order. It gives up with
// ErrBrokenPredecessorChain when a link is missing or the walk exceeds
// rows×cols steps.
func Reconstruct(g *grid.Grid) (Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	start := g.Index(g.Start().Row, g.Start().Col)
	cur := g.Index(g.End().Row, g.End().Col)
	limit := g.Size()

	reversed := make(Path, 0)
	for steps := 0; cur != start; steps++ {
		if steps >= limit {
			return nil, ErrBrokenPredecessorChain
		}
		cell := g.CellAt(cur)
		if cell == nil || !cell.HasPredecessor() {
			return nil, ErrBrokenPredecessorChain
		}
		reversed = append(reversed, cell.Coord())
		cur = cell.Predecessor()
	}
	reversed = append(reversed, g.Start().Coord())

	path := make(Path, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path, nil
}
