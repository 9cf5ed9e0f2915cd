// Package grid models a rectangular maze of open and wall cells with a
// designated start and end. Cells carry per-search state (visited flag and
// predecessor index) that searches mutate and Reset clears.
package grid

import (
	"fmt"
	"strings"
)

// Canonical layout symbols used by String and accepted by the loader.
const (
	SymbolWall  = '#'
	SymbolOpen  = '.'
	SymbolStart = 'S'
	SymbolEnd   = 'E'
)

// Grid is a row-major rectangle of cells plus the start and end positions.
// A Grid must not be searched by two callers at once.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
	start int
	end   int
}

// New builds a grid of rows×cols open cells, turns the given coordinates into
// walls and designates start and end. Start and end must be open and in bounds.
func New(rows, cols int, walls []Coord, start, end Coord) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyMaze
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[g.Index(r, c)] = Cell{Row: r, Col: c, Open: true, predecessor: NoPredecessor}
		}
	}

	for _, w := range walls {
		if !g.InBounds(w.Row, w.Col) {
			return nil, fmt.Errorf("%w: wall %s in %dx%d grid", ErrOutOfBounds, w, rows, cols)
		}
		g.cells[g.Index(w.Row, w.Col)].Open = false
	}

	if !g.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("%w: start %s in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !g.InBounds(end.Row, end.Col) {
		return nil, fmt.Errorf("%w: end %s in %dx%d grid", ErrOutOfBounds, end, rows, cols)
	}
	g.start = g.Index(start.Row, start.Col)
	g.end = g.Index(end.Row, end.Col)

	if !g.cells[g.start].Open {
		return nil, ErrStartIsWall
	}
	if !g.cells[g.end].Open {
		return nil, ErrEndIsWall
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols, the upper bound on any path or predecessor chain.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row, col) to its row-major index. The caller checks bounds.
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// CoordOf converts a row-major index back to a coordinate.
func (g *Grid) CoordOf(index int) Coord {
	return Coord{Row: index / g.cols, Col: index % g.cols}
}

// IsValidCell reports whether (row, col) is in bounds, open and not yet visited.
func (g *Grid) IsValidCell(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	cell := &g.cells[g.Index(row, col)]
	return cell.Open && !cell.visited
}

// Cell returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.cells[g.Index(row, col)]
}

// CellAt returns the cell at a row-major index, or nil when out of range.
func (g *Grid) CellAt(index int) *Cell {
	if index < 0 || index >= len(g.cells) {
		return nil
	}
	return &g.cells[index]
}

// Start returns the start cell.
func (g *Grid) Start() *Cell { return &g.cells[g.start] }

// End returns the end cell.
func (g *Grid) End() *Cell { return &g.cells[g.end] }

// OpenCells counts cells that are not walls.
func (g *Grid) OpenCells() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Open {
			n++
		}
	}
	return n
}

// Reset clears the visited flag and predecessor of every cell.
// Call it between two searches over the same grid.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// Symbol returns the canonical layout symbol for (row, col).
func (g *Grid) Symbol(row, col int) rune {
	idx := g.Index(row, col)
	switch {
	case idx == g.start:
		return SymbolStart
	case idx == g.end:
		return SymbolEnd
	case !g.cells[idx].Open:
		return SymbolWall
	default:
		return SymbolOpen
	}
}

// String renders the layout with canonical symbols, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.Symbol(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
