package grid

import "fmt"

// NoPredecessor marks a cell that has not been discovered from a neighbor.
const NoPredecessor = -1

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the coordinate one step away in direction d.
func (c Coord) Add(d Direction) Coord {
	return Coord{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Direction is a unit orthogonal move.
type Direction struct {
	Name string
	DRow int
	DCol int
}

// Directions lists the four neighbor moves in the order searches examine them:
// North, East, South, West.
var Directions = [4]Direction{
	{Name: "north", DRow: -1, DCol: 0},
	{Name: "east", DRow: 0, DCol: 1},
	{Name: "south", DRow: 1, DCol: 0},
	{Name: "west", DRow: 0, DCol: -1},
}

// Cell is one grid position. Row, Col and Open are fixed when the grid is built;
// the visited flag and predecessor are per-search state cleared by Grid.Reset.
type Cell struct {
	Row  int
	Col  int
	Open bool

	visited     bool
	predecessor int // row-major index into the owning grid
}

// Coord returns the cell's coordinate.
func (c *Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// IsOpen reports whether the cell can be walked.
func (c *Cell) IsOpen() bool { return c.Open }

// IsWall reports whether the cell is a wall.
func (c *Cell) IsWall() bool { return !c.Open }

// Visited reports whether the current search has discovered the cell.
func (c *Cell) Visited() bool { return c.visited }

// MarkVisited flags the cell as discovered.
func (c *Cell) MarkVisited() { c.visited = true }

// Predecessor returns the index of the cell this one was first reached from,
// or NoPredecessor.
func (c *Cell) Predecessor() int { return c.predecessor }

// HasPredecessor reports whether a predecessor has been recorded.
func (c *Cell) HasPredecessor() bool { return c.predecessor != NoPredecessor }

// SetPredecessor records the index of the discovering cell.
func (c *Cell) SetPredecessor(index int) { c.predecessor = index }

func (c *Cell) reset() {
	c.visited = false
	c.predecessor = NoPredecessor
}
