package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and loading.
var (
	// ErrEmptyMaze indicates the layout has no rows or no columns.
	ErrEmptyMaze = errors.New("grid: maze must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDimensionMismatch indicates the body does not match the "<rows> <cols>" header.
	ErrDimensionMismatch = errors.New("grid: layout does not match declared dimensions")
	// ErrMissingStart indicates the layout has no start cell.
	ErrMissingStart = errors.New("grid: maze has no start cell")
	// ErrMissingEnd indicates the layout has no end cell.
	ErrMissingEnd = errors.New("grid: maze has no end cell")
	// ErrDuplicateStart indicates more than one start cell.
	ErrDuplicateStart = errors.New("grid: maze has more than one start cell")
	// ErrDuplicateEnd indicates more than one end cell.
	ErrDuplicateEnd = errors.New("grid: maze has more than one end cell")
	// ErrUnknownSymbol indicates a layout character that is not a known cell symbol.
	ErrUnknownSymbol = errors.New("grid: unknown cell symbol")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrStartIsWall indicates the start coordinate is a wall.
	ErrStartIsWall = errors.New("grid: start cell is a wall")
	// ErrEndIsWall indicates the end coordinate is a wall.
	ErrEndIsWall = errors.New("grid: end cell is a wall")
)

// ParseError reports an unknown symbol at a 1-based line and column of the layout.
type ParseError struct {
	Line   int
	Col    int
	Symbol rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: line %d col %d: unknown cell symbol %q", e.Line, e.Col, e.Symbol)
}

// Unwrap lets errors.Is match ErrUnknownSymbol.
func (e *ParseError) Unwrap() error {
	return ErrUnknownSymbol
}
