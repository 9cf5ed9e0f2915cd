// Package verifier checks solved maze paths against their grid.
package verifier

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/dbsmedya/gomaze/internal/grid"
	"github.com/dbsmedya/gomaze/internal/logger"
	"github.com/dbsmedya/gomaze/internal/solver"
)

// VerificationMethod defines how thoroughly a path is checked.
type VerificationMethod string

const (
	// MethodSteps checks the path invariants only.
	MethodSteps VerificationMethod = "steps"
	// MethodSHA256 checks the invariants and fingerprints the path.
	MethodSHA256 VerificationMethod = "sha256"
	// MethodSkip skips verification entirely.
	MethodSkip VerificationMethod = "skip"
)

// ErrNotShortest is returned when a BFS path is longer than another solution of the same maze.
var ErrNotShortest = errors.New("verifier: breadth-first path is not the shortest")

// VerificationError reports the first path entry that breaks an invariant.
type VerificationError struct {
	Index  int // position in the path, -1 for whole-path problems
	Reason string
}

func (e *VerificationError) Error() string {
	if e.Index < 0 {
		return "invalid path: " + e.Reason
	}
	return fmt.Sprintf("invalid path at index %d: %s", e.Index, e.Reason)
}

// Report is the outcome of checking one path.
type Report struct {
	Method      VerificationMethod
	Cells       int
	Steps       int
	Fingerprint string // set for MethodSHA256
	Valid       bool
}

// Verifier checks paths with a configured method.
type Verifier struct {
	method VerificationMethod
	logger *logger.Logger
}

// NewVerifier creates a verifier. An empty method defaults to MethodSteps.
func NewVerifier(method VerificationMethod, log *logger.Logger) (*Verifier, error) {
	if log == nil {
		log = logger.NewDefault()
	}
	if method == "" {
		method = MethodSteps
	}
	switch method {
	case MethodSteps, MethodSHA256, MethodSkip:
	default:
		return nil, fmt.Errorf("unsupported verification method: %s", method)
	}
	return &Verifier{method: method, logger: log}, nil
}

// Method returns the configured verification method.
func (v *Verifier) Method() VerificationMethod {
	return v.method
}

// Check verifies path against g using the configured method.
func (v *Verifier) Check(g *grid.Grid, path solver.Path) (*Report, error) {
	report := &Report{
		Method: v.method,
		Cells:  path.Len(),
		Steps:  path.Steps(),
	}

	if v.method == MethodSkip {
		v.logger.Debug("Verification SKIPPED (method=skip)")
		return report, nil
	}

	if err := Verify(g, path); err != nil {
		v.logger.Errorf("Verification FAILED: %v", err)
		return report, err
	}
	report.Valid = true

	if v.method == MethodSHA256 {
		report.Fingerprint = Fingerprint(path)
	}

	v.logger.Debugf("Verification PASSED (%d cells, %d steps)", report.Cells, report.Steps)
	return report, nil
}

// Verify checks that path starts at the grid's start, ends at its end, moves
// one orthogonal step at a time through open in-bounds cells and never
// repeats a cell.
func Verify(g *grid.Grid, path solver.Path) error {
	if g == nil {
		return &VerificationError{Index: -1, Reason: "grid is nil"}
	}
	if len(path) == 0 {
		return &VerificationError{Index: -1, Reason: "path is empty"}
	}
	if path[0] != g.Start().Coord() {
		return &VerificationError{Index: 0, Reason: fmt.Sprintf("first cell %s is not start %s", path[0], g.Start().Coord())}
	}
	last := len(path) - 1
	if path[last] != g.End().Coord() {
		return &VerificationError{Index: last, Reason: fmt.Sprintf("last cell %s is not end %s", path[last], g.End().Coord())}
	}

	seen := make(map[grid.Coord]int, len(path))
	for i, c := range path {
		cell := g.Cell(c.Row, c.Col)
		if cell == nil {
			return &VerificationError{Index: i, Reason: fmt.Sprintf("cell %s is out of bounds", c)}
		}
		if cell.IsWall() {
			return &VerificationError{Index: i, Reason: fmt.Sprintf("cell %s is a wall", c)}
		}
		if prev, dup := seen[c]; dup {
			return &VerificationError{Index: i, Reason: fmt.Sprintf("cell %s already visited at index %d", c, prev)}
		}
		seen[c] = i

		if i > 0 && !adjacent(path[i-1], c) {
			return &VerificationError{Index: i, Reason: fmt.Sprintf("step %s -> %s is not a single orthogonal move", path[i-1], c)}
		}
	}
	return nil
}

func adjacent(a, b grid.Coord) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Fingerprint returns the hex SHA-256 of the path's coordinates. Equal paths
// have equal fingerprints, so repeated runs can be compared cheaply.
func Fingerprint(path solver.Path) string {
	h := sha256.New()
	buf := make([]byte, 0, 16)
	for _, c := range path {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(c.Row), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(c.Col), 10)
		buf = append(buf, ';')
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CompareLengths checks that a breadth-first path is no longer than another
// solution of the same maze.
func CompareLengths(bfs, other solver.Path) error {
	if bfs.Steps() > other.Steps() {
		return fmt.Errorf("%w: bfs=%d steps, other=%d steps", ErrNotShortest, bfs.Steps(), other.Steps())
	}
	return nil
}
