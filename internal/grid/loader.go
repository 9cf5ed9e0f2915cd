package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// headerPattern matches an optional "<rows> <cols>" first line.
var headerPattern = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s*$`)

// Load reads a maze layout from a text file.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open maze file: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse maze file %q: %w", path, err)
	}
	return g, nil
}

// FromRows builds a grid from layout lines, e.g. []string{"S.#", "..E"}.
func FromRows(rows []string) (*Grid, error) {
	return Parse(strings.NewReader(strings.Join(rows, "\n")))
}

// Parse reads a maze layout, one row per line:
//
//	#        wall
//	. or ' ' open
//	S or A   start
//	E or B   end
//
// Lines starting with ';' are comments and empty lines are skipped. An optional
// first line "<rows> <cols>" declares the dimensions the body must match.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)

	var (
		lines      [][]rune
		lineNos    []int
		wantRows   = -1
		wantCols   = -1
		lineNo     = 0
		seenHeader = false
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if !seenHeader && len(lines) == 0 {
			seenHeader = true
			if m := headerPattern.FindStringSubmatch(line); m != nil {
				wantRows, _ = strconv.Atoi(m[1])
				wantCols, _ = strconv.Atoi(m[2])
				continue
			}
		}
		lines = append(lines, []rune(line))
		lineNos = append(lineNos, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read maze layout: %w", err)
	}

	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	rows, cols := len(lines), len(lines[0])
	for i, row := range lines {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: line %d has %d cells, expected %d",
				ErrNonRectangular, lineNos[i], len(row), cols)
		}
	}
	if wantRows >= 0 && (wantRows != rows || wantCols != cols) {
		return nil, fmt.Errorf("%w: header says %dx%d, body is %dx%d",
			ErrDimensionMismatch, wantRows, wantCols, rows, cols)
	}

	var (
		walls      []Coord
		start, end Coord
		haveStart  bool
		haveEnd    bool
	)
	for r, row := range lines {
		for c, sym := range row {
			pos := Coord{Row: r, Col: c}
			switch sym {
			case '#':
				walls = append(walls, pos)
			case '.', ' ':
			case 'S', 'A':
				if haveStart {
					return nil, fmt.Errorf("%w: second start at line %d col %d",
						ErrDuplicateStart, lineNos[r], c+1)
				}
				start, haveStart = pos, true
			case 'E', 'B':
				if haveEnd {
					return nil, fmt.Errorf("%w: second end at line %d col %d",
						ErrDuplicateEnd, lineNos[r], c+1)
				}
				end, haveEnd = pos, true
			default:
				return nil, &ParseError{Line: lineNos[r], Col: c + 1, Symbol: sym}
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return New(rows, cols, walls, start, end)
}
