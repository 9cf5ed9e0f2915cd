package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/gomaze/internal/grid"
	"github.com/dbsmedya/gomaze/internal/solver"
)

func plainRenderer(buf *bytes.Buffer) *Renderer {
	opts := DefaultOptions()
	opts.Color = false
	return New(buf, opts)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.Color)
	assert.Equal(t, "*", opts.PathSymbol)
	assert.Equal(t, "#", opts.WallSymbol)
	assert.Equal(t, ".", opts.OpenSymbol)
	assert.Equal(t, "S", opts.StartSymbol)
	assert.Equal(t, "E", opts.EndSymbol)
	assert.Equal(t, 4, opts.Padding)
}

func TestNew_ClampsPadding(t *testing.T) {
	r := New(nil, Options{Padding: -3})
	assert.Equal(t, 0, r.opts.Padding)
	assert.NotNil(t, r.Writer())
}

func TestRenderer_Grid(t *testing.T) {
	g, err := grid.FromRows([]string{
		"S.#",
		"..#",
		"#.E",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	r := plainRenderer(&buf)

	t.Run("without path", func(t *testing.T) {
		assert.Equal(t, "S.#\n..#\n#.E\n", r.Grid(g, nil))
	})

	t.Run("with BFS path", func(t *testing.T) {
		res, err := solver.Solve(g, solver.BFS)
		require.NoError(t, err)
		assert.Equal(t, "S*#\n.*#\n#*E\n", r.Grid(g, res.Path))
	})

	t.Run("custom symbols", func(t *testing.T) {
		opts := Options{PathSymbol: "o", WallSymbol: "█", OpenSymbol: " ", StartSymbol: "A", EndSymbol: "B"}
		custom := New(&buf, opts)
		path := solver.Path{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
		assert.Equal(t, "A █\noo█\n█oB\n", custom.Grid(g, path))
	})

	t.Run("print", func(t *testing.T) {
		buf.Reset()
		r.PrintGrid(g, nil)
		assert.Equal(t, "S.#\n..#\n#.E\n", buf.String())
	})
}

func TestRenderer_GridColor(t *testing.T) {
	g, err := grid.FromRows([]string{"SE"})
	require.NoError(t, err)

	opts := DefaultOptions()
	r := New(&bytes.Buffer{}, opts)
	out := r.Grid(g, solver.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}})

	// Color codes may be dropped on terminals without color support; the
	// visible text must be identical either way.
	assert.Equal(t, "SE\n", stripCodes(out))
}

func TestRenderer_Header(t *testing.T) {
	var buf bytes.Buffer
	plainRenderer(&buf).Header("Maze %s", "tiny")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("=", 13), lines[0])
	assert.Equal(t, "  Maze tiny", lines[1])
	assert.Equal(t, lines[0], lines[2])
}

func TestRenderer_Section(t *testing.T) {
	var buf bytes.Buffer
	plainRenderer(&buf).Section("DFS")
	assert.Equal(t, "[DFS]\n-----\n", buf.String())
}

func TestRenderer_SideBySide(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	r.SideBySide("ab\nabcd\n", []string{"x", "y", "z"})

	expected := "ab      x\n" +
		"abcd    y\n" +
		"        z\n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderer_SideBySide_WideRunes(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Padding: 1})

	// "迷路" is two double-width runes.
	r.SideBySide("迷路\nab", []string{"1", "2"})
	assert.Equal(t, "迷路 1\nab   2\n", buf.String())
}

func TestRenderer_Columns(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Padding: 2})

	r.Columns("S*\n.*\n", "S.\n**\n")
	assert.Equal(t, "S*  S.\n.*  **\n", buf.String())
}

func TestSummary(t *testing.T) {
	m := orderedmap.NewOrderedMap[string, string]()
	m.Set("Algorithm", "BFS")
	m.Set("Steps", "4")
	m.Set("Explored", "8")

	assert.Equal(t, []string{
		"Algorithm: BFS",
		"Steps:     4",
		"Explored:  8",
	}, SummaryLines(m))

	var buf bytes.Buffer
	plainRenderer(&buf).Summary(m)
	assert.Equal(t, "Algorithm: BFS\nSteps:     4\nExplored:  8\n", buf.String())

	assert.Nil(t, SummaryLines(nil))
	assert.Nil(t, SummaryLines(orderedmap.NewOrderedMap[string, string]()))
}

func stripCodes(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
