// Package render prints mazes, solutions and run summaries to a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/gomaze/internal/config"
	"github.com/dbsmedya/gomaze/internal/grid"
	"github.com/dbsmedya/gomaze/internal/solver"
)

// Options controls symbols, coloring and column spacing.
type Options struct {
	Color       bool
	PathSymbol  string
	WallSymbol  string
	OpenSymbol  string
	StartSymbol string
	EndSymbol   string
	Padding     int
}

// DefaultOptions mirrors the default render configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig().Render)
}

// OptionsFromConfig converts the render configuration section.
func OptionsFromConfig(cfg config.RenderConfig) Options {
	return Options{
		Color:       cfg.Color,
		PathSymbol:  cfg.PathSymbol,
		WallSymbol:  cfg.WallSymbol,
		OpenSymbol:  cfg.OpenSymbol,
		StartSymbol: cfg.StartSymbol,
		EndSymbol:   cfg.EndSymbol,
		Padding:     cfg.Padding,
	}
}

var (
	wallStyle  = color.New(color.FgGray)
	pathStyle  = color.New(color.FgGreen, color.OpBold)
	startStyle = color.New(color.FgCyan, color.OpBold)
	endStyle   = color.New(color.FgLightRed, color.OpBold)
	titleStyle = color.New(color.FgLightBlue, color.OpBold)
)

// Renderer writes formatted output to a writer.
type Renderer struct {
	out  io.Writer
	opts Options
}

// New creates a renderer. A nil writer means stdout.
func New(out io.Writer, opts Options) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	return &Renderer{out: out, opts: opts}
}

// Writer returns the underlying output.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Grid returns the maze with path overlaid, one line per row.
// Start and end keep their own symbols even though they are on the path.
func (r *Renderer) Grid(g *grid.Grid, path solver.Path) string {
	onPath := path.Set()
	start, end := g.Start().Coord(), g.End().Coord()

	var b strings.Builder
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := grid.Coord{Row: row, Col: col}
			switch {
			case c == start:
				b.WriteString(r.paint(startStyle, r.opts.StartSymbol))
			case c == end:
				b.WriteString(r.paint(endStyle, r.opts.EndSymbol))
			case onPath[c]:
				b.WriteString(r.paint(pathStyle, r.opts.PathSymbol))
			case g.Cell(row, col).IsWall():
				b.WriteString(r.paint(wallStyle, r.opts.WallSymbol))
			default:
				b.WriteString(r.opts.OpenSymbol)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// PrintGrid writes Grid(g, path).
func (r *Renderer) PrintGrid(g *grid.Grid, path solver.Path) {
	fmt.Fprint(r.out, r.Grid(g, path))
}

func (r *Renderer) paint(style color.Style, s string) string {
	if !r.opts.Color {
		return s
	}
	return style.Sprint(s)
}

// Header prints a title framed by '=' rules.
func (r *Renderer) Header(format string, args ...interface{}) {
	title := fmt.Sprintf(format, args...)
	width := runewidth.StringWidth(title) + 4
	fmt.Fprintln(r.out, strings.Repeat("=", width))
	fmt.Fprintf(r.out, "  %s\n", r.paint(titleStyle, title))
	fmt.Fprintln(r.out, strings.Repeat("=", width))
}

// Section prints a bracketed section title with a '-' underline.
func (r *Renderer) Section(title string) {
	fmt.Fprintf(r.out, "[%s]\n", title)
	fmt.Fprintln(r.out, strings.Repeat("-", runewidth.StringWidth(title)+2))
}

// SideBySide prints two blocks of text side by side, the right column starting
// Padding spaces after the widest left line.
func (r *Renderer) SideBySide(left string, right []string) {
	leftLines := strings.Split(strings.TrimRight(left, "\n"), "\n")

	leftWidth := 0
	for _, line := range leftLines {
		if w := visualWidth(line); w > leftWidth {
			leftWidth = w
		}
	}

	height := len(leftLines)
	if len(right) > height {
		height = len(right)
	}

	for i := 0; i < height; i++ {
		leftPart, rightPart := "", ""
		if i < len(leftLines) {
			leftPart = leftLines[i]
		}
		if i < len(right) {
			rightPart = right[i]
		}

		fmt.Fprint(r.out, leftPart)
		if rightPart != "" {
			if spaces := leftWidth - visualWidth(leftPart) + r.opts.Padding; spaces > 0 {
				fmt.Fprint(r.out, strings.Repeat(" ", spaces))
			}
		}
		fmt.Fprintln(r.out, rightPart)
	}
}

// Columns splits text blocks into lines and joins them as side-by-side columns.
func (r *Renderer) Columns(left, right string) {
	r.SideBySide(left, strings.Split(strings.TrimRight(right, "\n"), "\n"))
}

// Summary prints aligned "key: value" lines in insertion order.
func (r *Renderer) Summary(m *orderedmap.OrderedMap[string, string]) {
	for _, line := range SummaryLines(m) {
		fmt.Fprintln(r.out, line)
	}
}

// SummaryLines formats m as "key: value" lines with values aligned.
func SummaryLines(m *orderedmap.OrderedMap[string, string]) []string {
	if m == nil || m.Len() == 0 {
		return nil
	}

	keyWidth := 0
	for el := m.Front(); el != nil; el = el.Next() {
		if w := runewidth.StringWidth(el.Key); w > keyWidth {
			keyWidth = w
		}
	}

	lines := make([]string, 0, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		label := runewidth.FillRight(el.Key+":", keyWidth+1)
		lines = append(lines, label+" "+el.Value)
	}
	return lines
}

// visualWidth is the display width of s with color codes removed.
func visualWidth(s string) int {
	return runewidth.StringWidth(color.ClearCode(s))
}
