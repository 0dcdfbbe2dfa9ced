// Package term draws path-finding frames on a character grid for terminal
// display.
//
// The grid is one character per viewport pixel, so a pick.Viewport sized in
// terminal cells maps mouse cells straight back to nodes through
// pick.SelectNode (see CellCenter). Colours come from lipgloss and are
// dropped when the output is not a colour terminal or Styled is false.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/pick"
)

// Cell kinds in increasing draw priority.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellEdge
	cellPathEdge
	cellPlain
	cellPath
	cellHover
	cellEnd
	cellStart
)

var glyphs = map[cellKind]rune{
	cellEmpty:    ' ',
	cellEdge:     '·',
	cellPathEdge: '•',
	cellPlain:    'o',
	cellPath:     '*',
	cellHover:    '@',
	cellEnd:      'E',
	cellStart:    'S',
}

var styles = map[cellKind]lipgloss.Style{
	cellEdge:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	cellPathEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
	cellPlain:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	cellPath:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
	cellHover:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	cellEnd:      lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
	cellStart:    lipgloss.NewStyle().Foreground(lipgloss.Color("167")).Bold(true),
}

var roleCell = map[core.Role]cellKind{
	core.RolePlain: cellPlain,
	core.RolePath:  cellPath,
	core.RoleHover: cellHover,
	core.RoleEnd:   cellEnd,
	core.RoleStart: cellStart,
}

// Canvas renders frames into Viewport.Width × Viewport.Height cells.
type Canvas struct {
	Viewport pick.Viewport
	// Styled enables lipgloss colours.
	Styled bool

	cells [][]cellKind
}

// New returns a styled canvas for vp.
func New(vp pick.Viewport) *Canvas {
	return &Canvas{Viewport: vp, Styled: true}
}

// CellCenter returns the screen position of the centre of cell (col, row),
// suitable for pick.SelectNode.
func CellCenter(col, row int) (sx, sy float64) {
	return float64(col) + 0.5, float64(row) + 0.5
}

// Draw renders f and returns Height lines joined by newlines. Edges are
// drawn first, nodes on top; within a cell the higher-priority kind wins.
func (c *Canvas) Draw(f core.Frame) string {
	c.reset()
	if c.Viewport.Validate() != nil {
		return ""
	}

	for _, e := range f.Edges {
		if e.From > e.To {
			continue
		}
		kind := cellEdge
		if e.OnPath {
			kind = cellPathEdge
		}
		c.segment(orb.Point{e.FromX, e.FromY}, orb.Point{e.ToX, e.ToY}, kind)
	}
	for _, n := range f.Nodes {
		c.plot(orb.Point{n.X, n.Y}, roleCell[n.Role])
	}

	return c.String()
}

// String returns the last drawn grid.
func (c *Canvas) String() string {
	lines := make([]string, len(c.cells))
	for r, row := range c.cells {
		var b strings.Builder
		for _, k := range row {
			g := string(glyphs[k])
			if c.Styled && k != cellEmpty {
				g = styles[k].Render(g)
			}
			b.WriteString(g)
		}
		lines[r] = b.String()
	}

	return strings.Join(lines, "\n")
}

func (c *Canvas) reset() {
	w, h := c.Viewport.Width, c.Viewport.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.cells = make([][]cellKind, h)
	for r := range c.cells {
		c.cells[r] = make([]cellKind, w)
	}
}

// segment marks the cells along a line. The line is clipped to the canvas
// first, so the number of steps stays below Width+Height at any zoom.
// Endpoint cells are marked too; nodes are plotted over them afterwards.
func (c *Canvas) segment(a, b orb.Point, kind cellKind) {
	ax, ay := c.Viewport.WorldToScreen(a)
	bx, by := c.Viewport.WorldToScreen(b)
	if !finite(ax, ay, bx, by) {
		return
	}
	box := orb.Bound{Max: orb.Point{float64(c.Viewport.Width), float64(c.Viewport.Height)}}
	for _, piece := range clip.LineString(box, orb.LineString{{ax, ay}, {bx, by}}) {
		for i := 1; i < len(piece); i++ {
			p, q := piece[i-1], piece[i]
			steps := int(math.Ceil(math.Max(math.Abs(q[0]-p[0]), math.Abs(q[1]-p[1]))))
			for s := 0; s <= steps; s++ {
				t := 1.0
				if steps > 0 {
					t = float64(s) / float64(steps)
				}
				c.set(p[0]+(q[0]-p[0])*t, p[1]+(q[1]-p[1])*t, kind)
			}
		}
	}
}

func (c *Canvas) plot(p orb.Point, kind cellKind) {
	sx, sy := c.Viewport.WorldToScreen(p)
	c.set(sx, sy, kind)
}

func (c *Canvas) set(sx, sy float64, kind cellKind) {
	// compare as floats: far off-screen points overflow int
	if !(sy >= 0 && sy < float64(len(c.cells))) {
		return
	}
	row := int(sy)
	if !(sx >= 0 && sx < float64(len(c.cells[row]))) {
		return
	}
	col := int(sx)
	if kind > c.cells[row][col] {
		c.cells[row][col] = kind
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
