package pick

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/pathgrid/core"
)

// DefaultTolerance is the pick radius in world units: the square of the
// node sprite scale (0.5).
const DefaultTolerance = 0.25

// Picker finds the node under a world point.
type Picker interface {
	Pick(p orb.Point) (int, bool)
}

// Linear scans nodes in id order. It reads positions live, so it follows
// SetPosition calls made after construction.
type Linear struct {
	g         *core.Graph
	tolerance float64
}

// NewLinear returns a Linear picker; a non-positive tolerance selects
// DefaultTolerance.
func NewLinear(g *core.Graph, tolerance float64) *Linear {
	return &Linear{g: g, tolerance: resolveTolerance(tolerance)}
}

// Pick returns the first node whose distance to p is below the tolerance.
// Complexity: O(V).
func (l *Linear) Pick(p orb.Point) (int, bool) {
	if l.g == nil {
		return core.NoNode, false
	}
	for _, n := range l.g.Nodes() {
		if planar.Distance(p, orb.Point{n.X(), n.Y()}) < l.tolerance {
			return n.ID(), true
		}
	}

	return core.NoNode, false
}

// nodeEntry is a node position stored in the R-tree.
type nodeEntry struct {
	id  int
	pos orb.Point
	box rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.box }

// Indexed answers picks from an R-tree over node positions captured at
// construction. Rebuild it after moving nodes.
type Indexed struct {
	tree      *rtreego.Rtree
	tolerance float64
}

// NewIndexed indexes every node of g; a non-positive tolerance selects
// DefaultTolerance.
// Complexity: O(V log V).
func NewIndexed(g *core.Graph, tolerance float64) *Indexed {
	tol := resolveTolerance(tolerance)
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	if g != nil {
		for _, n := range g.Nodes() {
			pos := orb.Point{n.X(), n.Y()}
			tree.Insert(&nodeEntry{
				id:  n.ID(),
				pos: pos,
				box: rtreego.Point{pos.X(), pos.Y()}.ToRect(tol),
			})
		}
	}

	return &Indexed{tree: tree, tolerance: tol}
}

// Pick returns the lowest-id node whose distance to p is below the
// tolerance, matching Linear.
// Complexity: O(log V + k) for k candidates.
func (ix *Indexed) Pick(p orb.Point) (int, bool) {
	query := rtreego.Point{p.X(), p.Y()}.ToRect(ix.tolerance)
	best := core.NoNode
	for _, s := range ix.tree.SearchIntersect(query) {
		e := s.(*nodeEntry)
		if planar.Distance(p, e.pos) >= ix.tolerance {
			continue
		}
		if best == core.NoNode || e.id < best {
			best = e.id
		}
	}

	return best, best != core.NoNode
}

// Size returns the number of indexed nodes.
func (ix *Indexed) Size() int { return ix.tree.Size() }

// SelectNode returns the node under screen position (sx, sy). A nil picker
// falls back to a Linear scan of g with DefaultTolerance. Positions outside
// the viewport select nothing.
func SelectNode(g *core.Graph, picker Picker, sx, sy float64, vp Viewport) (int, bool) {
	p, ok := vp.ScreenToWorld(sx, sy)
	if !ok {
		return core.NoNode, false
	}
	if picker == nil {
		picker = NewLinear(g, DefaultTolerance)
	}

	return picker.Pick(p)
}

func resolveTolerance(t float64) float64 {
	if !(t > 0) {
		return DefaultTolerance
	}
	return t
}
