package scene

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/pick"
)

// ErrNilGraph is returned when the scene was built over a nil graph.
var ErrNilGraph = errors.New("scene: graph is nil")

// Input is the cursor state sampled for one frame.
type Input struct {
	X, Y     float64
	Viewport pick.Viewport
	Left     bool
	Right    bool
}

// Option configures a Scene.
type Option func(*Scene)

// WithPicker replaces the default linear picker.
func WithPicker(p pick.Picker) Option {
	return func(s *Scene) {
		if p != nil {
			s.picker = p
		}
	}
}

// WithTolerance sets the pick radius of the default picker.
func WithTolerance(t float64) Option {
	return func(s *Scene) {
		s.tolerance = t
	}
}

// WithLogger sets the logger for endpoint and path events.
func WithLogger(l *log.Logger) Option {
	return func(s *Scene) {
		if l != nil {
			s.log = l
		}
	}
}

// Scene couples a graph with hover state and a picker.
type Scene struct {
	g         *core.Graph
	picker    pick.Picker
	tolerance float64
	hover     int
	last      dijkstra.Result
	log       *log.Logger
}

// New returns a Scene over g. Without WithPicker it picks linearly with
// pick.DefaultTolerance (or the WithTolerance value). Logging is discarded
// unless WithLogger is given.
func New(g *core.Graph, opts ...Option) *Scene {
	s := &Scene{
		g:         g,
		tolerance: pick.DefaultTolerance,
		hover:     core.NoNode,
		log:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.picker == nil {
		s.picker = pick.NewLinear(g, s.tolerance)
	}

	return s
}

// Graph returns the underlying graph.
func (s *Scene) Graph() *core.Graph { return s.g }

// Hover returns the node under the cursor at the last Update, or core.NoNode.
func (s *Scene) Hover() int { return s.hover }

// Result returns the outcome of the last path computation. After a failed
// computation it is the partial result returned with the error.
func (s *Scene) Result() dijkstra.Result { return s.last }

// Select returns the node under screen position (sx, sy).
func (s *Scene) Select(sx, sy float64, vp pick.Viewport) (int, bool) {
	return pick.SelectNode(s.g, s.picker, sx, sy, vp)
}

// Update applies one frame of input.
//
//  1. The node under the cursor becomes the hover node (possibly none).
//  2. Left press: a selected node other than the end becomes the start.
//  3. Right press: a selected node other than the start becomes the end.
//  4. Any press recomputes the path, even when nothing was selected.
//
// The returned error is the last recompute error, for example
// dijkstra.ErrNoPath; the scene stays usable either way.
func (s *Scene) Update(in Input) error {
	if s.g == nil {
		return ErrNilGraph
	}
	id, ok := s.Select(in.X, in.Y, in.Viewport)
	s.hover = id

	var err error
	if in.Left {
		if ok && id != s.g.End() {
			if serr := s.SetStart(id); serr != nil {
				return serr
			}
		}
		_, err = s.FindPath()
	}
	if in.Right {
		if ok && id != s.g.Start() {
			if serr := s.SetEnd(id); serr != nil {
				return serr
			}
		}
		_, err = s.FindPath()
	}

	return err
}

// SetStart selects the start node; core.NoNode clears it.
func (s *Scene) SetStart(id int) error {
	if err := s.g.SetStart(id); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	s.log.Debug("start selected", "node", id)

	return nil
}

// SetEnd selects the end node; core.NoNode clears it.
func (s *Scene) SetEnd(id int) error {
	if err := s.g.SetEnd(id); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	s.log.Debug("end selected", "node", id)

	return nil
}

// FindPath recomputes the path between the current endpoints and marks it
// on the graph.
func (s *Scene) FindPath() (dijkstra.Result, error) {
	if s.g == nil {
		return dijkstra.Result{}, ErrNilGraph
	}
	res, err := dijkstra.Recompute(s.g)
	s.last = res
	if err != nil {
		s.log.Debug("no path", "start", s.g.Start(), "end", s.g.End(), "err", err)
		return res, err
	}
	s.log.Debug("path found", "start", res.Source, "end", res.Target, "hops", res.Hops(), "cost", res.Cost)

	return res, nil
}

// Snapshot returns the read-only view of the current frame.
func (s *Scene) Snapshot() core.Frame {
	if s.g == nil {
		return core.Frame{Start: core.NoNode, End: core.NoNode, Hover: core.NoNode}
	}
	return s.g.Snapshot(s.hover)
}

// Describe writes one line per node: index, id, position and neighbour count.
func (s *Scene) Describe(w io.Writer) error {
	if s.g == nil {
		return ErrNilGraph
	}
	for i, n := range s.g.Nodes() {
		if _, err := fmt.Fprintf(w, "Node %d: id: %d, x: %g, y: %g, number of neighbors: %d\n",
			i, n.ID(), n.X(), n.Y(), n.NumEdges()); err != nil {
			return err
		}
	}

	return nil
}
