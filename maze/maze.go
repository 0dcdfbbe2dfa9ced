// Package maze carves a perfect maze (a spanning tree) out of a base graph.
//
// MethodDFS, the default, runs an iterative randomized depth-first search
// from node 0 of the source. At every step it shuffles the adjacency of the
// node on top of the stack, follows the first unvisited neighbour, and
// copies that edge, cost included, into the destination graph. Nodes with no
// unvisited neighbour are popped.
//
// MethodKruskal shuffles every edge of the source and keeps those that join
// two different trees of a union-find forest. It spans every component of
// the source, not only the one holding node 0.
//
// Complexity:
//
//   - DFS:     O(V + E) edge inspections plus O(deg) per shuffle; O(V) stack.
//   - Kruskal: O(E·α(V)) after an O(E) shuffle; O(V + E) memory.
//
// Errors:
//
//   - ErrGraphNil        if src or dst is nil.
//   - ErrEmptyGraph      if src has no nodes.
//   - ErrOutputNotEmpty  if dst already has nodes (CarveInto).
//   - ErrNeedRandSource  if no random source is configured.
//   - ErrUnknownMethod   if Method is not MethodDFS or MethodKruskal.
//   - context errors     if the context is done.
package maze

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/builder"
	"github.com/katalvlaran/pathgrid/core"
)

// carver encapsulates state during one carve.
type carver struct {
	src   *core.Graph
	dst   *core.Graph
	opts  Options
	stack []int
}

// Carve builds a new graph holding a maze carved from src.
// See CarveInto for the contract.
func Carve(src *core.Graph, opts ...Option) (*core.Graph, error) {
	o, err := prepare(src, opts)
	if err != nil {
		return nil, err
	}

	return carve(src, o)
}

// CarveInto fills the empty graph dst with a spanning tree carved from src.
//
// Steps (MethodDFS):
//  1. Clone every node of src (id and position) into a scratch graph.
//  2. Clear Visited on src, push node 0 and mark it.
//  3. While the stack is not empty: shuffle the top node's adjacency, follow
//     the first unvisited neighbour, connect it in the scratch graph with the
//     same cost, mark and push it; pop when no unvisited neighbour remains.
//  4. Select start = 0, end = last node and compute the path.
//  5. Move the scratch graph into dst.
//
// dst is written only in step 5: on any error, cancellation included, it is
// left empty. With MethodDFS, nodes of src unreachable from node 0 stay
// edge-less. When the end node is among them dst simply has no current
// path; that is not an error. src keeps its Visited flags set for
// inspection. MethodKruskal replaces step 2-3 and leaves the flags of src
// untouched.
func CarveInto(src, dst *core.Graph, opts ...Option) error {
	if dst == nil {
		return ErrGraphNil
	}
	if dst.NumNodes() != 0 {
		return fmt.Errorf("%w: has %d nodes", ErrOutputNotEmpty, dst.NumNodes())
	}
	o, err := prepare(src, opts)
	if err != nil {
		return err
	}
	out, err := carve(src, o)
	if err != nil {
		return err
	}
	*dst = *out

	return nil
}

// prepare validates src and resolves opts.
func prepare(src *core.Graph, opts []Option) (Options, error) {
	o := DefaultOptions()
	if src == nil {
		return o, ErrGraphNil
	}
	for _, fn := range opts {
		fn(&o)
	}
	if src.NumNodes() == 0 {
		return o, ErrEmptyGraph
	}
	if o.Rand == nil {
		return o, ErrNeedRandSource
	}
	if o.Method != MethodDFS && o.Method != MethodKruskal {
		return o, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}

	return o, nil
}

// carve runs steps 1-4 and returns the finished scratch graph.
func carve(src *core.Graph, o Options) (*core.Graph, error) {
	// 1. Mirror nodes
	out := src.CloneNodes()

	// 2-3. Carve
	var err error
	if o.Method == MethodKruskal {
		err = carveKruskal(src, out, o)
	} else {
		c := &carver{src: src, dst: out, opts: o, stack: make([]int, 0, src.NumNodes())}
		err = c.run()
	}
	if err != nil {
		return nil, err
	}

	// 4. Endpoints and path
	if err := builder.SelectDefaultEndpoints(out); err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	return out, nil
}

// run performs the stack-driven walk from node 0.
func (c *carver) run() error {
	c.src.ClearVisited()
	c.visit(0)

	for len(c.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-c.opts.Ctx.Done():
			return c.opts.Ctx.Err()
		default:
		}

		top := c.src.Node(c.stack[len(c.stack)-1])
		next, ok := c.unvisitedNeighbor(top)
		if !ok {
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}
		if err := c.dst.Connect(next.From, next.To, next.Cost); err != nil {
			return fmt.Errorf("maze: connect %d→%d: %w", next.From, next.To, err)
		}
		if c.opts.OnCarve != nil {
			c.opts.OnCarve(next.From, next.To)
		}
		c.visit(next.To)
	}

	return nil
}

// unvisitedNeighbor returns the first adjacency entry of n, in a fresh
// random order, whose target is not visited yet.
func (c *carver) unvisitedNeighbor(n *core.Node) (core.Edge, bool) {
	for _, i := range c.opts.Rand.Perm(n.NumEdges()) {
		e := n.Edge(i)
		if !c.src.Node(e.To).Visited() {
			return e, true
		}
	}

	return core.Edge{}, false
}

// visit marks id and pushes it.
func (c *carver) visit(id int) {
	c.src.Node(id).SetVisited(true)
	c.stack = append(c.stack, id)
}
