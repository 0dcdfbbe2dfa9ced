// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// The search is a pure function of the graph topology: it never writes node
// scratch fields. Recompute is the bridge that applies a Result back onto a
// graph for display.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor slices.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap. A popped
//     entry whose distance is worse than the node's current best is stale and skipped.
//   - Relaxation uses strict “<”: among equal-cost alternatives the first found wins.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathgrid/core"
)

// ShortestPath computes the cheapest path from source to target in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and target must be node indices of g (ErrNodeNotFound).
//  3. No edge in g can have negative cost (ErrNegativeWeight).
//
// source == target yields Path=[source], Cost=0.
// An unreachable target yields Reachable=false, Path=nil, Cost=+Inf, and an
// error wrapping ErrNoPath; Dist and Prev are still populated.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, source, target int, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasNode(source) {
		return Result{}, fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return Result{}, fmt.Errorf("%w: target %d", ErrNodeNotFound, target)
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	for _, n := range g.Nodes() {
		for _, e := range n.Edges() {
			if e.Cost < 0 || math.IsNaN(e.Cost) {
				return Result{}, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Cost)
			}
		}
	}

	// 4) Run.
	r := newRunner(g, source, target, cfg)
	r.init()
	r.process()

	return r.result()
}

// FindPath computes the path between g's current start and end nodes.
// An unset endpoint is a precondition violation: ErrNoStart or ErrNoEnd.
func FindPath(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if g.Start() == core.NoNode {
		return Result{}, ErrNoStart
	}
	if g.End() == core.NoNode {
		return Result{}, ErrNoEnd
	}

	return ShortestPath(g, g.Start(), g.End(), opts...)
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph // The input graph; read-only here.
	options Options     // Configuration options.
	source  int
	target  int
	dist    []float64 // node id → current best distance from source.
	prev    []int     // node id → predecessor on the best known path.
	pq      nodePQ    // Min-heap of *nodeItem for lazy priority queue.
}

func newRunner(g *core.Graph, source, target int, cfg Options) *runner {
	v := g.NumNodes()

	return &runner{
		g:       g,
		options: cfg,
		source:  source,
		target:  target,
		dist:    make([]float64, v),
		prev:    make([]int, v),
		pq:      make(nodePQ, 0, v),
	}
}

// init resets distances and predecessors and pushes the source with distance 0.
func (r *runner) init() {
	// 1) dist[v] = +∞, prev[v] = NoNode for all v.
	inf := math.Inf(1)
	for i := range r.dist {
		r.dist[i] = inf
		r.prev[i] = core.NoNode
	}

	// 2) Distance to the source is zero.
	r.dist[r.source] = 0

	// 3) Seed the heap.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process is the core loop: pop the minimum entry and relax its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The target is popped and EarlyExit is enabled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Stale entry: a cheaper route to this node was pushed later.
		if item.dist > r.dist[item.id] {
			continue
		}

		// 3) The target's distance is final once popped.
		if item.id == r.target && r.options.EarlyExit {
			return
		}

		// 4) Relax all outgoing edges.
		r.relax(item.id, item.dist)
	}
}

// relax examines each adjacency entry of u and improves neighbour distances.
func (r *runner) relax(u int, d float64) {
	var nd float64
	for _, e := range r.g.Node(u).Edges() {
		nd = d + e.Cost
		// Strict “<”: equal-cost alternatives do not replace the first found.
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}
}

// result backtracks from the target and assembles the Result.
func (r *runner) result() (Result, error) {
	res := Result{
		Source: r.source,
		Target: r.target,
		Cost:   r.dist[r.target],
		Dist:   r.dist,
		Prev:   r.prev,
	}
	if math.IsInf(res.Cost, 1) {
		return res, fmt.Errorf("%w: %d → %d", ErrNoPath, r.source, r.target)
	}

	// Walk prev links target → source, then reverse.
	path := []int{r.target}
	for at := r.target; at != r.source; {
		at = r.prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path
	res.Reachable = true

	return res, nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int     // node index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
