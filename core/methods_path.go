// File: methods_path.go
// Role: Start/end endpoints, search scratch reset, and the current path.
// AI-HINT (file):
//   - Search algorithms do not write nodes directly; they hand their result to ApplySearch.
//   - ApplySearch always resets scratch first, so at most one path is ever marked.

package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrScratchSize indicates ApplySearch received dist/prev slices whose length
// differs from NumNodes().
var ErrScratchSize = errors.New("core: scratch size does not match node count")

// Start returns the start node index, or NoNode when unset.
func (g *Graph) Start() int { return g.start }

// End returns the end node index, or NoNode when unset.
func (g *Graph) End() int { return g.end }

// SetStart assigns the start endpoint. NoNode clears it.
func (g *Graph) SetStart(id int) error {
	if id != NoNode && !g.HasNode(id) {
		return fmt.Errorf("SetStart(%d): %w", id, ErrNodeNotFound)
	}
	g.start = id

	return nil
}

// SetEnd assigns the end endpoint. NoNode clears it.
func (g *Graph) SetEnd(id int) error {
	if id != NoNode && !g.HasNode(id) {
		return fmt.Errorf("SetEnd(%d): %w", id, ErrNodeNotFound)
	}
	g.end = id

	return nil
}

// Path returns a copy of the current path, start→end. Empty when no path
// has been applied or the last search failed.
func (g *Graph) Path() []int {
	out := make([]int, len(g.path))
	copy(out, g.path)

	return out
}

// ResetScratch sets every node to Cost=+Inf, Prev=NoNode, OnPath=false and
// drops the current path. Visited flags are left alone.
// Complexity: O(V).
func (g *Graph) ResetScratch() {
	inf := math.Inf(1)
	for _, n := range g.nodes {
		n.cost = inf
		n.prev = NoNode
		n.onPath = false
	}
	g.path = nil
}

// ClearVisited resets the maze-carving flag on every node.
func (g *Graph) ClearVisited() {
	for _, n := range g.nodes {
		n.visited = false
	}
}

// ApplySearch resets scratch state and then copies a finished search into
// the nodes: dist into Cost, prev into Prev, and OnPath=true for every node
// of path. path is stored as the current path.
//
// dist and prev must be indexed by node id; nil slices skip the copy.
// Complexity: O(V + len(path)).
func (g *Graph) ApplySearch(dist []float64, prev []int, path []int) error {
	g.ResetScratch()
	if dist != nil && len(dist) != len(g.nodes) {
		return fmt.Errorf("ApplySearch: len(dist)=%d, nodes=%d: %w", len(dist), len(g.nodes), ErrScratchSize)
	}
	if prev != nil && len(prev) != len(g.nodes) {
		return fmt.Errorf("ApplySearch: len(prev)=%d, nodes=%d: %w", len(prev), len(g.nodes), ErrScratchSize)
	}
	for _, id := range path {
		if !g.HasNode(id) {
			return fmt.Errorf("ApplySearch: path node %d: %w", id, ErrNodeNotFound)
		}
	}

	for i, n := range g.nodes {
		if dist != nil {
			n.cost = dist[i]
		}
		if prev != nil {
			n.prev = prev[i]
		}
	}
	for _, id := range path {
		g.nodes[id].onPath = true
	}
	g.path = append([]int(nil), path...)

	return nil
}
