// File: methods_edges.go
// Role: Symmetric edge creation and edge queries.
// Determinism:
//   - Connect appends to both adjacency lists; insertion order is traversal order.
// AI-HINT (file):
//   - Every logical edge is stored exactly twice. There is no way to add one direction only.
//   - Duplicate connections are allowed and produce parallel entries.

package core

import (
	"fmt"
	"math"
)

// Connect adds the directed edge a→b to a's adjacency list and b→a to b's,
// both with the same cost.
//
// Errors: ErrNodeNotFound, ErrSelfLoop, ErrNegativeCost. On error neither
// list is modified.
// Complexity: amortized O(1).
func (g *Graph) Connect(a, b int, cost float64) error {
	if !g.HasNode(a) {
		return fmt.Errorf("Connect(%d,%d): node %d: %w", a, b, a, ErrNodeNotFound)
	}
	if !g.HasNode(b) {
		return fmt.Errorf("Connect(%d,%d): node %d: %w", a, b, b, ErrNodeNotFound)
	}
	if a == b {
		return fmt.Errorf("Connect(%d,%d): %w", a, b, ErrSelfLoop)
	}
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("Connect(%d,%d): cost=%g: %w", a, b, cost, ErrNegativeCost)
	}

	na, nb := g.nodes[a], g.nodes[b]
	na.edges = append(na.edges, Edge{From: a, To: b, Cost: cost})
	nb.edges = append(nb.edges, Edge{From: b, To: a, Cost: cost})

	return nil
}

// NumEdges returns the number of logical undirected edges, i.e. half the
// total adjacency size.
// Complexity: O(V).
func (g *Graph) NumEdges() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.edges)
	}

	return total / 2
}

// HasEdge reports whether b appears in a's adjacency list.
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b int) bool {
	if !g.HasNode(a) {
		return false
	}
	for _, e := range g.nodes[a].edges {
		if e.To == b {
			return true
		}
	}

	return false
}

// EdgeCost returns the cheapest cost among a→b entries, and false if there is none.
// Complexity: O(deg(a)).
func (g *Graph) EdgeCost(a, b int) (float64, bool) {
	if !g.HasNode(a) {
		return 0, false
	}
	best, found := math.Inf(1), false
	for _, e := range g.nodes[a].edges {
		if e.To == b && e.Cost < best {
			best, found = e.Cost, true
		}
	}

	return best, found
}

// PathCost sums the cheapest edge cost along consecutive nodes of path.
// It returns false if two consecutive nodes are not adjacent.
// A single-node path costs 0.
func (g *Graph) PathCost(path []int) (float64, bool) {
	var sum float64
	for i := 1; i < len(path); i++ {
		c, ok := g.EdgeCost(path[i-1], path[i])
		if !ok {
			return 0, false
		}
		sum += c
	}

	return sum, true
}
