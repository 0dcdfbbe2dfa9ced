// File: methods_clone.go
// Role: Node-only copies of a graph.
// Determinism:
//   - Copies preserve ids and insertion order; endpoints are unset.

package core

// CloneNodes returns a new Graph with the same node ids and positions and no
// edges. Scratch state and endpoints are not carried over.
//
// Complexity: O(V).
func (g *Graph) CloneNodes() *Graph {
	out := NewGraph()
	out.nodes = make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out.nodes = append(out.nodes, newNode(n.id, n.x, n.y))
	}

	return out
}
