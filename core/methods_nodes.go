// File: methods_nodes.go
// Role: Node creation, lookup and per-node accessors.
// Determinism:
//   - Node ids are dense and equal to insertion index; Nodes() iterates in id order.

package core

// AddNode appends a node at (x, y) and returns it. Its id is the previous
// NumNodes().
// Complexity: amortized O(1).
func (g *Graph) AddNode(x, y float64) *Node {
	n := newNode(len(g.nodes), x, y)
	g.nodes = append(g.nodes, n)

	return n
}

// Node returns the node with the given id, or nil when out of range.
// Complexity: O(1).
func (g *Graph) Node(id int) *Node {
	if !g.HasNode(id) {
		return nil
	}

	return g.nodes[id]
}

// HasNode reports whether id addresses a node of g.
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < len(g.nodes)
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Nodes returns the nodes in id order. The slice is shared; callers must not
// append to or reorder it.
func (g *Graph) Nodes() []*Node { return g.nodes }

// ID returns the node's immutable identifier.
func (n *Node) ID() int { return n.id }

// X returns the world x coordinate.
func (n *Node) X() float64 { return n.x }

// Y returns the world y coordinate.
func (n *Node) Y() float64 { return n.y }

// SetPosition moves the node. It is the only position mutator.
func (n *Node) SetPosition(x, y float64) { n.x, n.y = x, y }

// NumEdges returns the size of the adjacency list.
func (n *Node) NumEdges() int { return len(n.edges) }

// Edge returns the i-th adjacency entry in insertion order.
func (n *Node) Edge(i int) Edge { return n.edges[i] }

// Edges returns the adjacency list in insertion order. Read-only by convention.
func (n *Node) Edges() []Edge { return n.edges }

// Cost returns the best known distance from the last search's start node.
func (n *Node) Cost() float64 { return n.cost }

// SetCost stores the search cost.
func (n *Node) SetCost(c float64) { n.cost = c }

// Prev returns the predecessor index on the best known path, or NoNode.
func (n *Node) Prev() int { return n.prev }

// SetPrev stores the predecessor index.
func (n *Node) SetPrev(id int) { n.prev = id }

// OnPath reports membership in the last applied path.
func (n *Node) OnPath() bool { return n.onPath }

// SetOnPath stores path membership.
func (n *Node) SetOnPath(on bool) { n.onPath = on }

// Visited returns the maze-carving flag.
func (n *Node) Visited() bool { return n.visited }

// SetVisited stores the maze-carving flag.
func (n *Node) SetVisited(v bool) { n.visited = v }
