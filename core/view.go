// File: view.go
// Role: Read-only snapshot of node and edge display state for renderers.
// Determinism:
//   - Nodes appear in id order; edges in node order, then adjacency order.
// AI-HINT (file):
//   - A Frame is a value copy. Nothing in it points back into the Graph.
//   - Each logical edge appears twice (once per endpoint), like the adjacency lists.

package core

// Role is the display role of a node in a Frame.
type Role int

const (
	// RolePlain is a node with no special role.
	RolePlain Role = iota
	// RolePath is an intermediate node of the current path.
	RolePath
	// RoleHover is the node under the pointer.
	RoleHover
	// RoleEnd is the end endpoint.
	RoleEnd
	// RoleStart is the start endpoint.
	RoleStart
)

// String returns a lowercase role name.
func (r Role) String() string {
	switch r {
	case RolePath:
		return "path"
	case RoleHover:
		return "hover"
	case RoleEnd:
		return "end"
	case RoleStart:
		return "start"
	default:
		return "plain"
	}
}

// NodeState is the per-node display record.
type NodeState struct {
	ID     int
	X, Y   float64
	OnPath bool
	Role   Role
}

// EdgeState is the per-adjacency-entry display record. OnPath is true when
// both endpoints are on the current path.
type EdgeState struct {
	From, To     int
	FromX, FromY float64
	ToX, ToY     float64
	Cost         float64
	OnPath       bool
}

// Frame is a read-only snapshot of a graph's display state.
type Frame struct {
	Nodes []NodeState
	Edges []EdgeState
	Start int
	End   int
	Hover int
}

// Snapshot copies the display state of g. hover is the node under the
// pointer, or NoNode.
//
// Role priority is start > end > hover > on-path > plain.
// Complexity: O(V + E).
func (g *Graph) Snapshot(hover int) Frame {
	f := Frame{
		Nodes: make([]NodeState, 0, len(g.nodes)),
		Start: g.start,
		End:   g.end,
		Hover: hover,
	}
	for _, n := range g.nodes {
		f.Nodes = append(f.Nodes, NodeState{
			ID:     n.id,
			X:      n.x,
			Y:      n.y,
			OnPath: n.onPath,
			Role:   g.roleOf(n, hover),
		})
	}
	for _, n := range g.nodes {
		for _, e := range n.edges {
			to := g.nodes[e.To]
			f.Edges = append(f.Edges, EdgeState{
				From:   e.From,
				To:     e.To,
				FromX:  n.x,
				FromY:  n.y,
				ToX:    to.x,
				ToY:    to.y,
				Cost:   e.Cost,
				OnPath: n.onPath && to.onPath,
			})
		}
	}

	return f
}

func (g *Graph) roleOf(n *Node, hover int) Role {
	switch {
	case n.id == g.start:
		return RoleStart
	case n.id == g.end:
		return RoleEnd
	case n.id == hover:
		return RoleHover
	case n.onPath:
		return RolePath
	default:
		return RolePlain
	}
}
