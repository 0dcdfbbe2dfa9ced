// Package core defines the central Graph, Node, and Edge types of the
// path-finding engine: an arena of nodes addressed by stable integer
// handles, symmetric weighted adjacency, and per-node search scratch state.
//
// This file declares Node, Edge, Graph, the NoNode handle, the sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound  - a node index outside [0, NumNodes()).
//	ErrSelfLoop      - Connect(a, a, w); self-loops are a caller error.
//	ErrNegativeCost  - Connect with a negative or NaN edge cost.
package core

import (
	"errors"
	"math"
)

// NoNode is the handle used for "no node": an unset endpoint, an unset
// predecessor, or an empty selection.
const NoNode = -1

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node index.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates Connect was called with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeCost indicates an edge cost below zero (or NaN).
	ErrNegativeCost = errors.New("core: edge cost must be non-negative")
)

// Edge is a directed, weighted adjacency entry. An undirected connection is
// stored as two mirrored Edge records, one in each endpoint's list.
type Edge struct {
	// From is the source node index (always the owner of the adjacency list).
	From int

	// To is the target node index.
	To int

	// Cost is the non-negative traversal cost.
	Cost float64
}

// Node is a graph vertex: identity, world position, adjacency, and the
// scratch fields written by path computation and maze carving.
//
// Nodes are owned by the Graph that created them. Prev and Edge.To are plain
// indices into that graph, never owning references.
type Node struct {
	id    int
	x, y  float64
	edges []Edge

	// scratch
	cost    float64
	prev    int
	onPath  bool
	visited bool
}

// newNode returns a node with reset scratch state.
func newNode(id int, x, y float64) *Node {
	return &Node{
		id:   id,
		x:    x,
		y:    y,
		cost: math.Inf(1),
		prev: NoNode,
	}
}

// Graph owns a dense collection of nodes where node.ID() == index.
//
// Besides the nodes it tracks two non-owning endpoint handles (start, end)
// and the most recently applied path, ordered start→end.
//
// A Graph has a single owner; it performs no locking.
type Graph struct {
	nodes []*Node
	start int
	end   int
	path  []int
}

// NewGraph creates an empty Graph with unset endpoints.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		start: NoNode,
		end:   NoNode,
	}
}
