package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
)

// ExampleGraph_Connect demonstrates that one Connect call stores the edge
// in both endpoints' adjacency lists.
func ExampleGraph_Connect() {
	// 1) Two nodes, ids 0 and 1.
	g := core.NewGraph()
	g.AddNode(-1, 0)
	g.AddNode(1, 0)

	// 2) One undirected connection with cost 2.5.
	if err := g.Connect(0, 1, 2.5); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Each side sees the other.
	for _, n := range g.Nodes() {
		e := n.Edge(0)
		fmt.Printf("node %d: %d→%d cost=%.1f\n", n.ID(), e.From, e.To, e.Cost)
	}
	fmt.Println("logical edges:", g.NumEdges())

	// Output:
	// node 0: 0→1 cost=2.5
	// node 1: 1→0 cost=2.5
	// logical edges: 1
}

// ExampleGraph_Snapshot shows how a renderer reads display roles.
func ExampleGraph_Snapshot() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddNode(float64(i), 0)
	}
	_ = g.Connect(0, 1, 1)
	_ = g.Connect(1, 2, 1)
	_ = g.SetStart(0)
	_ = g.SetEnd(2)
	_ = g.ApplySearch(nil, nil, []int{0, 1, 2})

	for _, n := range g.Snapshot(core.NoNode).Nodes {
		fmt.Printf("%d:%s ", n.ID, n.Role)
	}
	fmt.Println()

	// Output:
	// 0:start 1:path 2:end
}
