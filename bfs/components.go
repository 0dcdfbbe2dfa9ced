package bfs

import (
	"github.com/katalvlaran/pathgrid/core"
)

// Reachable returns, for every node index of g, whether it can be reached
// from src.
// Complexity: O(V + E).
func Reachable(g *core.Graph, src int) ([]bool, error) {
	res, err := BFS(g, src)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(res.Depth))
	for i, d := range res.Depth {
		out[i] = d >= 0
	}

	return out, nil
}

// CountReachable returns how many nodes of g, src included, are reachable
// from src.
func CountReachable(g *core.Graph, src int) (int, error) {
	res, err := BFS(g, src)
	if err != nil {
		return 0, err
	}

	return len(res.Order), nil
}

// Components partitions the nodes of g into connected components. Each
// component lists its nodes in BFS order; components are ordered by their
// smallest node index. A nil graph has no components.
//
// One seen slice and one queue serve every component, so isolated nodes
// cost O(1) each.
// Complexity: O(V + E).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	n := g.NumNodes()
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	var comps [][]int
	for id := 0; id < n; id++ {
		if seen[id] {
			continue
		}
		seen[id] = true
		queue = append(queue[:0], id)
		for head := 0; head < len(queue); head++ {
			for _, e := range g.Node(queue[head]).Edges() {
				if !seen[e.To] {
					seen[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}
		comps = append(comps, append([]int(nil), queue...))
	}

	return comps
}

// IsConnected reports whether every node of g is reachable from node 0.
// Empty and nil graphs count as connected.
func IsConnected(g *core.Graph) bool {
	if g == nil || g.NumNodes() == 0 {
		return true
	}
	n, err := CountReachable(g, 0)

	return err == nil && n == g.NumNodes()
}
