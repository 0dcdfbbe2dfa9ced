package maze

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
)

// forest is a disjoint-set over node ids with path compression and union
// by rank.
type forest struct {
	parent []int
	rank   []int
}

func newForest(n int) *forest {
	f := &forest{parent: make([]int, n), rank: make([]int, n)}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f
}

// find returns the root of u, halving the path on the way.
func (f *forest) find(u int) int {
	for f.parent[u] != u {
		f.parent[u] = f.parent[f.parent[u]]
		u = f.parent[u]
	}

	return u
}

// union merges the trees of u and v and reports whether they were apart.
func (f *forest) union(u, v int) bool {
	ru, rv := f.find(u), f.find(v)
	if ru == rv {
		return false
	}
	if f.rank[ru] < f.rank[rv] {
		ru, rv = rv, ru
	}
	f.parent[rv] = ru
	if f.rank[ru] == f.rank[rv] {
		f.rank[ru]++
	}

	return true
}

// carveKruskal copies into dst a random spanning forest of src.
//
// Steps:
//  1. Collect each logical edge of src once (from its lower endpoint).
//  2. Shuffle the list with o.Rand.
//  3. Keep an edge when its endpoints lie in different trees; stop early once
//     V-1 edges are kept.
func carveKruskal(src, dst *core.Graph, o Options) error {
	// 1. Edge list
	var edges []core.Edge
	for _, n := range src.Nodes() {
		for _, e := range n.Edges() {
			if e.From < e.To {
				edges = append(edges, e)
			}
		}
	}

	// 2. Shuffle
	o.Rand.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	// 3. Join trees
	f := newForest(src.NumNodes())
	kept := 0
	for _, e := range edges {
		if kept == src.NumNodes()-1 {
			break
		}
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		if !f.union(e.From, e.To) {
			continue
		}
		if err := dst.Connect(e.From, e.To, e.Cost); err != nil {
			return fmt.Errorf("maze: connect %d→%d: %w", e.From, e.To, err)
		}
		if o.OnCarve != nil {
			o.OnCarve(e.From, e.To)
		}
		kept++
	}

	return nil
}
