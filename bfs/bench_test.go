package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkIsConnected_Grid measures the connectivity check on a 100×100 grid.
func BenchmarkIsConnected_Grid(b *testing.B) {
	const side = 100
	g := core.NewGraph()
	for i := 0; i < side*side; i++ {
		g.AddNode(float64(i%side), float64(i/side))
	}
	for i := 0; i < side*side; i++ {
		if i%side+1 < side {
			_ = g.Connect(i, i+1, 1)
		}
		if i+side < side*side {
			_ = g.Connect(i, i+side, 1)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.IsConnected(g)
	}
}
