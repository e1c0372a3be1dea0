package bfs_test

import (
	"testing"

	"github.com/katalvlaran/linkpred/bfs"
	"github.com/katalvlaran/linkpred/core"
)

// benchGraph builds a ring of n nodes with a chord every stride nodes.
func benchGraph(n int, stride int64) *core.Graph {
	g := core.NewGraph()
	for i := int64(0); i < int64(n); i++ {
		g.AddEdge(i, (i+1)%int64(n))
		g.AddEdge(i, (i+stride)%int64(n))
	}

	return g
}

func BenchmarkDistance(b *testing.B) {
	g := benchGraph(10_000, 101)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distance(g, 0, int64(i%10_000))
	}
}

func BenchmarkDistance_ExcludedEdge(b *testing.B) {
	g := benchGraph(10_000, 101)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distance(g, 0, 5_000, bfs.WithExcludedEdge(0, 1))
	}
}
