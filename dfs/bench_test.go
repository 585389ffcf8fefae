package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/aoc/core"
	"github.com/katalvlaran/aoc/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a directed chain N0 → … → N10000.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 10000; i++ {
		_ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "N0")
	}
}
