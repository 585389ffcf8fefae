package core_test

import (
	"fmt"

	"github.com/katalvlaran/aoc/core"
)

// ExampleGraph builds a tiny tunnel network and inspects it.
func ExampleGraph() {
	// 1) Undirected graph: tunnels work both ways.
	g := core.NewGraph()

	// 2) Edges auto-add vertices.
	_ = g.AddEdge("AA", "BB")
	_ = g.AddEdge("BB", "CC")
	_ = g.SetValue("BB", 13)

	// 3) Queries.
	nbrs, _ := g.NeighborIDs("BB")
	rate, _ := g.Value("BB")
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("BB leads to:", nbrs, "rate:", rate)
	fmt.Println("CC→BB exists?", g.HasEdge("CC", "BB"))

	// Output:
	// Vertices: [AA BB CC]
	// BB leads to: [AA CC] rate: 13
	// CC→BB exists? true
}
