package core_test

import (
	"fmt"

	"github.com/katalvlaran/treebound/core"
)

// ExampleGraph_IsAdjacent builds a square and queries adjacency.
//
//	A───B
//	│   │
//	C───D
func ExampleGraph_IsAdjacent() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("C", "D")

	fmt.Println(g.IsAdjacent("A", "B")) // edge
	fmt.Println(g.IsAdjacent("A", "D")) // diagonal, no edge
	fmt.Println(g.Vertices())

	// Output:
	// true
	// false
	// [A B C D]
}
