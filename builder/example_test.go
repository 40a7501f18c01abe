package builder_test

import (
	"fmt"

	"github.com/katalvlaran/treebound/builder"
)

// ExampleBuildGraph builds a 4-cycle, then adds a chord by hand, turning
// one side into a triangle.
func ExampleBuildGraph() {
	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(4))
	_ = g.AddEdge("0", "2") // the chord

	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(g.IsAdjacent("0", "2"))

	// Output:
	// 4 5
	// true
}

// ExampleComplete shows the canonical lower-bound fixture K_5.
func ExampleComplete() {
	g, _ := builder.BuildGraph(nil, nil, builder.Complete(5))

	fmt.Println(g.VertexCount(), g.EdgeCount())

	// Output:
	// 5 10
}
