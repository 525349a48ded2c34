package graph_test

import (
	"fmt"

	"github.com/lvlath-labs/pcstfast/graph"
)

// Example builds a small diamond of vertices with prizes and connects them
// with weighted edges, then prints the resulting snapshot arrays.
func Example() {
	g := graph.New()
	a, _ := g.AddVertex(0)
	b, _ := g.AddVertex(5)
	c, _ := g.AddVertex(5)
	d, _ := g.AddVertex(0)

	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(b, d, 1)
	_, _ = g.AddEdge(a, c, 1)
	_, _ = g.AddEdge(c, d, 1)

	fmt.Println(g.NumVertices(), g.NumEdges())
	fmt.Println(g.Prizes())
	// Output:
	// 4 4
	// [0 5 5 0]
}
