package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/gridgraph"
)

// ExampleGridGraph_Populate turns a small terrain map into spots and paths.
// Zero cells are a lake nobody can walk through.
func ExampleGridGraph_Populate() {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 1, 2},
		{0, 0, 2},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	g := core.NewGraph()
	if _, err = gg.Populate(g); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("spots:", g.NodeCount(), "paths:", g.EdgeCount())
	fmt.Println("islands:", len(gg.ConnectedComponents()))

	// Output:
	// spots: 7 paths: 6
	// islands: 1
}
