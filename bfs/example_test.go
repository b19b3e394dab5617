package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/tourgraph/bfs"
	"github.com/katalvlaran/tourgraph/core"
)

// ExampleReachable shows which spots are within two stops of the gate.
func ExampleReachable() {
	g := core.NewGraph()
	gate, _ := g.AddSpot("Gate", "")
	lake, _ := g.AddSpot("Lake", "")
	peak, _ := g.AddSpot("Peak", "")
	cave, _ := g.AddSpot("Cave", "")
	_ = g.AddPath(gate, lake, 100, 2)
	_ = g.AddPath(lake, peak, 300, 10)
	_ = g.AddPath(peak, cave, 80, 4)

	res, _ := bfs.Reachable(g, gate, bfs.WithMaxDepth(2))
	fmt.Println(res.Order)
	path, _ := res.PathTo(peak)
	fmt.Println(path)

	// Output:
	// [0 1 2]
	// [0 1 2]
}
