package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/prim_kruskal"
)

// ExampleKruskal finds which paths must stay open on a five-spot loop.
func ExampleKruskal() {
	g := core.NewGraph()
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		_, _ = g.AddSpot(n, "")
	}
	_ = g.AddPath(0, 1, 1, 1)
	_ = g.AddPath(0, 4, 12, 1)
	_ = g.AddPath(1, 2, 2, 1)
	_ = g.AddPath(2, 3, 3, 1)
	_ = g.AddPath(3, 4, 5, 1)

	res, err := prim_kruskal.Kruskal(g, core.MetricDistance)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Paths:", res.Weight)
	for _, e := range res.Edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Paths: 0-1 1-2 2-3 3-4
}
