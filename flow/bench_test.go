package flow_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/flow"
)

func BenchmarkTrails_Grid(b *testing.B) {
	const w = 30
	g := core.NewGraph()
	for i := 0; i < w*w; i++ {
		if _, err := g.AddSpot(strconv.Itoa(i), ""); err != nil {
			b.Fatal(err)
		}
	}
	for y := 0; y < w; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				_ = g.AddPath(y*w+x, y*w+x+1, 1, 1)
			}
			if y+1 < w {
				_ = g.AddPath(y*w+x, (y+1)*w+x, 1, 1)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flow.Trails(g, w+1, w*w-w-2); err != nil {
			b.Fatal(err)
		}
	}
}
