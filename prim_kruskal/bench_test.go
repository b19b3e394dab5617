package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/prim_kruskal"
)

// BenchmarkKruskal measures a 500-spot graph with 2000 paths.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g, core.MetricDistance)
	}
}

// BenchmarkPrim measures the same graph grown from spot 0.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, 0, core.MetricDistance)
	}
}
