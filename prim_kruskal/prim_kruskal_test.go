package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/prim_kruskal"
)

// buildTriangle constructs Gate(0), Lake(1), Peak(2):
//
//	Gate-Lake 10m/5min, Lake-Peak 15m/7min, Gate-Peak 30m/6min.
//
// By distance the backbone is {Gate-Lake, Lake-Peak} = 25; by duration it
// is {Gate-Lake, Gate-Peak} = 11.
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []string{"Gate", "Lake", "Peak"} {
		_, err := g.AddSpot(n, "")
		require.NoError(t, err)
	}
	require.NoError(t, g.AddPath(0, 1, 10, 5))
	require.NoError(t, g.AddPath(1, 2, 15, 7))
	require.NoError(t, g.AddPath(0, 2, 30, 6))

	return g
}

// buildMediumGraph creates a connected graph of n spots: a chain for
// connectivity plus extra random paths, seeded for reproducibility.
func buildMediumGraph(t testing.TB, n, paths int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.AddSpot(fmt.Sprintf("S%d", i), "")
		require.NoError(t, err)
	}
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddPath(i-1, i, 1+r.Int63n(100), 1+r.Int63n(30)))
	}
	for added := n - 1; added < paths; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		require.NoError(t, g.AddPath(u, v, 1+r.Int63n(100), 1+r.Int63n(30)))
		added++
	}

	return g
}

func pairs(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = fmt.Sprintf("%d-%d", e.From, e.To)
	}

	return out
}

func TestKruskal_Triangle(t *testing.T) {
	g := buildTriangle(t)

	res, err := prim_kruskal.Kruskal(g, core.MetricDistance)
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Weight)
	assert.Equal(t, []string{"0-1", "1-2"}, pairs(res.Edges))

	res, err = prim_kruskal.Kruskal(g, core.MetricDuration)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.Weight)
	assert.Equal(t, []string{"0-1", "0-2"}, pairs(res.Edges))
}

func TestPrim_Triangle(t *testing.T) {
	g := buildTriangle(t)

	res, err := prim_kruskal.Prim(g, 2, core.MetricDistance)
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Weight)
	assert.Equal(t, []string{"1-2", "0-1"}, pairs(res.Edges), "grown from Peak")

	res, err = prim_kruskal.Prim(g, prim_kruskal.NoRoot, core.MetricDuration)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.Weight)
}

func TestBackbone_EdgeCases(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil, core.MetricDistance)
	assert.ErrorIs(t, err, prim_kruskal.ErrGraphNil)

	_, err = prim_kruskal.Kruskal(core.NewGraph(), core.MetricDistance)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	g := buildTriangle(t)
	_, err = prim_kruskal.Kruskal(g, core.Metric("altitude"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidMetric)

	_, err = prim_kruskal.Prim(g, 9, core.MetricDistance)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidSpot)

	tower, err := g.AddSpot("Tower", "")
	require.NoError(t, err)
	_, err = prim_kruskal.Kruskal(g, core.MetricDistance)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, err = prim_kruskal.Prim(g, 0, core.MetricDistance)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	// A deleted spot no longer needs covering.
	require.NoError(t, g.DeleteSpot(tower))
	res, err := prim_kruskal.Kruskal(g, core.MetricDistance)
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Weight)

	single := core.NewGraph()
	_, err = single.AddSpot("Only", "")
	require.NoError(t, err)
	res, err = prim_kruskal.Prim(single, prim_kruskal.NoRoot, core.MetricDistance)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.Weight)
}

func TestBackbone_ParallelPathsUseCheaper(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddPath(0, 1, 4, 50))

	res, err := prim_kruskal.Kruskal(g, core.MetricDistance)
	require.NoError(t, err)
	assert.Equal(t, int64(19), res.Weight)
}

func TestCompute(t *testing.T) {
	g := buildTriangle(t)

	res, err := prim_kruskal.Compute(g, core.MetricDistance)
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Weight)

	res, err = prim_kruskal.Compute(g, core.MetricDistance, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(1))
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Weight)

	_, err = prim_kruskal.Compute(g, core.MetricDistance, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestPrimAndKruskalAgree(t *testing.T) {
	g := buildMediumGraph(t, 60, 240)
	for _, m := range []core.Metric{core.MetricDistance, core.MetricDuration} {
		k, err := prim_kruskal.Kruskal(g, m)
		require.NoError(t, err)
		p, err := prim_kruskal.Prim(g, 17, m)
		require.NoError(t, err)

		assert.Equal(t, k.Weight, p.Weight, "metric %s", m)
		assert.Len(t, k.Edges, 59)
		assert.Len(t, p.Edges, 59)
	}
}
