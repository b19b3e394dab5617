// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/dijkstra"
	"github.com/katalvlaran/tourgraph/matrix"
)

// triangle returns Gate(0)-Lake(1) 10/5, Lake-Peak(2) 15/7, Gate-Peak 30/10
// and an isolated Tower(3).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []string{"Gate", "Lake", "Peak", "Tower"} {
		_, err := g.AddSpot(n, "")
		require.NoError(t, err)
	}
	require.NoError(t, g.AddPath(0, 1, 10, 5))
	require.NoError(t, g.AddPath(1, 2, 15, 7))
	require.NoError(t, g.AddPath(0, 2, 30, 10))

	return g
}

func TestDistances_Triangle(t *testing.T) {
	tab, err := matrix.Distances(triangle(t), core.MetricDistance)
	require.NoError(t, err)
	require.Equal(t, 4, tab.Size())

	row, err := tab.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 10, 25, matrix.Unreachable}, row)

	v, err := tab.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(25), v, "chart is symmetric")

	dur, err := matrix.Distances(triangle(t), core.MetricDuration)
	require.NoError(t, err)
	v, err = dur.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)
}

func TestDistances_DeletedAndParallel(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddPath(0, 1, 4, 50))
	require.NoError(t, g.DeleteSpot(3))

	tab, err := matrix.Distances(g, core.MetricDistance)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, tab.IDs)
	assert.Equal(t, -1, tab.Index(3))
	assert.Equal(t, 2, tab.Index(2))

	v, err := tab.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(19), v)
}

func TestDistances_Errors(t *testing.T) {
	_, err := matrix.Distances(nil, core.MetricDistance)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	_, err = matrix.Distances(core.NewGraph(), core.Metric("altitude"))
	assert.ErrorIs(t, err, matrix.ErrInvalidMetric)

	tab, err := matrix.Distances(core.NewGraph(), core.MetricDistance)
	require.NoError(t, err)
	assert.Zero(t, tab.Size())
	_, err = tab.At(0, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = tab.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDistances_MatchesDijkstra cross-checks every pair on a random area.
func TestDistances_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := core.NewGraph()
	const n = 25
	for i := 0; i < n; i++ {
		_, err := g.AddSpot(string(rune('A'+i)), "")
		require.NoError(t, err)
	}
	for i := 0; i < 60; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		require.NoError(t, g.AddPath(u, v, int64(1+rng.Intn(500)), int64(1+rng.Intn(30))))
	}

	tab, err := matrix.Distances(g, core.MetricDuration)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res, err := dijkstra.ShortestPath(g, i, j, core.MetricDuration)
			require.NoError(t, err)
			got, err := tab.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, res.Weight, got, "%d->%d", i, j)
		}
	}
}
