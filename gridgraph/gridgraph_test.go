package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/dijkstra"
	"github.com/katalvlaran/tourgraph/gridgraph"
)

func TestNewGridGraph_Errors(t *testing.T) {
	_, err := gridgraph.NewGridGraph(nil)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewGridGraph([][]int{{}})
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewGridGraph([][]int{{1, 1}, {1}})
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	for _, opt := range []gridgraph.Option{
		gridgraph.WithLandThreshold(0),
		gridgraph.WithCellSize(0),
		gridgraph.WithMinutesPerUnit(-1),
		gridgraph.WithConnectivity(gridgraph.Connectivity(5)),
	} {
		_, err = gridgraph.NewGridGraph([][]int{{1}}, opt)
		assert.ErrorIs(t, err, gridgraph.ErrBadOption)
	}
}

func TestNewGridGraph_CopiesInput(t *testing.T) {
	in := [][]int{{1, 2}}
	gg, err := gridgraph.NewGridGraph(in)
	require.NoError(t, err)
	in[0][0] = 0

	assert.True(t, gg.Walkable(0, 0))
	assert.False(t, gg.Walkable(2, 0))
	assert.False(t, gg.InBounds(-1, 0))
}

func TestParseConnectivity(t *testing.T) {
	c, err := gridgraph.ParseConnectivity(8)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn8, c)

	_, err = gridgraph.ParseConnectivity(6)
	assert.ErrorIs(t, err, gridgraph.ErrBadOption)
}

func TestPopulate_Conn4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 1, 0},
		{0, 3, 1},
	})
	require.NoError(t, err)

	g := core.NewGraph()
	ids, err := gg.Populate(g)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, -1, -1, 2, 3}, ids)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	want := []core.Edge{
		{From: 0, To: 1, Distance: 100, Duration: 2},
		{From: 1, To: 2, Distance: 100, Duration: 6},
		{From: 2, To: 3, Distance: 100, Duration: 6},
	}
	assert.Equal(t, want, g.Edges())

	s, err := g.FindSpotByName("R1C1")
	require.NoError(t, err)
	assert.Equal(t, "Terrain cost 3", s.Description)
}

func TestPopulate_Conn8Diagonals(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0},
		{0, 1},
	}, gridgraph.WithConnectivity(gridgraph.Conn8), gridgraph.WithCellSize(10), gridgraph.WithMinutesPerUnit(5))
	require.NoError(t, err)

	g := core.NewGraph()
	_, err = gg.Populate(g)
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{{From: 0, To: 1, Distance: 14, Duration: 5}}, g.Edges())
}

func TestPopulate_Conn8FullBlock(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, gridgraph.WithConnectivity(gridgraph.Conn8))
	require.NoError(t, err)

	g := core.NewGraph()
	_, err = gg.Populate(g)
	require.NoError(t, err)

	// 12 orthogonal + 8 diagonal
	assert.Equal(t, 20, g.EdgeCount())

	res, err := dijkstra.ShortestPath(g, 0, 8, core.MetricDistance)
	require.NoError(t, err)
	assert.Equal(t, int64(282), res.Weight)
}

func TestPopulate_Threshold(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 2, 2}}, gridgraph.WithLandThreshold(2))
	require.NoError(t, err)

	g := core.NewGraph()
	ids, err := gg.Populate(g)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1}, ids)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestPopulate_NonEmpty(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1}})
	require.NoError(t, err)

	g := core.NewGraph()
	_, err = g.AddSpot("Gate", "")
	require.NoError(t, err)

	_, err = gg.Populate(g)
	assert.ErrorIs(t, err, gridgraph.ErrGraphNotEmpty)
}

func TestPopulate_NamerCollision(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}}, gridgraph.WithNamer(func(x, y int) string { return "Same" }))
	require.NoError(t, err)

	_, err = gg.Populate(core.NewGraph())
	assert.ErrorIs(t, err, core.ErrDuplicateName)
}

func TestConnectedComponents(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
	}

	gg4, err := gridgraph.NewGridGraph(grid)
	require.NoError(t, err)
	assert.Len(t, gg4.ConnectedComponents(), 5)

	gg8, err := gridgraph.NewGridGraph(grid, gridgraph.WithConnectivity(gridgraph.Conn8))
	require.NoError(t, err)
	comps := gg8.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Equal(t, []int{0, 4, 2, 8, 6}, comps[0])

	x, y := gg8.Coordinate(7)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
}
