package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/tourgraph/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadOption.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts ...Option) (*GridGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	gg := &GridGraph{Width: w, Height: h, CellValues: cells, opts: o}
	if o.Conn == Conn8 {
		gg.neighborOffsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
		gg.forwardOffsets = [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	} else {
		gg.neighborOffsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
		gg.forwardOffsets = [][2]int{{1, 0}, {0, 1}}
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is in bounds and at or above the threshold.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.opts.LandThreshold
}

// Populate adds the walkable cells of gg to the empty graph g and returns
// the spot id of every cell in row-major order (-1 for impassable cells).
//
// Steps:
//  1. Reject a graph that already has slots (ErrGraphNotEmpty).
//  2. Add one spot per walkable cell, row by row.
//  3. For each walkable cell, connect it to each walkable forward neighbour.
//
// Complexity: O(W×H×d).
func (gg *GridGraph) Populate(g *core.Graph) ([]int, error) {
	if g.Len() != 0 {
		return nil, ErrGraphNotEmpty
	}

	ids := make([]int, gg.Width*gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i := gg.index(x, y)
			ids[i] = -1
			if !gg.Walkable(x, y) {
				continue
			}
			id, err := g.AddSpot(gg.opts.Name(x, y), fmt.Sprintf("Terrain cost %d", gg.CellValues[y][x]))
			if err != nil {
				return nil, fmt.Errorf("gridgraph: cell (%d,%d): %w", x, y, err)
			}
			ids[i] = id
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			for _, d := range gg.forwardOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Walkable(nx, ny) {
					continue
				}
				dist, dur := gg.weights(x, y, nx, ny, d[0] != 0 && d[1] != 0)
				if err := g.AddPath(ids[gg.index(x, y)], ids[gg.index(nx, ny)], dist, dur); err != nil {
					return nil, fmt.Errorf("gridgraph: path (%d,%d)-(%d,%d): %w", x, y, nx, ny, err)
				}
			}
		}
	}

	return ids, nil
}

// weights returns the distance and duration of the step between two
// neighbouring walkable cells.
func (gg *GridGraph) weights(x, y, nx, ny int, diagonal bool) (int64, int64) {
	dist := gg.opts.CellSize
	if diagonal {
		dist = (gg.opts.CellSize*1414 + 500) / 1000
	}
	cost := gg.CellValues[y][x]
	if c := gg.CellValues[ny][nx]; c > cost {
		cost = c
	}

	return dist, int64(cost) * gg.opts.MinutesPerUnit
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
