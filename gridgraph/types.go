package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrBadOption indicates a non-positive threshold, cell size or time unit.
	ErrBadOption = errors.New("gridgraph: invalid option")

	// ErrGraphNotEmpty indicates Populate was given a graph that already has spots.
	ErrGraphNotEmpty = errors.New("gridgraph: target graph is not empty")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// ParseConnectivity maps 4 or 8 to a Connectivity.
func ParseConnectivity(n int) (Connectivity, error) {
	switch n {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	default:
		return Conn4, fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrBadOption, n)
	}
}

// Defaults applied by DefaultOptions.
const (
	DefaultLandThreshold  = 1
	DefaultCellSize       = int64(100)
	DefaultMinutesPerUnit = int64(2)
)

// Options contains tunable parameters for grid import.
type Options struct {
	// LandThreshold is the minimum value of a walkable cell. Must be ≥ 1.
	LandThreshold int

	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// CellSize is the edge length of one cell in meters.
	CellSize int64

	// MinutesPerUnit converts terrain cost into walking minutes.
	MinutesPerUnit int64

	// Name returns the spot name for cell (x, y). Default "R<y>C<x>".
	Name func(x, y int) string
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns threshold 1, Conn4, 100 m cells and 2 minutes per
// terrain unit.
func DefaultOptions() Options {
	return Options{
		LandThreshold:  DefaultLandThreshold,
		Conn:           Conn4,
		CellSize:       DefaultCellSize,
		MinutesPerUnit: DefaultMinutesPerUnit,
		Name:           func(x, y int) string { return fmt.Sprintf("R%dC%d", y, x) },
	}
}

// WithConnectivity sets Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithLandThreshold sets the minimum walkable value.
func WithLandThreshold(t int) Option {
	return func(o *Options) { o.LandThreshold = t }
}

// WithCellSize sets the cell edge length in meters.
func WithCellSize(m int64) Option {
	return func(o *Options) { o.CellSize = m }
}

// WithMinutesPerUnit sets the minutes per terrain-cost unit.
func WithMinutesPerUnit(m int64) Option {
	return func(o *Options) { o.MinutesPerUnit = m }
}

// WithNamer overrides spot naming. A nil fn is ignored.
func WithNamer(fn func(x, y int) string) Option {
	return func(o *Options) {
		if fn != nil {
			o.Name = fn
		}
	}
}

func (o Options) validate() error {
	switch {
	case o.LandThreshold < 1:
		return fmt.Errorf("%w: land threshold %d < 1", ErrBadOption, o.LandThreshold)
	case o.CellSize < 1:
		return fmt.Errorf("%w: cell size %d < 1", ErrBadOption, o.CellSize)
	case o.MinutesPerUnit < 1:
		return fmt.Errorf("%w: minutes per unit %d < 1", ErrBadOption, o.MinutesPerUnit)
	case o.Conn != Conn4 && o.Conn != Conn8:
		return fmt.Errorf("%w: connectivity %d", ErrBadOption, o.Conn)
	}

	return nil
}

// GridGraph treats a 2D integer grid as a terrain map. It is immutable once
// built. CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	opts          Options

	// neighborOffsets lists all neighbours; forwardOffsets only those that
	// come later in row-major order, so each pair is visited once.
	neighborOffsets [][2]int
	forwardOffsets  [][2]int
}
