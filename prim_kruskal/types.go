package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tourgraph/core"
)

var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("prim_kruskal: graph is nil")

	// ErrDisconnected indicates that no spanning tree covers every live spot,
	// including the empty graph.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates a method other than MethodPrim or MethodKruskal.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

	// ErrInvalidSpot aliases core.ErrInvalidSpot for a bad Prim root.
	ErrInvalidSpot = core.ErrInvalidSpot

	// ErrInvalidMetric aliases core.ErrInvalidMetric.
	ErrInvalidMetric = core.ErrInvalidMetric
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all paths and union-find).
const MethodKruskal = "kruskal"

// NoRoot lets Prim start at the lowest valid spot id.
const NoRoot = -1

// Result is a spanning tree. Edges have From < To and are listed in the
// order the algorithm accepted them.
type Result struct {
	Weight int64
	Edges  []core.Edge
}

// Options configures Compute.
type Options struct {
	// Method is MethodKruskal or MethodPrim.
	Method string

	// Root is the Prim start spot; NoRoot picks the lowest valid id.
	// Unused by Kruskal.
	Root int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Kruskal with no root.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Root: NoRoot}
}

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRoot sets the Prim start spot.
func WithRoot(id int) Option {
	return func(o *Options) {
		o.Root = id
	}
}

// Compute runs the configured algorithm.
func Compute(g *core.Graph, metric core.Metric, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g, metric)
	case MethodPrim:
		return Prim(g, o.Root, metric)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate checks the graph and metric shared by both algorithms and
// returns the live spots.
func validate(g *core.Graph, metric core.Metric) ([]core.Spot, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := metric.Validate(); err != nil {
		return nil, err
	}
	spots := g.Spots()
	if len(spots) == 0 {
		return nil, ErrDisconnected
	}

	return spots, nil
}
