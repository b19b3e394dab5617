package flow

import (
	"context"
	"errors"

	"github.com/katalvlaran/tourgraph/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrInvalidSpot aliases core.ErrInvalidSpot for endpoint validation.
	ErrInvalidSpot = core.ErrInvalidSpot

	// ErrSameEndpoints is returned when source equals sink.
	ErrSameEndpoints = errors.New("flow: source and sink are the same spot")
)

// Result is the outcome of Trails.
//
// Count is the number of path-disjoint routes. Cut lists Count paths,
// From < To, whose removal disconnects sink from source; empty when Count
// is zero.
type Result struct {
	Count int
	Cut   []core.Edge
}

// Bottleneck reports whether a single path closure separates the endpoints.
func (r Result) Bottleneck() bool { return r.Count == 1 }

// Options configures a run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// arc is one direction of an undirected path in the residual network.
// rev indexes the opposite arc in adj[to].
type arc struct {
	to  int
	rev int
	cap int64
}
