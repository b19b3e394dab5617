package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/tourgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to AllPaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrInvalidSpot aliases core.ErrInvalidSpot for endpoint validation.
	ErrInvalidSpot = core.ErrInvalidSpot
)

// Option configures optional behavior of AllPaths.
type Option func(*Options)

// Options holds configurable parameters for route enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, caps the number of paths in a route.
	// Default is -1 (no limit).
	MaxDepth int

	// Limit, if positive, stops the search after that many routes.
	// Default is 0 (no limit).
	Limit int
}

// DefaultOptions returns Options with a background context and no caps.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		Limit:    0,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that ignores routes longer than limit paths.
// A limit of 0 only admits the trivial start == target route.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithLimit returns an Option that stops the search after n routes.
// Non-positive n means unlimited.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// Route is one simple path from start to target.
type Route struct {
	// Distance is the summed path distance in meters.
	Distance int64

	// Duration is the summed path duration in minutes.
	Duration int64

	// Spots lists spot ids from start to target inclusive.
	Spots []int
}
