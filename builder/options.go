// SPDX-License-Identifier: MIT
// Package: tourgraph/builder
//
// options.go: functional options for Demo.
//
// Contract:
//   • Options are functional (type Option func(*demoConfig)).
//   • Option constructors PANIC on meaningless inputs (nil, negative).
//     Range consistency is checked by Demo and reported as ErrBadRange.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes Demo by mutating a demoConfig before construction.
type Option func(*demoConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *demoConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *demoConfig) {
		c.rng = r
	}
}

// WithNames replaces the spot names. Ids follow slice order.
// Panics on an empty slice.
func WithNames(names ...string) Option {
	if len(names) == 0 {
		panic("builder: WithNames()")
	}
	cp := append([]string(nil), names...)
	return func(c *demoConfig) {
		c.names = cp
	}
}

// WithEdges sets the number of distinct paths to draw. Panics if m < 0.
func WithEdges(m int) Option {
	if m < 0 {
		panic("builder: WithEdges(m<0)")
	}
	return func(c *demoConfig) {
		c.edges = m
	}
}

// WithDistanceRange sets the closed distance range in meters.
func WithDistanceRange(lo, hi int64) Option {
	return func(c *demoConfig) {
		c.distance = weightRange{lo: lo, hi: hi}
	}
}

// WithDurationRange sets the closed duration range in minutes.
func WithDurationRange(lo, hi int64) Option {
	return func(c *demoConfig) {
		c.duration = weightRange{lo: lo, hi: hi}
	}
}
