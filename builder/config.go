// SPDX-License-Identifier: MIT
// Package: tourgraph/builder
//
// config.go: internal configuration and deterministic defaults.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultNames are the demo spots, in id order.
var DefaultNames = []string{
	"Visitor Center",
	"Admin Building",
	"Substation",
	"Small Substation",
	"Barracks",
	"Cement Plant",
	"Dam Crest",
	"Construction Site",
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultEdges       = 15
	DefaultSeed        = int64(1)
	defaultDistanceMin = int64(100)
	defaultDistanceMax = int64(1500)
	defaultDurationMin = int64(5)
	defaultDurationMax = int64(25)
)

// weightRange is a closed interval [lo, hi].
type weightRange struct {
	lo, hi int64
}

func (r weightRange) validate(label string) error {
	if r.lo <= 0 || r.hi < r.lo {
		return fmt.Errorf("%w: %s [%d, %d]", ErrBadRange, label, r.lo, r.hi)
	}

	return nil
}

// draw returns a uniform value in [lo, hi].
func (r weightRange) draw(rng *rand.Rand) int64 {
	return r.lo + rng.Int63n(r.hi-r.lo+1)
}

// demoConfig aggregates all knobs used by Demo.
type demoConfig struct {
	rng      *rand.Rand
	names    []string
	edges    int
	distance weightRange
	duration weightRange
}

// newDemoConfig applies opts over the defaults, later options overriding
// earlier ones.
func newDemoConfig(opts ...Option) demoConfig {
	cfg := demoConfig{
		rng:      rand.New(rand.NewSource(DefaultSeed)),
		names:    DefaultNames,
		edges:    DefaultEdges,
		distance: weightRange{lo: defaultDistanceMin, hi: defaultDistanceMax},
		duration: weightRange{lo: defaultDurationMin, hi: defaultDurationMax},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
