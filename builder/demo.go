// SPDX-License-Identifier: MIT
// Package: tourgraph/builder
//
// demo.go: Demo constructor.
//
// Contract:
//   • g must have no arena slots (else ErrGraphNotEmpty).
//   • Spots are added in name order; ids are 0..N-1.
//   • Each drawn pair {u,v} is kept only if not drawn before, so exactly M
//     distinct undirected paths are created.
//
// Complexity:
//   • Expected O(N + M) draws while M is well below N·(N-1)/2; rejection
//     sampling slows down as M approaches the maximum.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tourgraph/core"
)

const methodDemo = "Demo"

// pairKey is an unordered spot pair with a < b.
type pairKey struct{ a, b int }

// Demo fills the empty graph g with the configured demo area.
func Demo(g *core.Graph, opts ...Option) error {
	cfg := newDemoConfig(opts...)

	if g.Len() != 0 {
		return fmt.Errorf("%s: %d slots present: %w", methodDemo, g.Len(), ErrGraphNotEmpty)
	}
	n := len(cfg.names)
	if cfg.edges > 0 && n < 2 {
		return fmt.Errorf("%s: n=%d: %w", methodDemo, n, ErrTooFewSpots)
	}
	if maxEdges := n * (n - 1) / 2; cfg.edges > maxEdges {
		return fmt.Errorf("%s: m=%d > max=%d: %w", methodDemo, cfg.edges, maxEdges, ErrTooManyEdges)
	}
	if err := cfg.distance.validate("distance"); err != nil {
		return fmt.Errorf("%s: %w", methodDemo, err)
	}
	if err := cfg.duration.validate("duration"); err != nil {
		return fmt.Errorf("%s: %w", methodDemo, err)
	}

	for _, name := range cfg.names {
		if _, err := g.AddSpot(name, fmt.Sprintf("Details about %s", name)); err != nil {
			return fmt.Errorf("%s: AddSpot(%q): %w", methodDemo, name, err)
		}
	}

	drawn := make(map[pairKey]struct{}, cfg.edges)
	for len(drawn) < cfg.edges {
		u := cfg.rng.Intn(n)
		v := cfg.rng.Intn(n - 1)
		if v >= u {
			v++ // sample two distinct ids
		}
		key := pairKey{a: min(u, v), b: max(u, v)}
		if _, dup := drawn[key]; dup {
			continue
		}
		drawn[key] = struct{}{}

		dist := cfg.distance.draw(cfg.rng)
		dur := cfg.duration.draw(cfg.rng)
		if err := g.AddPath(u, v, dist, dur); err != nil {
			return fmt.Errorf("%s: AddPath(%d,%d): %w", methodDemo, u, v, err)
		}
	}

	return nil
}
