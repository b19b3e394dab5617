// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for tourgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep fixture construction out of test bodies (no magic numbers).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourgraph/core"
)

// Common spot names used across core tests.
const (
	SpotGate  = "Gate"
	SpotLake  = "Lake"
	SpotPeak  = "Peak"
	SpotTower = "Tower"
)

// Common weights used across core tests.
const (
	Dist10 int64 = 10
	Dist15 int64 = 15
	Dist30 int64 = 30
	Dur5   int64 = 5
	Dur7   int64 = 7
	Dur20  int64 = 20
)

// Common concurrency sizes used across core tests.
const (
	NWriters = 8
	NReaders = 16
	NRounds  = 50
)

// newTriangle builds Gate(0)-Lake(1)-Peak(2) with
//
//	Gate-Lake  (10, 5)
//	Lake-Peak  (10, 5)
//	Gate-Peak  (30, 20)
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, name := range []string{SpotGate, SpotLake, SpotPeak} {
		_, err := g.AddSpot(name, name+" description")
		require.NoError(t, err)
	}
	require.NoError(t, g.AddPath(0, 1, Dist10, Dur5))
	require.NoError(t, g.AddPath(1, 2, Dist10, Dur5))
	require.NoError(t, g.AddPath(0, 2, Dist30, Dur20))

	return g
}

// targets extracts adjacency targets in order.
func targets(paths []core.Path) []int {
	out := make([]int, len(paths))
	for i, p := range paths {
		out[i] = p.Target
	}

	return out
}
