// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and counts.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	// Nodes counts non-deleted spots.
	Nodes int

	// Edges counts undirected connections (adjacency halves / 2).
	Edges int

	// Slots counts every arena slot, tombstones included.
	Slots int

	// Deleted counts soft-deleted spots.
	Deleted int

	// Revision is the mutation counter at snapshot time.
	Revision uint64
}

// IsValid reports whether id addresses an existing, non-deleted spot.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Range-check id and inspect the tombstone.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) IsValid(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.validLocked(id)
}

// validLocked is IsValid for callers already holding g.mu.
func (g *Graph) validLocked(id int) bool {
	return id >= 0 && id < len(g.spots) && !g.spots[id].Deleted
}

// inRangeLocked reports whether id addresses a slot, deleted or not.
func (g *Graph) inRangeLocked(id int) bool {
	return id >= 0 && id < len(g.spots)
}

// Len returns the number of arena slots, including soft-deleted spots.
// Valid ids are always in [0, Len()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.spots)
}

// NodeCount returns the number of non-deleted spots.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, s := range g.spots {
		if !s.Deleted {
			n++
		}
	}

	return n
}

// EdgeCount returns the number of undirected connections, derived as the
// summed length of every adjacency list halved. Paths attached to deleted
// spots are still counted because they remain physically stored.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCountLocked()
}

func (g *Graph) edgeCountLocked() int {
	total := 0
	for _, s := range g.spots {
		total += len(s.Paths)
	}

	return total / 2
}

// Revision returns the mutation counter. It starts at zero for a new graph
// and is restored from persisted documents, so two snapshots with the same
// revision describe the same state.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Revision() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.revision
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock once so all counters describe one state.
//   - Stage 2: Single pass over the arena.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Slots:    len(g.spots),
		Edges:    g.edgeCountLocked(),
		Revision: g.revision,
	}
	for _, s := range g.spots {
		if s.Deleted {
			st.Deleted++
		} else {
			st.Nodes++
		}
	}

	return st
}
