// File: methods_paths.go
// Role: Path lifecycle & queries: AddPath/ModifyPath/DeletePath/HasPath/Edges.
// Invariant:
//   - Every connection is stored twice, once per endpoint, with identical
//     weights. All writes go through mirror() so the halves never diverge.
// Determinism:
//   - Edges() lists connections by ascending (From, adjacency position).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddPath connects two valid spots with an undirected path by appending a
// half to each adjacency list. No duplicate check is performed: calling it
// twice for the same pair yields parallel paths, and shortest-path queries
// will simply use the cheaper one.
//
// Errors: ErrInvalidSpot, ErrLoopNotAllowed, ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddPath(from, to int, distance, duration int64) error {
	if distance <= 0 || duration <= 0 {
		return fmt.Errorf("%w: distance=%d duration=%d", ErrBadWeight, distance, duration)
	}
	if from == to {
		return fmt.Errorf("%w: spot %d", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validLocked(from) {
		return fmt.Errorf("%w: %d", ErrInvalidSpot, from)
	}
	if !g.validLocked(to) {
		return fmt.Errorf("%w: %d", ErrInvalidSpot, to)
	}

	g.spots[from].Paths = append(g.spots[from].Paths, Path{Target: to, Distance: distance, Duration: duration})
	g.spots[to].Paths = append(g.spots[to].Paths, Path{Target: from, Distance: distance, Duration: duration})
	g.revision++

	return nil
}

// ModifyPath updates the first path between from and to on both sides.
// Omitted weights are left unchanged.
//
// Errors: ErrInvalidSpot (out of range), ErrBadWeight, ErrPathNotFound.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) ModifyPath(from, to int, opts ...PathOption) error {
	var patch pathPatch
	for _, opt := range opts {
		opt(&patch)
	}
	if (patch.distance != nil && *patch.distance <= 0) || (patch.duration != nil && *patch.duration <= 0) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.pairInRangeLocked(from, to); err != nil {
		return err
	}

	found := g.mirror(from, to, func(list []Path, i int) []Path {
		if patch.distance != nil {
			list[i].Distance = *patch.distance
		}
		if patch.duration != nil {
			list[i].Duration = *patch.duration
		}

		return list
	}, true)
	if !found {
		return fmt.Errorf("%w: %d-%d", ErrPathNotFound, from, to)
	}
	g.revision++

	return nil
}

// DeletePath removes every path between from and to from both adjacency
// lists, leaving all other paths untouched.
//
// Errors: ErrInvalidSpot (out of range), ErrPathNotFound.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) DeletePath(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.pairInRangeLocked(from, to); err != nil {
		return err
	}

	found := g.mirror(from, to, func(list []Path, i int) []Path {
		return append(list[:i], list[i+1:]...)
	}, false)
	if !found {
		return fmt.Errorf("%w: %d-%d", ErrPathNotFound, from, to)
	}
	g.revision++

	return nil
}

// HasPath reports whether at least one path connects from and to,
// regardless of tombstones.
//
// Complexity: O(deg(from)).
func (g *Graph) HasPath(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRangeLocked(from) || !g.inRangeLocked(to) {
		return false
	}
	for _, p := range g.spots[from].Paths {
		if p.Target == to {
			return true
		}
	}

	return false
}

// Edges returns each connection between two valid spots once, with
// From < To. Parallel paths appear once per stored pair.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCountLocked())
	for _, s := range g.spots {
		if s.Deleted {
			continue
		}
		for _, p := range s.Paths {
			if p.Target <= s.ID || !g.validLocked(p.Target) {
				continue
			}
			out = append(out, Edge{From: s.ID, To: p.Target, Distance: p.Distance, Duration: p.Duration})
		}
	}

	return out
}

func (g *Graph) pairInRangeLocked(from, to int) error {
	if !g.inRangeLocked(from) {
		return fmt.Errorf("%w: %d", ErrInvalidSpot, from)
	}
	if !g.inRangeLocked(to) {
		return fmt.Errorf("%w: %d", ErrInvalidSpot, to)
	}

	return nil
}

// mirror applies op to the halves of the from-to connection on both sides.
// With firstOnly, op runs on the first matching entry of each list;
// otherwise it runs on every match (op may shrink the list). It reports
// whether any entry matched. Caller holds mu.
func (g *Graph) mirror(from, to int, op func(list []Path, i int) []Path, firstOnly bool) bool {
	a := applyTo(g.spots[from], to, op, firstOnly)
	b := applyTo(g.spots[to], from, op, firstOnly)

	return a || b
}

func applyTo(s *Spot, target int, op func(list []Path, i int) []Path, firstOnly bool) bool {
	found := false
	for i := 0; i < len(s.Paths); {
		if s.Paths[i].Target != target {
			i++
			continue
		}
		found = true
		before := len(s.Paths)
		s.Paths = op(s.Paths, i)
		if firstOnly {
			break
		}
		if len(s.Paths) == before {
			i++
		}
	}

	return found
}
