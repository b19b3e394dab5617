// File: methods_spots.go
// Role: Spot lifecycle & queries: AddSpot/ModifySpot/DeleteSpot/FindSpotByName,
//       plus snapshot accessors Spot/Spots/AllSpots/Paths/Neighbors.
// Determinism:
//   - Spots() and AllSpots() return spots in ascending id order.
//   - Paths() and Neighbors() preserve adjacency insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
//   - Every returned Spot is a deep copy; callers cannot mutate the arena.

package core

import "fmt"

// AddSpot appends a new spot and returns its id (the next arena index).
//
// Steps:
//  1. Reject an empty name (ErrEmptyName).
//  2. Lock mu; reject a name already used by a non-deleted spot (ErrDuplicateName).
//  3. Append the spot with ID = len(spots) and bump the revision.
//
// Complexity: O(V) for the uniqueness scan.
func (g *Graph) AddSpot(name, description string) (int, error) {
	if name == "" {
		return -1, ErrEmptyName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.findLocked(name); ok {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	id := len(g.spots)
	g.spots = append(g.spots, &Spot{
		ID:          id,
		Name:        name,
		Description: description,
		Paths:       make([]Path, 0),
	})
	g.revision++

	return id, nil
}

// ModifySpot updates the fields supplied through opts in place.
// Renaming keeps names unique among non-deleted spots; renaming a spot to
// its current name is a no-op. Returns ErrInvalidSpot if id is out of range.
//
// Complexity: O(V) when renaming, O(1) otherwise.
func (g *Graph) ModifySpot(id int, opts ...SpotOption) error {
	var patch spotPatch
	for _, opt := range opts {
		opt(&patch)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRangeLocked(id) {
		return fmt.Errorf("%w: %d", ErrInvalidSpot, id)
	}
	s := g.spots[id]

	if patch.name != nil && *patch.name != s.Name {
		if *patch.name == "" {
			return ErrEmptyName
		}
		if other, ok := g.findLocked(*patch.name); ok && other != id {
			return fmt.Errorf("%w: %q", ErrDuplicateName, *patch.name)
		}
		s.Name = *patch.name
	}
	if patch.description != nil {
		s.Description = *patch.description
	}
	g.revision++

	return nil
}

// DeleteSpot soft-deletes the spot by setting its tombstone. Adjacency
// entries that reference id are left in place; traversals skip them.
// Deleting an already deleted spot succeeds without change.
// Returns ErrInvalidSpot if id is out of range.
//
// Complexity: O(1).
func (g *Graph) DeleteSpot(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRangeLocked(id) {
		return fmt.Errorf("%w: %d", ErrInvalidSpot, id)
	}
	if g.spots[id].Deleted {
		return nil
	}
	g.spots[id].Deleted = true
	g.revision++

	return nil
}

// FindSpotByName returns the first non-deleted spot named name, scanning in
// storage order. Returns ErrNameNotFound if none matches.
//
// Complexity: O(V).
func (g *Graph) FindSpotByName(name string) (Spot, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.findLocked(name)
	if !ok {
		return Spot{}, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}

	return g.spots[id].clone(), nil
}

// findLocked returns the id of the first non-deleted spot named name.
func (g *Graph) findLocked(name string) (int, bool) {
	for _, s := range g.spots {
		if !s.Deleted && s.Name == name {
			return s.ID, true
		}
	}

	return -1, false
}

// Spot returns a copy of the valid spot id, or ErrInvalidSpot.
//
// Complexity: O(deg(id)) for the copy.
func (g *Graph) Spot(id int) (Spot, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validLocked(id) {
		return Spot{}, fmt.Errorf("%w: %d", ErrInvalidSpot, id)
	}

	return g.spots[id].clone(), nil
}

// Spots returns copies of all non-deleted spots in ascending id order.
//
// Complexity: O(V + E).
func (g *Graph) Spots() []Spot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Spot, 0, len(g.spots))
	for _, s := range g.spots {
		if !s.Deleted {
			out = append(out, s.clone())
		}
	}

	return out
}

// AllSpots returns copies of every arena slot, tombstones included.
//
// Complexity: O(V + E).
func (g *Graph) AllSpots() []Spot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Spot, len(g.spots))
	for i, s := range g.spots {
		out[i] = s.clone()
	}

	return out
}

// Paths returns a copy of the raw adjacency list of spot id, including
// entries whose target has been deleted. Algorithms use it together with
// IsValid. Returns ErrInvalidSpot if id is out of range or deleted.
//
// Complexity: O(deg(id)).
func (g *Graph) Paths(id int) ([]Path, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validLocked(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpot, id)
	}

	return append([]Path(nil), g.spots[id].Paths...), nil
}

// Neighbors returns the adjacency entries of spot id whose target is valid.
// Parallel paths are returned once each.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Path, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validLocked(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpot, id)
	}

	out := make([]Path, 0, len(g.spots[id].Paths))
	for _, p := range g.spots[id].Paths {
		if g.validLocked(p.Target) {
			out = append(out, p)
		}
	}

	return out, nil
}

// Clear drops every spot and path. The revision keeps counting so caches
// keyed on it never confuse the empty graph with an earlier state.
//
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.spots = make([]*Spot, 0)
	g.revision++
}
