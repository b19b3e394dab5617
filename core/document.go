// File: document.go
// Role: Field-for-field snapshot of a Graph for persistence adapters, and the
//       validating restore path back into a live Graph.
// Determinism:
//   - Document() lists spots in id order and paths in adjacency order, so
//     Document(FromDocument(d)) == d for every valid d.
// Concurrency:
//   - Document() reads under mu read lock; FromDocument builds a fresh Graph.

package core

import "fmt"

// Document is the persisted shape of a Graph. Tombstoned spots and every
// mirrored path half are included so a round trip restores the exact arena.
type Document struct {
	Revision uint64       `json:"revision,omitempty" yaml:"revision,omitempty" msgpack:"revision,omitempty"`
	Spots    []SpotRecord `json:"spots" yaml:"spots" msgpack:"spots"`
}

// SpotRecord is the persisted form of a Spot.
type SpotRecord struct {
	ID          int          `json:"id" yaml:"id" msgpack:"id"`
	Name        string       `json:"name" yaml:"name" msgpack:"name"`
	Description string       `json:"description" yaml:"description" msgpack:"description"`
	Paths       []PathRecord `json:"paths" yaml:"paths" msgpack:"paths"`
	Deleted     bool         `json:"deleted" yaml:"deleted" msgpack:"deleted"`
}

// PathRecord is the persisted form of a Path.
type PathRecord struct {
	TargetID int   `json:"target_id" yaml:"target_id" msgpack:"target_id"`
	Distance int64 `json:"distance" yaml:"distance" msgpack:"distance"`
	Duration int64 `json:"duration" yaml:"duration" msgpack:"duration"`
}

// Document returns a deep snapshot of g.
//
// Complexity: O(V + E).
func (g *Graph) Document() Document {
	g.mu.RLock()
	defer g.mu.RUnlock()

	doc := Document{
		Revision: g.revision,
		Spots:    make([]SpotRecord, len(g.spots)),
	}
	for i, s := range g.spots {
		rec := SpotRecord{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Deleted:     s.Deleted,
			Paths:       make([]PathRecord, len(s.Paths)),
		}
		for j, p := range s.Paths {
			rec.Paths[j] = PathRecord{TargetID: p.Target, Distance: p.Distance, Duration: p.Duration}
		}
		doc.Spots[i] = rec
	}

	return doc
}

// FromDocument rebuilds a Graph from doc, verifying the invariants that
// the mutation API maintains:
//  1. spot ids are dense and equal to their position;
//  2. non-deleted names are unique and non-empty;
//  3. every path targets an existing slot, is not a loop, has positive
//     weights, and has a mirror with identical weights on the other side.
//
// Any violation returns ErrCorruptDocument wrapped with the offending detail.
//
// Complexity: O(V + E) expected.
func FromDocument(doc Document) (*Graph, error) {
	n := len(doc.Spots)
	g := &Graph{spots: make([]*Spot, n), revision: doc.Revision}
	names := make(map[string]int, n)

	for i, rec := range doc.Spots {
		if rec.ID != i {
			return nil, fmt.Errorf("%w: spot at position %d has id %d", ErrCorruptDocument, i, rec.ID)
		}
		if !rec.Deleted {
			if rec.Name == "" {
				return nil, fmt.Errorf("%w: spot %d has an empty name", ErrCorruptDocument, i)
			}
			if prev, dup := names[rec.Name]; dup {
				return nil, fmt.Errorf("%w: spots %d and %d share name %q", ErrCorruptDocument, prev, i, rec.Name)
			}
			names[rec.Name] = i
		}

		s := &Spot{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Deleted:     rec.Deleted,
			Paths:       make([]Path, len(rec.Paths)),
		}
		for j, p := range rec.Paths {
			if p.TargetID < 0 || p.TargetID >= n {
				return nil, fmt.Errorf("%w: spot %d path targets missing spot %d", ErrCorruptDocument, i, p.TargetID)
			}
			if p.TargetID == i {
				return nil, fmt.Errorf("%w: spot %d has a self-loop", ErrCorruptDocument, i)
			}
			if p.Distance <= 0 || p.Duration <= 0 {
				return nil, fmt.Errorf("%w: spot %d path to %d has non-positive weight", ErrCorruptDocument, i, p.TargetID)
			}
			s.Paths[j] = Path{Target: p.TargetID, Distance: p.Distance, Duration: p.Duration}
		}
		g.spots[i] = s
	}

	if err := checkSymmetry(g.spots); err != nil {
		return nil, err
	}

	return g, nil
}

// halfKey identifies one directed half with its weights.
type halfKey struct {
	from, to           int
	distance, duration int64
}

// checkSymmetry verifies that the multiset of halves u->v equals the
// multiset of halves v->u for every pair.
func checkSymmetry(spots []*Spot) error {
	count := make(map[halfKey]int)
	for _, s := range spots {
		for _, p := range s.Paths {
			count[halfKey{s.ID, p.Target, p.Distance, p.Duration}]++
		}
	}
	for k, c := range count {
		mirrorKey := halfKey{k.to, k.from, k.distance, k.duration}
		if count[mirrorKey] != c {
			return fmt.Errorf("%w: path %d->%d (distance=%d duration=%d) has no matching mirror",
				ErrCorruptDocument, k.from, k.to, k.distance, k.duration)
		}
	}

	return nil
}
