package portal

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/tourgraph/builder"
	"github.com/katalvlaran/tourgraph/core"
)

// AddSpot creates a spot and returns its view.
func (s *Service) AddSpot(ctx context.Context, name, description string) (SpotView, error) {
	var view SpotView
	err := s.mutate(ctx, "add_spot", []attribute.KeyValue{attribute.String("spot", name)}, func(g *core.Graph) error {
		id, err := g.AddSpot(name, description)
		if err != nil {
			return err
		}
		view = SpotView{ID: id, Name: name, Description: description, Neighbors: []NeighborView{}}

		return nil
	})

	return view, err
}

// UpdateSpot renames and/or re-describes the spot called name. Nil fields
// are left unchanged.
func (s *Service) UpdateSpot(ctx context.Context, name string, newName, newDescription *string) (SpotView, error) {
	var view SpotView
	err := s.mutate(ctx, "update_spot", []attribute.KeyValue{attribute.String("spot", name)}, func(g *core.Graph) error {
		id, err := s.resolve(name)
		if err != nil {
			return err
		}
		var opts []core.SpotOption
		if newName != nil {
			opts = append(opts, core.WithName(*newName))
		}
		if newDescription != nil {
			opts = append(opts, core.WithDescription(*newDescription))
		}
		if err := g.ModifySpot(id, opts...); err != nil {
			return err
		}
		view, err = s.viewLocked(id)

		return err
	})

	return view, err
}

// RemoveSpot soft-deletes the spot called name.
func (s *Service) RemoveSpot(ctx context.Context, name string) error {
	return s.mutate(ctx, "remove_spot", []attribute.KeyValue{attribute.String("spot", name)}, func(g *core.Graph) error {
		id, err := s.resolve(name)
		if err != nil {
			return err
		}

		return g.DeleteSpot(id)
	})
}

// GetSpot returns the spot called name with its walkable neighbours.
func (s *Service) GetSpot(ctx context.Context, name string) (SpotView, error) {
	_, span := s.tracer.StartSpan(ctx, "portal.get_spot", attribute.String("spot", name))
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, err := s.resolve(name)
	if err != nil {
		endSpan(span, err)
		return SpotView{}, err
	}
	view, err := s.viewLocked(id)
	endSpan(span, err)

	return view, err
}

// ListSpots returns every live spot in id order.
func (s *Service) ListSpots(ctx context.Context) []SpotView {
	_, span := s.tracer.StartSpan(ctx, "portal.list_spots")
	defer endSpan(span, nil)
	s.mu.RLock()
	defer s.mu.RUnlock()

	spots := s.graph.Spots()
	out := make([]SpotView, 0, len(spots))
	for _, sp := range spots {
		if v, err := s.viewLocked(sp.ID); err == nil {
			out = append(out, v)
		}
	}

	return out
}

// Stats summarises the catalog.
func (s *Service) Stats(context.Context) StatsView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.graph.Stats()

	return StatsView{
		Spots:    st.Nodes,
		Paths:    len(s.graph.Edges()),
		Deleted:  st.Deleted,
		Slots:    st.Slots,
		Revision: st.Revision,
	}
}

// Seed replaces the whole graph with the seeded demo area.
func (s *Service) Seed(ctx context.Context, seed int64) error {
	return s.mutate(ctx, "seed", []attribute.KeyValue{attribute.Int64("seed", seed)}, func(g *core.Graph) error {
		g.Clear()

		return builder.Demo(g, builder.WithSeed(seed))
	})
}

// SeedIfEmpty seeds the demo area only when the graph has no slots yet.
// Emptiness is checked under the write lock, so a concurrent mutation is
// never wiped. It reports whether seeding happened.
func (s *Service) SeedIfEmpty(ctx context.Context, seed int64) (bool, error) {
	s.mu.RLock()
	empty := s.graph.Len() == 0
	s.mu.RUnlock()
	if !empty {
		return false, nil
	}

	seeded := false
	err := s.mutate(ctx, "seed", []attribute.KeyValue{attribute.Int64("seed", seed)}, func(g *core.Graph) error {
		if g.Len() != 0 {
			return nil
		}
		seeded = true

		return builder.Demo(g, builder.WithSeed(seed))
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}

// viewLocked builds the SpotView for a valid id. Caller holds mu.
func (s *Service) viewLocked(id int) (SpotView, error) {
	spot, err := s.graph.Spot(id)
	if err != nil {
		return SpotView{}, err
	}
	neighbors, err := s.graph.Neighbors(id)
	if err != nil {
		return SpotView{}, err
	}

	view := SpotView{
		ID:          spot.ID,
		Name:        spot.Name,
		Description: spot.Description,
		Neighbors:   make([]NeighborView, 0, len(neighbors)),
	}
	for _, p := range neighbors {
		target, err := s.graph.Spot(p.Target)
		if err != nil {
			continue
		}
		view.Neighbors = append(view.Neighbors, NeighborView{
			Name:     target.Name,
			Distance: p.Distance,
			Duration: p.Duration,
		})
	}

	return view, nil
}
