package portal

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/tourgraph/core"
)

func pairAttrs(from, to string) []attribute.KeyValue {
	return []attribute.KeyValue{attribute.String("from", from), attribute.String("to", to)}
}

// AddPath connects the spots called from and to.
func (s *Service) AddPath(ctx context.Context, from, to string, distance, duration int64) error {
	return s.mutate(ctx, "add_path", pairAttrs(from, to), func(g *core.Graph) error {
		u, v, err := s.resolvePair(from, to)
		if err != nil {
			return err
		}

		return g.AddPath(u, v, distance, duration)
	})
}

// UpdatePath changes the weights of the first path between from and to.
// Nil weights are left unchanged.
func (s *Service) UpdatePath(ctx context.Context, from, to string, distance, duration *int64) error {
	return s.mutate(ctx, "update_path", pairAttrs(from, to), func(g *core.Graph) error {
		u, v, err := s.resolvePair(from, to)
		if err != nil {
			return err
		}
		var opts []core.PathOption
		if distance != nil {
			opts = append(opts, core.WithDistance(*distance))
		}
		if duration != nil {
			opts = append(opts, core.WithDuration(*duration))
		}

		return g.ModifyPath(u, v, opts...)
	})
}

// RemovePath deletes every path between from and to.
func (s *Service) RemovePath(ctx context.Context, from, to string) error {
	return s.mutate(ctx, "remove_path", pairAttrs(from, to), func(g *core.Graph) error {
		u, v, err := s.resolvePair(from, to)
		if err != nil {
			return err
		}

		return g.DeletePath(u, v)
	})
}

// ListPaths returns each path between live spots once.
func (s *Service) ListPaths(ctx context.Context) []PathView {
	_, span := s.tracer.StartSpan(ctx, "portal.list_paths")
	defer endSpan(span, nil)
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := s.graph.Edges()
	out := make([]PathView, 0, len(edges))
	for _, e := range edges {
		names := s.names([]int{e.From, e.To})
		if len(names) != 2 {
			continue
		}
		out = append(out, PathView{From: names[0], To: names[1], Distance: e.Distance, Duration: e.Duration})
	}

	return out
}

// resolvePair maps both names to ids. Caller holds mu.
func (s *Service) resolvePair(from, to string) (int, int, error) {
	u, err := s.resolve(from)
	if err != nil {
		return -1, -1, err
	}
	v, err := s.resolve(to)
	if err != nil {
		return -1, -1, err
	}

	return u, v, nil
}
