package portal

import (
	"context"

	"github.com/katalvlaran/tourgraph/flow"
)

// Trails reports how many routes between two named spots share no path,
// and which paths form the narrowest cut between them.
func (s *Service) Trails(ctx context.Context, from, to string) (view TrailsView, err error) {
	ctx, span := s.tracer.StartSpan(ctx, "portal.trails", pairAttrs(from, to)...)
	defer func() { s.finishQuery(span, "trails", view.Count > 0, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, v, err := s.resolvePair(from, to)
	if err != nil {
		return TrailsView{}, err
	}
	res, err := flow.Trails(s.graph, u, v, flow.WithContext(ctx))
	if err != nil {
		return TrailsView{}, err
	}

	view = TrailsView{
		From:       from,
		To:         to,
		Count:      res.Count,
		Bottleneck: res.Bottleneck(),
		Critical:   make([]PathView, 0, len(res.Cut)),
	}
	for _, e := range res.Cut {
		names := s.names([]int{e.From, e.To})
		view.Critical = append(view.Critical, PathView{From: names[0], To: names[1], Distance: e.Distance, Duration: e.Duration})
	}

	return view, nil
}
