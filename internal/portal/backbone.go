package portal

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/prim_kruskal"
)

// Backbone computes the minimum spanning tree of the live spots under
// metric. method is "kruskal" (default when empty) or "prim"; Prim starts
// at the lowest live id.
func (s *Service) Backbone(ctx context.Context, metric, method string) (view BackboneView, err error) {
	if method == "" {
		method = prim_kruskal.MethodKruskal
	}
	_, span := s.tracer.StartSpan(ctx, "portal.backbone",
		attribute.String("metric", metric), attribute.String("method", method))
	defer func() { s.finishQuery(span, "backbone", err == nil, err) }()

	m, err := core.ParseMetric(metric)
	if err != nil {
		return BackboneView{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res, err := prim_kruskal.Compute(s.graph, m, prim_kruskal.WithMethod(method))
	if err != nil {
		return BackboneView{}, err
	}

	view = BackboneView{Metric: m.String(), Method: method, Weight: res.Weight, Paths: make([]PathView, 0, len(res.Edges))}
	for _, e := range res.Edges {
		names := s.names([]int{e.From, e.To})
		view.Paths = append(view.Paths, PathView{From: names[0], To: names[1], Distance: e.Distance, Duration: e.Duration})
	}

	return view, nil
}
