package portal

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tourgraph/bfs"
	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/dfs"
	"github.com/katalvlaran/tourgraph/dijkstra"
	"github.com/katalvlaran/tourgraph/internal/observability"
	"github.com/katalvlaran/tourgraph/tsp"
)

// ShortestPath finds the cheapest route between two named spots.
// Unreachable is reported through RouteView.Reachable, not as an error.
func (s *Service) ShortestPath(ctx context.Context, from, to, metric string) (view RouteView, err error) {
	_, span := s.tracer.StartSpan(ctx, "portal.shortest_path", routeAttrs(from, to, metric)...)
	defer func() { s.finishQuery(span, "shortest", view.Reachable, err) }()

	m, err := core.ParseMetric(metric)
	if err != nil {
		return RouteView{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, v, err := s.resolvePair(from, to)
	if err != nil {
		return RouteView{}, err
	}
	res, err := dijkstra.ShortestPath(s.graph, u, v, m)
	if err != nil {
		return RouteView{}, err
	}

	return RouteView{
		Metric:    m.String(),
		Reachable: res.Reachable(),
		Weight:    res.Weight,
		Spots:     s.names(res.Spots),
	}, nil
}

// AllPaths lists every simple route between two named spots, at most limit
// routes when limit > 0.
func (s *Service) AllPaths(ctx context.Context, from, to string, limit int) (views []WalkView, err error) {
	ctx, span := s.tracer.StartSpan(ctx, "portal.all_paths", pairAttrs(from, to)...)
	defer func() { s.finishQuery(span, "all", len(views) > 0, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, v, err := s.resolvePair(from, to)
	if err != nil {
		return nil, err
	}
	routes, err := dfs.AllPaths(s.graph, u, v, dfs.WithContext(ctx), dfs.WithLimit(limit))
	if err != nil {
		return nil, err
	}

	views = make([]WalkView, 0, len(routes))
	for _, r := range routes {
		views = append(views, WalkView{Distance: r.Distance, Duration: r.Duration, Spots: s.names(r.Spots)})
	}

	return views, nil
}

// Plan builds a greedy multi-stop route. Every must-pass name has to exist;
// names equal to from or to are ignored.
func (s *Service) Plan(ctx context.Context, from, to string, mustPass []string, metric string) (view PlanView, err error) {
	_, span := s.tracer.StartSpan(ctx, "portal.plan",
		append(routeAttrs(from, to, metric), attribute.StringSlice("must_pass", mustPass))...)
	defer func() { s.finishQuery(span, "plan", view.Reachable, err) }()

	m, err := core.ParseMetric(metric)
	if err != nil {
		return PlanView{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, v, err := s.resolvePair(from, to)
	if err != nil {
		return PlanView{}, err
	}
	ids := make([]int, 0, len(mustPass))
	for _, name := range mustPass {
		id, err := s.resolve(name)
		if err != nil {
			return PlanView{}, err
		}
		ids = append(ids, id)
	}

	res, err := tsp.Plan(s.graph, u, v, ids, m)
	if err != nil {
		return PlanView{}, err
	}

	return PlanView{
		RouteView: RouteView{
			Metric:    m.String(),
			Reachable: res.Reachable(),
			Weight:    res.Weight,
			Spots:     s.names(res.Spots),
		},
		Order: s.names(res.Order),
	}, nil
}

// Reachable lists spots reachable from name within maxDepth stops
// (0 = unlimited).
func (s *Service) Reachable(ctx context.Context, name string, maxDepth int) (view ReachView, err error) {
	ctx, span := s.tracer.StartSpan(ctx, "portal.reachable", attribute.String("spot", name))
	defer func() { s.finishQuery(span, "reachable", true, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, err := s.resolve(name)
	if err != nil {
		return ReachView{}, err
	}
	res, err := bfs.Reachable(s.graph, id, bfs.WithContext(ctx), bfs.WithMaxDepth(maxDepth))
	if err != nil {
		return ReachView{}, err
	}

	view = ReachView{Start: name, Spots: make([]HopsView, 0, len(res.Order))}
	for _, sid := range res.Order {
		names := s.names([]int{sid})
		if len(names) == 0 {
			continue
		}
		view.Spots = append(view.Spots, HopsView{Name: names[0], Hops: res.Depth[sid]})
	}

	return view, nil
}

func routeAttrs(from, to, metric string) []attribute.KeyValue {
	return append(pairAttrs(from, to), attribute.String("metric", metric))
}

// finishQuery records the query outcome on metrics and span.
func (s *Service) finishQuery(span trace.Span, kind string, reachable bool, err error) {
	switch {
	case err != nil:
		s.metrics.Queries.WithLabelValues(kind, "error").Inc()
	case !reachable:
		s.metrics.Queries.WithLabelValues(kind, "unreachable").Inc()
	default:
		s.metrics.Queries.WithLabelValues(kind, "ok").Inc()
	}
	span.SetAttributes(attribute.Bool("reachable", reachable))
	observability.EndSpan(span, err)
}

func endSpan(span trace.Span, err error) { observability.EndSpan(span, err) }
