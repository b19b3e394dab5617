package portal

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/matrix"
)

// Chart returns the distance (or duration) chart between every pair of
// live spots, in id order.
func (s *Service) Chart(ctx context.Context, metric string) (view ChartView, err error) {
	_, span := s.tracer.StartSpan(ctx, "portal.chart", attribute.String("metric", metric))
	defer func() { s.finishQuery(span, "chart", err == nil, err) }()

	m, err := core.ParseMetric(metric)
	if err != nil {
		return ChartView{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tab, err := matrix.Distances(s.graph, m)
	if err != nil {
		return ChartView{}, err
	}

	view = ChartView{Metric: m.String(), Spots: s.names(tab.IDs), Rows: make([][]int64, tab.Size())}
	for i := range view.Rows {
		if view.Rows[i], err = tab.Row(i); err != nil {
			return ChartView{}, err
		}
	}

	return view, nil
}
