// Package portal is the visitor-facing application service. It resolves
// spot names to ids, runs graph queries and mutations under one lock per
// logical operation, and saves the whole document after every successful
// mutation.
package portal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/internal/observability"
	"github.com/katalvlaran/tourgraph/store"
)

// Service owns the graph for the lifetime of the process.
type Service struct {
	mu      sync.RWMutex
	graph   *core.Graph
	store   store.Store
	logger  *zap.Logger
	metrics *observability.Collector
	tracer  *observability.TracerProvider
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Default: no-op.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metric collector. Default: a private collector.
func WithMetrics(c *observability.Collector) Option {
	return func(s *Service) {
		if c != nil {
			s.metrics = c
		}
	}
}

// WithTracer sets the tracer provider. Default: the global no-op tracer.
func WithTracer(tp *observability.TracerProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.tracer = tp
		}
	}
}

// New loads the graph from st and returns a ready Service.
func New(ctx context.Context, st store.Store, opts ...Option) (*Service, error) {
	s := &Service{
		store:  st,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = observability.NewCollector("")
	}
	if s.tracer == nil {
		s.tracer = observability.NoopTracing()
	}

	g, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("portal: load graph: %w", err)
	}
	s.graph = g
	s.refreshGauges()

	st0 := g.Stats()
	s.logger.Info("graph loaded",
		zap.Int("spots", st0.Nodes),
		zap.Int("paths", st0.Edges),
		zap.Uint64("revision", st0.Revision),
	)

	return s, nil
}

// Close saves the graph one last time and closes the store.
func (s *Service) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saveErr := s.saveLocked(ctx)
	closeErr := s.store.Close()
	if saveErr != nil {
		return fmt.Errorf("portal: final save: %w", saveErr)
	}
	if closeErr != nil {
		return fmt.Errorf("portal: close store: %w", closeErr)
	}
	s.logger.Info("graph saved on shutdown", zap.Uint64("revision", s.graph.Revision()))

	return nil
}

// mutate runs fn under the write lock and persists the result. If the save
// fails the in-memory graph is restored to its previous state, so memory
// and storage never disagree.
func (s *Service) mutate(ctx context.Context, op string, attrs []attribute.KeyValue, fn func(g *core.Graph) error) (err error) {
	ctx, span := s.tracer.StartSpan(ctx, "portal."+op, attrs...)
	defer func() {
		observability.EndSpan(span, err)
		s.metrics.Mutations.WithLabelValues(op, outcome(err)).Inc()
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.graph.Document()
	if err = fn(s.graph); err != nil {
		if s.graph.Revision() != before.Revision {
			if restored, rerr := core.FromDocument(before); rerr == nil {
				s.graph = restored
			}
		}
		s.logger.Debug("mutation rejected", zap.String("op", op), zap.Error(err))
		return err
	}
	if s.graph.Revision() == before.Revision {
		return nil
	}
	if err = s.saveLocked(ctx); err != nil {
		restored, rerr := core.FromDocument(before)
		if rerr == nil {
			s.graph = restored
		}
		s.logger.Error("save failed, mutation rolled back",
			zap.String("op", op),
			zap.Error(err),
		)

		return fmt.Errorf("portal: %s: save: %w", op, err)
	}
	s.refreshGauges()
	s.logger.Info("graph mutated", zap.String("op", op), zap.Uint64("revision", s.graph.Revision()))

	return nil
}

func (s *Service) saveLocked(ctx context.Context) error {
	start := time.Now()
	err := s.store.Save(ctx, s.graph)
	s.metrics.ObserveSave(time.Since(start), err)

	return err
}

func (s *Service) refreshGauges() {
	st := s.graph.Stats()
	s.metrics.SetGraphSize(st.Nodes, st.Edges)
}

// resolve maps a spot name to its id. Caller holds mu.
func (s *Service) resolve(name string) (int, error) {
	spot, err := s.graph.FindSpotByName(name)
	if err != nil {
		return -1, err
	}

	return spot.ID, nil
}

// names maps ids to spot names. Caller holds mu.
func (s *Service) names(ids []int) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if spot, err := s.graph.Spot(id); err == nil {
			out = append(out, spot.Name)
		}
	}

	return out
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}
