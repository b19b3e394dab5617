package store

import (
	"context"
	"errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourgraph/core"
)

// Breaker guards a Store with a circuit breaker. Context cancellation is
// not counted as a store failure.
type Breaker struct {
	next Store
	cb   *gobreaker.CircuitBreaker
}

// WithBreaker wraps next. Once the failure ratio over at least MinRequests
// calls reaches FailureThreshold, calls fail fast with ErrUnavailable until
// Timeout elapses.
func WithBreaker(next Store, cfg BreakerConfig, logger *zap.Logger) *Breaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "store",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
	})

	return &Breaker{next: next, cb: cb}
}

// State reports the breaker state (closed, half-open, open).
func (b *Breaker) State() gobreaker.State { return b.cb.State() }

// Load calls the wrapped Load through the breaker.
func (b *Breaker) Load(ctx context.Context) (*core.Graph, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Load(ctx)
	})
	if err != nil {
		return nil, translate(err)
	}

	return out.(*core.Graph), nil
}

// Save calls the wrapped Save through the breaker.
func (b *Breaker) Save(ctx context.Context, g *core.Graph) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Save(ctx, g)
	})

	return translate(err)
}

// Close closes the wrapped store directly.
func (b *Breaker) Close() error { return b.next.Close() }

func translate(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(ErrUnavailable, err)
	}

	return err
}
