// Package store persists a core.Graph as one full document per save.
//
// Drivers:
//
//	json    indent-4 JSON file (the visitor app's original layout)
//	yaml    YAML file with the same fields
//	badger  msgpack document under a single BadgerDB key
//
// Every driver satisfies Store; WithBreaker wraps any of them in a circuit
// breaker so a failing disk turns into ErrUnavailable instead of piling up
// slow errors. Load on a store that has never been saved returns an empty
// graph.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/tourgraph/core"
)

// Sentinel errors for persistence.
var (
	// ErrUnavailable indicates that the backing store rejected the call
	// because its circuit breaker is open.
	ErrUnavailable = errors.New("store: unavailable")

	// ErrUnknownDriver indicates a storage.driver value Open does not know.
	ErrUnknownDriver = errors.New("store: unknown driver")

	// ErrClosed indicates a call on a store after Close.
	ErrClosed = errors.New("store: closed")
)

// Store loads and saves the whole graph document.
type Store interface {
	// Load returns the persisted graph, or an empty graph if nothing was saved.
	Load(ctx context.Context) (*core.Graph, error)

	// Save overwrites the persisted document with the current state of g.
	Save(ctx context.Context, g *core.Graph) error

	// Close releases driver resources. Further calls return ErrClosed.
	Close() error
}

// Driver names accepted by Open.
const (
	DriverJSON   = "json"
	DriverYAML   = "yaml"
	DriverBadger = "badger"
)

// Config selects and configures a driver.
type Config struct {
	// Driver is one of DriverJSON, DriverYAML, DriverBadger.
	Driver string

	// Path is the document file for json/yaml, or the directory for badger.
	Path string

	// InMemory runs badger without disk persistence.
	InMemory bool

	// Breaker wraps the driver in a circuit breaker when Enabled.
	Breaker BreakerConfig
}

// BreakerConfig holds circuit breaker settings.
type BreakerConfig struct {
	Enabled          bool
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultBreakerConfig returns the settings used when none are configured.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          10 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      3,
	}
}

// Open builds the driver named by cfg.Driver, wrapped in a breaker when
// cfg.Breaker.Enabled.
func Open(cfg Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		s   Store
		err error
	)
	switch cfg.Driver {
	case DriverJSON, "":
		s = NewJSONFile(cfg.Path)
	case DriverYAML:
		s = NewYAMLFile(cfg.Path)
	case DriverBadger:
		s, err = NewBadger(BadgerOptions{Dir: cfg.Path, InMemory: cfg.InMemory, Logger: logger})
		if err != nil {
			return nil, fmt.Errorf("store: open badger at %q: %w", cfg.Path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	logger.Info("store opened",
		zap.String("driver", cfg.Driver),
		zap.String("path", cfg.Path),
		zap.Bool("breaker", cfg.Breaker.Enabled),
	)
	if !cfg.Breaker.Enabled {
		return s, nil
	}

	return WithBreaker(s, cfg.Breaker, logger), nil
}
