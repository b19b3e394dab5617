package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourgraph/core"
)

// graphKey is the single key holding the msgpack document.
var graphKey = []byte("tourgraph:graph")

// Badger stores the graph document in BadgerDB v4.
type Badger struct {
	mu     sync.Mutex
	db     *badger.DB
	closed bool
}

// BadgerOptions configures the BadgerDB store.
type BadgerOptions struct {
	// Dir is the directory for BadgerDB data files. Required unless InMemory.
	Dir string

	// InMemory runs BadgerDB in memory-only mode (no disk persistence).
	InMemory bool

	// Logger receives badger warnings and errors. Nil silences badger.
	Logger *zap.Logger
}

// NewBadger opens a BadgerDB-backed Store.
func NewBadger(opts BadgerOptions) (*Badger, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.New("store: BadgerOptions.Dir is required for on-disk mode")
	}
	dbOpts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dbOpts = dbOpts.WithLogger(badgerLogger{s: logger.Named("badger").Sugar()})

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	return &Badger{db: db}, nil
}

// Load decodes the stored document, or returns an empty graph when the key
// has never been written.
func (b *Badger) Load(ctx context.Context) (*core.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrClosed
	}

	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(graphKey)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return core.NewGraph(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: badger get: %w", err)
	}

	var doc core.Document
	if err := msgpack.Unmarshal(val, &doc); err != nil {
		return nil, fmt.Errorf("store: decode msgpack: %w", err)
	}
	g, err := core.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("store: badger: %w", err)
	}

	return g, nil
}

// Save overwrites the stored document in one transaction.
func (b *Badger) Save(ctx context.Context, g *core.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := msgpack.Marshal(g.Document())
	if err != nil {
		return fmt.Errorf("store: encode msgpack: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(graphKey, val)
	})
}

// Close closes the database.
func (b *Badger) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	return b.db.Close()
}

// badgerLogger forwards badger warnings and errors to zap, dropping info
// and debug chatter.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func (l badgerLogger) Errorf(f string, v ...interface{})   { l.s.Errorf(f, v...) }
func (l badgerLogger) Warningf(f string, v ...interface{}) { l.s.Warnf(f, v...) }
func (badgerLogger) Infof(string, ...interface{})          {}
func (badgerLogger) Debugf(string, ...interface{})         {}
