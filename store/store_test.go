package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/store"
)

// newPark builds a graph with a tombstone and a parallel path so a round
// trip has to preserve both.
func newPark(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []string{"Gate", "Lake", "Peak"} {
		_, err := g.AddSpot(n, n+" info")
		require.NoError(t, err)
	}
	require.NoError(t, g.AddPath(0, 1, 120, 4))
	require.NoError(t, g.AddPath(1, 2, 300, 15))
	require.NoError(t, g.AddPath(0, 1, 200, 3))
	require.NoError(t, g.DeleteSpot(2))

	return g
}

func openDrivers(t *testing.T) map[string]store.Store {
	t.Helper()
	dir := t.TempDir()
	bdg, err := store.NewBadger(store.BadgerOptions{InMemory: true})
	require.NoError(t, err)

	return map[string]store.Store{
		"json":   store.NewJSONFile(filepath.Join(dir, "graph.json")),
		"yaml":   store.NewYAMLFile(filepath.Join(dir, "graph.yaml")),
		"badger": bdg,
	}
}

func TestRoundTrip_AllDrivers(t *testing.T) {
	ctx := context.Background()
	for name, s := range openDrivers(t) {
		t.Run(name, func(t *testing.T) {
			defer func() { require.NoError(t, s.Close()) }()

			empty, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, empty.Len(), "never-saved store loads empty")

			g := newPark(t)
			require.NoError(t, s.Save(ctx, g))

			back, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, g.Document(), back.Document())
			assert.False(t, back.IsValid(2))
			assert.Equal(t, 3, back.EdgeCount())
		})
	}
}

func TestClosedStoreRejectsCalls(t *testing.T) {
	ctx := context.Background()
	for name, s := range openDrivers(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Close())
			_, err := s.Load(ctx)
			require.ErrorIs(t, err, store.ErrClosed)
			require.ErrorIs(t, s.Save(ctx, core.NewGraph()), store.ErrClosed)
		})
	}
}

func TestJSONFile_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "graph.json")
	s := store.NewJSONFile(path)

	g := core.NewGraph()
	_, _ = g.AddSpot("Gate", "entrance")
	_, _ = g.AddSpot("Lake", "")
	require.NoError(t, g.AddPath(0, 1, 50, 2))
	require.NoError(t, s.Save(context.Background(), g))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "\n    \"spots\": [")
	assert.Contains(t, text, `"target_id": 1`)
	assert.Contains(t, text, `"deleted": false`)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestJSONFile_LoadsOriginalDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	doc := `{
    "spots": [
        {"id": 0, "name": "Gate", "description": "", "paths": [{"target_id": 1, "distance": 10, "duration": 2}], "deleted": false},
        {"id": 1, "name": "Lake", "description": "", "paths": [{"target_id": 0, "distance": 10, "duration": 2}], "deleted": false}
    ]
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	g, err := store.NewJSONFile(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.True(t, g.HasPath(1, 0))
}

func TestJSONFile_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	doc := `{"spots":[{"id":0,"name":"A","paths":[{"target_id":1,"distance":1,"duration":1}]},{"id":1,"name":"B","paths":[]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := store.NewJSONFile(path).Load(context.Background())
	require.ErrorIs(t, err, core.ErrCorruptDocument)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = store.NewJSONFile(path).Load(context.Background())
	require.Error(t, err)
}

func TestSave_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := store.NewJSONFile(filepath.Join(t.TempDir(), "g.json"))
	require.ErrorIs(t, s.Save(ctx, core.NewGraph()), context.Canceled)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := store.Open(store.Config{Driver: store.DriverYAML, Path: filepath.Join(dir, "g.yaml")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &store.File{}, s)

	s, err = store.Open(store.Config{
		Driver:   store.DriverBadger,
		InMemory: true,
		Breaker:  store.DefaultBreakerConfig(),
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &store.Breaker{}, s)
	require.NoError(t, s.Close())

	_, err = store.Open(store.Config{Driver: "sqlite"}, nil)
	require.ErrorIs(t, err, store.ErrUnknownDriver)
}

// failingStore fails every call with errDisk.
type failingStore struct{ calls int }

var errDisk = errors.New("disk on fire")

func (f *failingStore) Load(context.Context) (*core.Graph, error) {
	f.calls++
	return nil, errDisk
}

func (f *failingStore) Save(context.Context, *core.Graph) error {
	f.calls++
	return errDisk
}

func (f *failingStore) Close() error { return nil }

func TestBreaker_OpensAfterFailures(t *testing.T) {
	inner := &failingStore{}
	cfg := store.DefaultBreakerConfig()
	b := store.WithBreaker(inner, cfg, nil)
	ctx := context.Background()

	for i := uint32(0); i < cfg.MinRequests; i++ {
		require.ErrorIs(t, b.Save(ctx, core.NewGraph()), errDisk)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, err := b.Load(ctx)
	require.ErrorIs(t, err, store.ErrUnavailable)
	assert.Equal(t, int(cfg.MinRequests), inner.calls, "open breaker must not reach the store")
}

func TestBreaker_PassesThrough(t *testing.T) {
	inner := store.NewJSONFile(filepath.Join(t.TempDir(), "g.json"))
	b := store.WithBreaker(inner, store.DefaultBreakerConfig(), nil)
	ctx := context.Background()

	g := newPark(t)
	require.NoError(t, b.Save(ctx, g))
	back, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, g.Document(), back.Document())
	assert.Equal(t, gobreaker.StateClosed, b.State())
}
