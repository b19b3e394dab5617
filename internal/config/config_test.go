package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourgraph/internal/config"
	"github.com/katalvlaran/tourgraph/store"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, store.DriverJSON, cfg.Storage.Driver)
	assert.Equal(t, "./data/data.json", cfg.Storage.Path)
	assert.True(t, cfg.Storage.Breaker.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Tracing.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourgraph.yaml")
	writeFile(t, path, `
server:
  addr: ":9090"
storage:
  driver: yaml
  path: /tmp/park.yaml
log:
  level: debug
  format: console
`)
	t.Setenv("TOURGRAPH_SERVER_ADDR", ":7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr, "env overrides file")
	assert.Equal(t, store.DriverYAML, cfg.Storage.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)

	sc := cfg.StoreConfig()
	assert.Equal(t, "/tmp/park.yaml", sc.Path)
	assert.Equal(t, cfg.Storage.Breaker.MinRequests, sc.Breaker.MinRequests)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "storage:\n  driver: sqlite\nlog:\n  level: loud\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "storage.driver")
	assert.Contains(t, err.Error(), "log.level")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourgraph.yaml")
	writeFile(t, path, "log:\n  level: info\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	w, err := config.NewWatcher(path, cfg, nil)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	levels := make(chan string, 4)
	w.OnChange(func(c *config.Config) { levels <- c.Log.Level })

	writeFile(t, path, "log:\n  level: debug\n")

	select {
	case lvl := <-levels:
		assert.Equal(t, "debug", lvl)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the change")
	}
	assert.Equal(t, "debug", w.Config().Log.Level)
}

func TestWatcher_IgnoresInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourgraph.yaml")
	writeFile(t, path, "log:\n  level: warn\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	w, err := config.NewWatcher(path, cfg, nil)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	writeFile(t, path, "log:\n  level: shouting\n")
	time.Sleep(600 * time.Millisecond)
	assert.Equal(t, "warn", w.Config().Log.Level)
	require.NoError(t, w.Stop())
}

func TestWatcher_NotifiesEveryCallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourgraph.yaml")
	writeFile(t, path, "log:\n  level: info\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	w, err := config.NewWatcher(path, cfg, nil)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	first := make(chan string, 4)
	second := make(chan string, 4)
	w.OnChange(func(c *config.Config) { first <- c.Log.Level })
	w.OnChange(func(c *config.Config) { second <- c.Log.Level })

	writeFile(t, path, "log:\n  level: error\n")

	for _, ch := range []chan string{first, second} {
		select {
		case lvl := <-ch:
			assert.Equal(t, "error", lvl)
		case <-time.After(5 * time.Second):
			t.Fatal("callback was not notified")
		}
	}
}
