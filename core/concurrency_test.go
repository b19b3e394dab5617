package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourgraph/core"
)

// TestConcurrentMutationsKeepMirror runs writers and readers in parallel and
// then checks that the stored adjacency is still symmetric. Goroutines never
// touch *testing.T; errors are collected and asserted afterwards.
func TestConcurrentMutationsKeepMirror(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < NWriters+1; i++ {
		_, err := g.AddSpot(fmt.Sprintf("S%d", i), "")
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, NWriters*NRounds)
	for w := 0; w < NWriters; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for r := 0; r < NRounds; r++ {
				if err := g.AddPath(w, w+1, int64(r+1), int64(r+1)); err != nil {
					errs <- err
				}
				if r%3 == 0 {
					_ = g.ModifyPath(w, w+1, core.WithDuration(int64(r+2)))
				}
			}
		}(w)
	}
	for r := 0; r < NReaders; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < NRounds; i++ {
				_ = g.Edges()
				_ = g.Stats()
				_, _ = g.Neighbors(0)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, NWriters*NRounds, g.EdgeCount())
	_, err := core.FromDocument(g.Document())
	require.NoError(t, err, "document must satisfy the mirror check")
}

func TestConcurrentAddSpot_UniqueNames(t *testing.T) {
	g := core.NewGraph()

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < NWriters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.AddSpot(SpotGate, ""); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok, "exactly one writer wins the name")
	assert.Equal(t, 1, g.Len())
}
