package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tourgraph/core"
)

// routeWalker encapsulates backtracking state for one AllPaths call.
type routeWalker struct {
	graph   *core.Graph
	opts    Options
	target  int
	visited map[int]bool
	prefix  []int
	routes  []Route
}

// AllPaths returns every simple route from start to target.
// start == target yields the single route (0, 0, [start]).
//
// Steps:
//  1. Validate g, start and target.
//  2. Mark start visited and recurse through valid neighbours in adjacency
//     order, adding each to the prefix on descent and removing it on return.
//  3. Emit a Route whenever target is reached; do not descend past it.
//
// Parallel paths between the same pair produce one route per path.
func AllPaths(g *core.Graph, start, target int, opts ...Option) ([]Route, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !g.IsValid(start) {
		return nil, fmt.Errorf("%w: start %d", ErrInvalidSpot, start)
	}
	if !g.IsValid(target) {
		return nil, fmt.Errorf("%w: target %d", ErrInvalidSpot, target)
	}

	w := &routeWalker{
		graph:   g,
		opts:    o,
		target:  target,
		visited: map[int]bool{start: true},
		prefix:  []int{start},
		routes:  make([]Route, 0),
	}
	if err := w.walk(start, 0, 0); err != nil && !errors.Is(err, errLimitReached) {
		return nil, err
	}

	return w.routes, nil
}

// errLimitReached unwinds the recursion once Limit routes are collected.
var errLimitReached = errors.New("dfs: route limit reached")

// walk extends the prefix ending at u, whose accumulated weights are dist
// and dur.
func (w *routeWalker) walk(u int, dist, dur int64) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if u == w.target {
		w.routes = append(w.routes, Route{
			Distance: dist,
			Duration: dur,
			Spots:    append([]int(nil), w.prefix...),
		})
		if w.opts.Limit > 0 && len(w.routes) >= w.opts.Limit {
			return errLimitReached
		}

		return nil
	}
	if w.opts.MaxDepth >= 0 && len(w.prefix)-1 >= w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", u, err)
	}
	for _, p := range neighbors {
		if w.visited[p.Target] {
			continue
		}
		w.visited[p.Target] = true
		w.prefix = append(w.prefix, p.Target)

		err = w.walk(p.Target, dist+p.Distance, dur+p.Duration)

		w.prefix = w.prefix[:len(w.prefix)-1]
		delete(w.visited, p.Target)
		if err != nil {
			return err
		}
	}

	return nil
}
