// Package bfs provides breadth-first reachability over a core.Graph,
// returning hop distances, parent links and visit order. Path weights are
// ignored: BFS answers "which spots can I reach, and in how many stops".
// Soft-deleted spots are treated as absent.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tourgraph/core"
)

// queueItem pairs a spot id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Reachable runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrInvalidSpot for invalid input, ErrOptionViolation
// for bad options, ctx errors on cancellation, or any OnVisit error.
//
// Complexity: O(V + E).
func Reachable(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsValid(start) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpot, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue records depth and parent for id and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen valid neighbour within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, p := range neighbors {
		if _, seen := w.res.Depth[p.Target]; !seen {
			w.enqueue(p.Target, nextDepth, item.id)
		}
	}

	return nil
}
