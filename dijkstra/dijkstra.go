package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/tourgraph/core"
)

// ShortestPath returns the minimum-weight route from start to target under
// metric, or the Unreachable sentinel when target cannot be reached.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. metric must be distance or duration (ErrInvalidMetric).
//  3. start and target must be valid spots (ErrInvalidSpot).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, target int, metric core.Metric) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := metric.Validate(); err != nil {
		return Result{}, err
	}
	if !g.IsValid(start) {
		return Result{}, fmt.Errorf("%w: start %d", ErrInvalidSpot, start)
	}
	if !g.IsValid(target) {
		return Result{}, fmt.Errorf("%w: target %d", ErrInvalidSpot, target)
	}
	if start == target {
		return Result{Weight: 0, Spots: []int{start}}, nil
	}

	r := newRunner(g, metric, start)
	if err := r.process(target); err != nil {
		return Result{}, err
	}

	if r.dist[target] == math.MaxInt64 {
		return unreachable(), nil
	}

	return Result{Weight: r.dist[target], Spots: r.route(start, target)}, nil
}

// runner holds the mutable state for a single ShortestPath execution.
// Tables are indexed by spot id because core ids are dense.
type runner struct {
	g       *core.Graph
	metric  core.Metric
	dist    []int64 // best-known weight from start; MaxInt64 = not reached
	prev    []int   // predecessor on the best route; -1 = none
	visited []bool  // weight is final
	pq      nodePQ
}

// newRunner sizes the tables to the arena and seeds the heap with start.
func newRunner(g *core.Graph, metric core.Metric, start int) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		metric:  metric,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = math.MaxInt64
		r.prev[i] = -1
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	return r
}

// process pops the closest unfinished spot until the heap drains or target
// is finalised.
func (r *runner) process(target int) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		if u == target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the weight of every valid neighbour of u.
// core.Neighbors already filters soft-deleted targets.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, p := range neighbors {
		v := p.Target
		if v >= len(r.dist) || r.visited[v] {
			continue
		}
		newDist := r.dist[u] + p.Weight(r.metric)
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// route walks predecessors back from target and reverses the walk.
func (r *runner) route(start, target int) []int {
	path := make([]int, 0, 8)
	for at := target; at != -1; at = r.prev[at] {
		path = append(path, at)
		if at == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a spot and its tentative weight from start.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
