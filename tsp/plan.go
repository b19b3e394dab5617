package tsp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tourgraph/core"
	"github.com/katalvlaran/tourgraph/dijkstra"
)

// Plan returns a greedy route from start to target visiting every usable
// spot in mustPass. See the package documentation for the exact policy.
// Every leg is computed under metric.
func Plan(g *core.Graph, start, target int, mustPass []int, metric core.Metric) (Result, error) {
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

	pending := workingSet(g, start, target, mustPass)
	res := Result{Spots: []int{start}, Order: make([]int, 0, len(pending))}
	current := start

	for len(pending) > 0 {
		idx, leg, err := nearest(g, current, pending, metric)
		if err != nil {
			return Result{}, err
		}
		if idx < 0 {
			return unreachable(), nil
		}
		next := pending[idx]
		res.extend(leg)
		res.Order = append(res.Order, next)
		current = next
		pending = append(pending[:idx], pending[idx+1:]...)
	}

	leg, err := dijkstra.ShortestPath(g, current, target, metric)
	if err != nil {
		return Result{}, err
	}
	if !leg.Reachable() {
		return unreachable(), nil
	}
	res.extend(leg)

	return res, nil
}

// workingSet filters mustPass down to valid, distinct spots other than the
// endpoints, sorted ascending so iteration order is the tie-break order.
func workingSet(g *core.Graph, start, target int, mustPass []int) []int {
	seen := make(map[int]bool, len(mustPass))
	out := make([]int, 0, len(mustPass))
	for _, id := range mustPass {
		if id == start || id == target || seen[id] || !g.IsValid(id) {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// nearest returns the index in pending of the cheapest reachable spot from
// current, with its leg. Strict comparison keeps the lowest id on ties.
// idx is -1 when none is reachable.
func nearest(g *core.Graph, current int, pending []int, metric core.Metric) (int, dijkstra.Result, error) {
	best := -1
	var bestLeg dijkstra.Result
	for i, id := range pending {
		leg, err := dijkstra.ShortestPath(g, current, id, metric)
		if err != nil {
			return -1, dijkstra.Result{}, err
		}
		if !leg.Reachable() {
			continue
		}
		if best < 0 || leg.Weight < bestLeg.Weight {
			best, bestLeg = i, leg
		}
	}

	return best, bestLeg, nil
}

// extend appends leg to the route, dropping the joint spot it shares with
// the current tail.
func (r *Result) extend(leg dijkstra.Result) {
	r.Weight += leg.Weight
	r.Spots = append(r.Spots, leg.Spots[1:]...)
}
