package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/tourgraph/core"
)

// network is the residual graph plus per-phase Dinic state.
type network struct {
	adj   [][]arc
	level []int
	iter  []int
	ctx   context.Context
}

// Trails counts path-disjoint routes between source and sink and returns a
// matching minimum cut.
//
// Steps:
//  1. Validate the graph and endpoints.
//  2. Build the residual network: each path u-v becomes a pair of arcs,
//     u→v and v→u, each of capacity 1 and each the other's reverse.
//  3. Repeat until sink is unreachable: BFS levels, then blocking flow by DFS.
//  4. Spots still reachable from source in the residual form the source
//     side; every path leaving it belongs to the cut.
func Trails(g *core.Graph, source, sink int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.IsValid(source) {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSpot, source)
	}
	if !g.IsValid(sink) {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSpot, sink)
	}
	if source == sink {
		return Result{}, fmt.Errorf("%w: %d", ErrSameEndpoints, source)
	}

	edges := g.Edges()
	n := g.Len()
	net := &network{
		adj:   make([][]arc, n),
		level: make([]int, n),
		iter:  make([]int, n),
		ctx:   o.Ctx,
	}
	for _, e := range edges {
		net.addPath(e.From, e.To)
	}

	var total int64
	for net.buildLevels(source, sink) {
		for i := range net.iter {
			net.iter[i] = 0
		}
		for {
			if err := net.ctx.Err(); err != nil {
				return Result{}, err
			}
			pushed := net.push(source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}
	if err := net.ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{Count: int(total), Cut: make([]core.Edge, 0, total)}
	if total == 0 {
		return res, nil
	}
	side := net.sourceSide(source)
	for _, e := range edges {
		if side[e.From] != side[e.To] {
			res.Cut = append(res.Cut, e)
		}
	}

	return res, nil
}

func (n *network) addPath(u, v int) {
	n.adj[u] = append(n.adj[u], arc{to: v, rev: len(n.adj[v]), cap: 1})
	n.adj[v] = append(n.adj[v], arc{to: u, rev: len(n.adj[u]) - 1, cap: 1})
}

// buildLevels assigns BFS distances over arcs with spare capacity and
// reports whether sink was reached.
func (n *network) buildLevels(source, sink int) bool {
	for i := range n.level {
		n.level[i] = -1
	}
	n.level[source] = 0
	queue := []int{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, a := range n.adj[u] {
			if a.cap > 0 && n.level[a.to] < 0 {
				n.level[a.to] = n.level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return n.level[sink] >= 0
}

// push sends up to available units from u toward sink along the level
// graph and returns the amount sent.
func (n *network) push(u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	if n.ctx.Err() != nil {
		return 0
	}
	for ; n.iter[u] < len(n.adj[u]); n.iter[u]++ {
		a := &n.adj[u][n.iter[u]]
		if a.cap <= 0 || n.level[a.to] != n.level[u]+1 {
			continue
		}
		send := available
		if a.cap < send {
			send = a.cap
		}
		if pushed := n.push(a.to, sink, send); pushed > 0 {
			a.cap -= pushed
			n.adj[a.to][a.rev].cap += pushed

			return pushed
		}
	}

	return 0
}

// sourceSide marks spots reachable from source in the final residual.
func (n *network) sourceSide(source int) []bool {
	seen := make([]bool, len(n.adj))
	seen[source] = true
	stack := []int{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range n.adj[u] {
			if a.cap > 0 && !seen[a.to] {
				seen[a.to] = true
				stack = append(stack, a.to)
			}
		}
	}

	return seen
}
