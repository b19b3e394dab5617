package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/tourgraph/core"
)

// Kruskal computes the minimum spanning tree of the live spots.
//
// Steps:
//  1. Validate graph and metric; collect live spots (none → ErrDisconnected).
//  2. A single spot yields an empty tree of weight 0.
//  3. Stable-sort g.Edges() by the metric weight.
//  4. Union-find over spot ids; accept each path joining two components.
//  5. Stop at |V|-1 accepted paths; fewer after the scan → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(g *core.Graph, metric core.Metric) (Result, error) {
	spots, err := validate(g, metric)
	if err != nil {
		return Result{}, err
	}
	if len(spots) == 1 {
		return Result{Edges: []core.Edge{}}, nil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight(metric) < edges[j].Weight(metric)
	})

	ds := newDisjointSet(g.Len())
	res := Result{Edges: make([]core.Edge, 0, len(spots)-1)}
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Weight += e.Weight(metric)
		if len(res.Edges) == len(spots)-1 {
			break
		}
	}
	if len(res.Edges) < len(spots)-1 {
		return Result{}, ErrDisconnected
	}

	return res, nil
}

// disjointSet is a union-find over dense ids.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the root of u, compressing the path by halving.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
