package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/tourgraph/core"
)

// Prim grows the minimum spanning tree of the live spots from root.
// root == NoRoot starts at the lowest valid id.
//
// Steps:
//  1. Validate graph and metric; resolve and check root (ErrInvalidSpot).
//  2. Mark root visited and push its walkable paths onto the heap.
//  3. Pop the cheapest path; skip it if its far end is visited, otherwise
//     accept it and push the far end's paths to unvisited spots.
//  4. Fewer than |V|-1 accepted paths → ErrDisconnected.
//
// Complexity: O(E log V). Memory: O(V + E).
func Prim(g *core.Graph, root int, metric core.Metric) (Result, error) {
	spots, err := validate(g, metric)
	if err != nil {
		return Result{}, err
	}
	if root == NoRoot {
		root = spots[0].ID
	}
	if !g.IsValid(root) {
		return Result{}, fmt.Errorf("%w: root %d", ErrInvalidSpot, root)
	}
	if len(spots) == 1 {
		return Result{Edges: []core.Edge{}}, nil
	}

	visited := make([]bool, g.Len())
	pq := &frontier{}
	push := func(from int) error {
		paths, err := g.Neighbors(from)
		if err != nil {
			return err
		}
		for _, p := range paths {
			if !visited[p.Target] {
				heap.Push(pq, candidate{from: from, to: p.Target, distance: p.Distance, duration: p.Duration, weight: p.Weight(metric)})
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return Result{}, err
	}

	res := Result{Edges: make([]core.Edge, 0, len(spots)-1)}
	for pq.Len() > 0 && len(res.Edges) < len(spots)-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		res.Edges = append(res.Edges, c.edge())
		res.Weight += c.weight
		if err := push(c.to); err != nil {
			return Result{}, err
		}
	}
	if len(res.Edges) < len(spots)-1 {
		return Result{}, ErrDisconnected
	}

	return res, nil
}

// candidate is a frontier path from a tree spot to an outside spot.
type candidate struct {
	from, to           int
	distance, duration int64
	weight             int64
}

func (c candidate) edge() core.Edge {
	from, to := c.from, c.to
	if from > to {
		from, to = to, from
	}

	return core.Edge{From: from, To: to, Distance: c.distance, Duration: c.duration}
}

// frontier is a min-heap of candidates ordered by weight, then endpoints.
type frontier []candidate

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].weight != f[j].weight {
		return f[i].weight < f[j].weight
	}
	a, b := f[i].edge(), f[j].edge()
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(candidate)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	c := old[n-1]
	*f = old[:n-1]

	return c
}
