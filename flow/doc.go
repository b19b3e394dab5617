// Package flow measures how robustly two spots are linked.
//
// Trails(g, source, sink) is the maximum number of routes from source to
// sink that share no path: every undirected path carries capacity 1 and
// Dinic's algorithm (level graph + blocking flow) computes the max flow.
// The same run yields a minimum cut, the smallest set of paths whose
// closure separates sink from source. A cut of one path is a bottleneck:
// if it is closed for maintenance, the sink is unreachable.
//
// Parallel paths count separately. Soft-deleted spots and paths touching
// them are ignored.
//
// Complexity:
//
//	Time:   O(E·√V) (unit capacities).
//	Memory: O(V + E) for the residual arcs.
//
// Errors:
//
//	ErrGraphNil, ErrInvalidSpot (source or sink), ErrSameEndpoints,
//	and ctx errors on cancellation.
package flow
