// Package prim_kruskal computes the trail backbone of a scenic area: the
// minimum spanning tree over every live spot, weighted by distance or by
// duration. It answers "which paths must stay open so every spot remains
// reachable, at the lowest total cost".
//
// Algorithms Provided
//
//   - Kruskal(g, metric) (Result, error)
//     Sort every live path by weight (stable, so ties follow Edges() order)
//     and merge components with a union-find using path compression and
//     union by rank. Time O(E log E), space O(V + E).
//
//   - Prim(g, root, metric) (Result, error)
//     Grow one tree from root with a min-heap of frontier paths. Ties break
//     on (weight, lower endpoint, higher endpoint). Time O(E log V).
//
//   - Compute(g, metric, opts...) dispatches on WithMethod; Kruskal is the
//     default and Prim starts at the lowest valid id unless WithRoot is set.
//
// Both algorithms return the same total weight on a connected graph; the
// chosen paths may differ when weights tie.
//
// Deleted spots and the paths that touch them are ignored. Parallel paths
// are candidates like any other, so only the cheaper of a pair can appear.
//
// Errors:
//
//	ErrGraphNil, ErrDisconnected, ErrInvalidSpot, ErrInvalidMetric,
//	ErrUnknownMethod
package prim_kruskal
