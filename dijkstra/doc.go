// Package dijkstra provides single-pair shortest paths between spots of a
// core.Graph, minimising either distance or duration.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm from start and stops as soon as
//     target is popped from the frontier.
//   - Weights are strictly positive integers (core rejects anything else),
//     so no negative-weight scan is needed.
//   - Soft-deleted spots are skipped during relaxation: the search behaves as
//     if the spot and its incident paths did not exist.
//   - Parallel paths between the same pair are all relaxed; the cheaper wins.
//
// Determinism:
//
//   - Heap entries with equal weight are ordered by lower spot id, so the
//     returned route is reproducible across runs.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) with lazy decrease-key.
//   - Space: O(V + E) for the weight/predecessor tables and heap entries.
//
// Result contract:
//
//   - start == target ⇒ Result{Weight: 0, Spots: [start]}.
//   - Unreachable ⇒ Result{Weight: Unreachable, Spots: []}; this is a normal
//     outcome, not an error. Use Result.Reachable().
//
// Error handling (sentinel errors):
//
//   - ErrInvalidSpot:   start or target is out of range or soft-deleted.
//   - ErrInvalidMetric: metric is neither distance nor duration.
//   - ErrNilGraph:      g is nil.
//
// API reference:
//
//	func ShortestPath(g *core.Graph, start, target int, metric core.Metric) (Result, error)
//
// See also:
//
//   - tsp.Plan chains ShortestPath legs through must-pass spots.
//   - dfs.AllPaths enumerates every simple route between two spots.
package dijkstra
