// Package tsp plans a walk from a start spot to a target spot that passes
// through a set of must-pass spots.
//
// Plan is a greedy nearest-neighbour heuristic, NOT an optimal travelling
// salesman solver:
//
//   - From the current position, run dijkstra.ShortestPath to every
//     unvisited must-pass spot and move to the cheapest one.
//   - Ties go to the lowest spot id, so plans are reproducible.
//   - After all must-pass spots are visited, take the shortest leg to target.
//   - Legs are concatenated without repeating the joint spot.
//
// Consumers should treat the total as an upper bound on the optimal tour.
//
// Must-pass handling:
//
//   - Ids that are out of range, soft-deleted, or equal to start or target
//     are dropped silently; duplicates are visited once.
//   - An empty must-pass set makes Plan identical to ShortestPath.
//   - If any required leg is unreachable, Plan returns the Unreachable
//     sentinel (Weight -1, no spots). This is a result, not an error.
//
// Complexity:
//
//   - Time:  O(k² · (V + E) log V) for k must-pass spots.
//   - Space: O(V + E) per leg.
//
// Errors:
//
//   - ErrNilGraph, ErrInvalidSpot, ErrInvalidMetric (aliases of the
//     dijkstra/core sentinels).
package tsp
