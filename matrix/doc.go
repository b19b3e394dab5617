// SPDX-License-Identifier: MIT
//
// Package matrix builds the all-pairs distance chart of a scenic area.
//
// Distances(g, metric) lays the live spots out in ascending id order and
// runs Floyd-Warshall over a dense row-major int64 buffer. The chart is
// what a trail-head board prints: for every pair of spots, the cheapest
// total distance (or duration) between them.
//
// Conventions:
//   - The diagonal is 0.
//   - Unreachable pairs read as Unreachable (-1) through At.
//   - Parallel paths contribute their cheaper weight.
//   - Loop order is fixed (k → i → j) with strict improvement only, so the
//     result is deterministic.
//
// Complexity: Time O(V³), Memory O(V²).
package matrix
