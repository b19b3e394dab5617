// Package builder fills a core.Graph with a reproducible demo scenic area.
//
// Demo adds N named spots (ids 0..N-1 in name order) and M distinct random
// paths between them, drawing distances and durations uniformly from
// closed ranges. It never creates self-loops or parallel paths.
//
// Defaults mirror the debug data page of the visitor app:
//
//	spots     8 (DefaultNames)
//	paths     15
//	distance  100..1500 m
//	duration  5..25 min
//	seed      1
//
// Determinism:
//   - The same options on an empty graph always yield the same graph.
//   - Pair draws use the seeded *rand.Rand only; no global randomness.
//
// Errors:
//   - ErrGraphNotEmpty   the target graph already has arena slots.
//   - ErrTooManyEdges    M exceeds N·(N-1)/2.
//   - ErrTooFewSpots     fewer than two names with M > 0.
//   - ErrBadRange        an empty or non-positive weight range.
package builder
