// Package dfs enumerates every simple route between two spots of a
// core.Graph by depth-first backtracking.
//
// Key features:
//   - AllPaths(g, start, target, opts...): every route with no repeated spot,
//     with its accumulated distance and duration.
//   - Soft-deleted spots and spots already on the current prefix are skipped.
//   - Output order follows adjacency insertion order, so it is deterministic.
//   - Cancellation via context.Context, plus depth and result-count caps.
//
// Complexity:
//
//   - Time:   exponential in the worst case (the number of simple paths);
//     scenic graphs hold tens of spots, and WithMaxDepth/WithLimit bound the
//     search when that assumption does not hold.
//   - Memory: O(V) for the recursion stack and visited set, plus the routes.
//
// Options:
//
//   - WithContext(ctx)    allows cancellation via context.Context.
//   - WithMaxDepth(n)     ignores routes with more than n paths (n >= 0).
//   - WithLimit(n)        stops after n routes (n > 0).
//
// Errors:
//
//   - ErrGraphNil         if g is nil.
//   - ErrInvalidSpot      if start or target is out of range or soft-deleted.
//   - context.Canceled    (or DeadlineExceeded) if ctx is done.
package dfs
