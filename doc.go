// Package tourgraph is the root of a scenic-area guide: an in-memory graph
// of spots joined by undirected paths that carry a distance (meters) and a
// walking time (minutes), plus the route queries a visitor needs.
//
// Layout:
//
//	core/         thread-safe arena graph: spots, mirrored paths, documents
//	dijkstra/     cheapest route between two spots
//	dfs/          every simple route between two spots
//	bfs/          reachable spots and stop counts
//	tsp/          greedy multi-stop route through must-pass spots
//	prim_kruskal/ cheapest set of paths keeping the area connected
//	flow/         path-disjoint trail count and critical paths
//	matrix/       all-pairs distance chart (Floyd-Warshall)
//	gridgraph/    terrain-map import
//	builder/      reproducible random demo area
//	store/        JSON, YAML and Badger persistence with a circuit breaker
//	internal/     config, logging, observability, portal, HTTP API, rendering
//	cmd/tourgraph the CLI and HTTP server
//
// The core packages depend only on core; everything with I/O lives under
// internal/ and store/.
package tourgraph
