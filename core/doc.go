// Package core provides the thread-safe in-memory graph of a scenic area:
// spots (nodes) connected by undirected paths (edges) that carry two
// weights, distance in meters and duration in minutes.
//
// The Graph G = (V,E) is stored as an arena:
//
//   - spots[i] holds the spot whose ID is i; ids are dense, zero-based and
//     assigned in creation order. They are never reused.
//   - Deleting a spot only sets its Deleted tombstone. Its slot and every
//     adjacency entry pointing at it stay in place, so ids stay stable and
//     a later spot with the same name never inherits old paths.
//   - Every path is stored twice, once in each endpoint's adjacency list,
//     with identical weights. AddPath/ModifyPath/DeletePath update both
//     halves under one lock.
//
// A spot is valid when its id is in range and it is not deleted. Every
// traversal (dijkstra, dfs, bfs, tsp) filters neighbours through IsValid.
//
// Core Methods:
//
//	// Spot lifecycle
//	AddSpot(name, description string) (int, error)      // O(V)
//	ModifySpot(id int, opts ...SpotOption) error         // O(V)
//	DeleteSpot(id int) error                             // O(1), soft delete
//	FindSpotByName(name string) (Spot, error)            // O(V)
//	IsValid(id int) bool                                 // O(1)
//
//	// Path lifecycle
//	AddPath(from, to int, distance, duration int64) error // O(1)
//	ModifyPath(from, to int, opts ...PathOption) error    // O(deg)
//	DeletePath(from, to int) error                        // O(deg)
//
//	// Query
//	Spot(id) / Spots() / AllSpots() / Paths(id) / Neighbors(id) / Edges()
//	NodeCount() / EdgeCount() / Len() / Revision() / Stats()
//
//	// Persistence
//	Document() Document
//	FromDocument(Document) (*Graph, error)
//
// Known gap: AddPath does not reject a second path between the same pair.
// Parallel paths are kept (they may model distinct trails) and shortest-path
// queries naturally use the cheaper one.
//
// Errors:
//
//	ErrInvalidSpot, ErrNameNotFound, ErrDuplicateName, ErrInvalidMetric,
//	ErrEmptyName, ErrBadWeight, ErrLoopNotAllowed, ErrPathNotFound,
//	ErrCorruptDocument
package core
