// Package gridgraph imports a terrain map into a scenic-area graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. A cell with value ≥
//     LandThreshold is walkable and its value is the terrain cost (1 = flat
//     meadow, higher = steeper); anything lower is impassable.
//   - Populate adds one spot per walkable cell, in row-major order, and one
//     path per pair of walkable neighbours under Conn4 or Conn8.
//   - Path distance is CellSize meters (diagonals CellSize·√2, rounded);
//     duration is the higher terrain cost of the two cells times
//     MinutesPerUnit.
//   - ConnectedComponents reports the walkable "islands", so a caller can
//     tell before routing which parts of the map cannot reach each other.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H)      time and memory (deep copy).
//   - Populate:            O(W×H×d)    time, d = 4 or 8.
//   - ConnectedComponents: O(W×H×d)    time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadOption: threshold, cell size or minutes-per-unit below 1.
//   - ErrGraphNotEmpty: Populate target already has spots.
package gridgraph
