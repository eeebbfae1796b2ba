// Package gridgraph treats a 2D grid of cells as an implicit graph and as a
// source of search problems.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Problem(start, goal): route finding over passable cells, unit cost per
//     orthogonal step and √2 per diagonal step, with Manhattan and Octile
//     heuristics, and Predecessors for bidirectional search.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (uniform-cost search over BridgeProblem)
//     to connect two islands.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d×log(W×H)), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds, ErrBlocked: unusable route endpoint.
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
