// Package gridgraph treats a rectangular block of text as a grid of byte cells
// and, on demand, as a graph.
//
// What:
//
//   - Parse builds a Grid from newline-separated rows of equal length.
//   - Cell access by (x, y) with x growing right and y growing down.
//   - Neighbors under Conn4 (N, E, S, W) or Conn8 (adds diagonals).
//   - Ray walks from a cell in a fixed direction to the edge.
//   - ToCoreGraph converts the grid into a directed *core.Graph whose edges
//     are filtered by a caller predicate (e.g. "climb at most one").
//
// Complexity:
//
//   - Parse, FindAll, ToCoreGraph: O(W×H)
//   - At, Set, InBounds, Index, Coordinate: O(1)
//   - Ray: O(max(W, H))
//
// Errors:
//
//   - ErrEmptyGrid       the input has no rows or an empty first row
//   - ErrNonRectangular  rows have differing lengths
//   - ErrBadVertexID     ParseVertexID got something other than "x,y"
package gridgraph
