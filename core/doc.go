// Package core provides the small in-memory Graph shared by the puzzle
// packages: string-identified vertices carrying an integer value, and
// directed or undirected unweighted edges.
//
// What:
//
//   - NewGraph(opts...) builds an empty graph; WithDirected(true) makes new
//     edges one-way, otherwise edges are mirrored.
//   - AddVertex / AddEdge grow the graph; AddEdge creates missing endpoints.
//   - Neighbors / NeighborIDs list outgoing edges in insertion order, so every
//     traversal built on top is reproducible run to run.
//   - SetValue / Value attach one integer per vertex (flow rate, size, height).
//
// Why:
//
//   - Valve tunnels, directory trees, wire circuits and heightmaps are all
//     small graphs keyed by a name. One type lets bfs and dfs serve them all.
//
// Determinism:
//
//	Vertices() is sorted lexicographically. Neighbors() follows edge creation
//	order (Edge.Seq ascending).
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop attempted without WithLoops.
//
// Concurrency: a Graph is owned by a single computation and is not safe for
// concurrent mutation.
package core
