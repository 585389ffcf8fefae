// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook; returning ErrStop from it ends the search early and cleanly.
//   - Per-edge filtering via WithFilterNeighbor (e.g. the hill-climbing rule).
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Fewest steps on a heightmap, tunnel distances between valves: both are
//     unweighted shortest paths in O(V + E).
//
// Determinism
//
//	core.Graph returns neighbours in edge-creation order and BFS enqueues them
//	in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "AA")
//	steps, ok := res.DistanceTo("HH")
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return climbable(curr, nbr) }),
//	    bfs.WithOnVisit(func(id string, depth int) error {
//	        if id == goal {
//	            return bfs.ErrStop
//	        }
//	        return nil
//	    }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped OnVisit errors other than ErrStop.
package bfs
