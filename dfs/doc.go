// Package dfs implements depth-first search traversal and topological sort
// on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre-order (OnVisit) and post-order (OnExit) hooks, and a forest
//     mode (WithFullTraversal) that restarts from every unvisited vertex.
//   - TopologicalSort: linear ordering of a directed acyclic graph such that
//     every edge u→v places u before v; ErrCycleDetected otherwise.
//
// Why:
//
//   - Roll up directory sizes bottom-up (post-order).
//   - Evaluate a wire circuit in dependency order.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option / Options: functional options for DFS
//   - Result: post-order, Depth, Parent, Visited
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - ErrUndirected           TopologicalSort called on an undirected graph
//   - hook errors             propagated from OnVisit or OnExit
package dfs
