// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, predecessor links, and
// visit order, or locating a single goal vertex.
//
// BFS explores vertices in increasing edge-distance from a start vertex
// using a FIFO queue. Search reports the goal's index once reached and
// -1 after exhausting all reachable vertices — unreachability is a
// sentinel result, not an error.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and result arrays
//
// Errors:
//
//   - ErrNilGraph        if g is nil.
//   - ErrVertexNotFound  if the start or goal index is outside [0, n).
package bfs
