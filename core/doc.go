// Package core defines the central Graph, WeightedGraph, and Vertex
// types: an adjacency-matrix-backed graph model with contiguous integer
// vertex indices, supporting directed/undirected and weighted/unweighted
// variants.
//
// Structural invariants (validated at construction, preserved after):
//
//   - vertex indices span [0, n) contiguously and uniquely;
//   - adjacency is an n×n 0/1 matrix; for undirected graphs it is
//     symmetric;
//   - Vertex.Adjacency mirrors the vertex's adjacency-matrix row exactly:
//     it holds back-references into the graph's vertex array, never
//     copies;
//   - for WeightedGraph, adjacency[i][j] == 1 iff weight[i][j] is neither
//     0 nor +Inf (a missing edge is encoded by +Inf).
//
// Topology is immutable after construction. Algorithms mutate only the
// transient per-vertex fields (Marked, InProcess, Distance, Predecessor),
// which follow a three-state lifecycle: initial → active → ready. The
// combination "marked and in process" is unreachable; Vertex.State
// asserts against it.
//
// Errors:
//
//	ErrNilGraph         - graph pointer is nil.
//	ErrNilMatrix        - adjacency/weight matrix is nil.
//	ErrInvalidStructure - non-square matrix, dimension mismatch with the
//	                      vertex list, non-0/1 adjacency entries, or
//	                      asymmetry on a declared-undirected graph.
//	ErrVertexNotFound   - an operation referenced a vertex index outside
//	                      [0, n).
package core
