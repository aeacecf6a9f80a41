// Package dfs implements depth-first search and the algorithms layered
// on it: cycle enumeration, strongly connected components, and
// topological sorting over a core.Graph.
//
// Two search forms are provided — an iterative, index-driven form
// (Search) and a recursive, vertex-driven form (SearchRecursive) — with
// identical reachability results; only the discovery order may differ,
// and that order is not a contract.
//
// Vertex lifecycle: every traversal drives vertices through the
// three-state machine initial → active → ready. A vertex never returns
// from active to initial, nor leaves ready; the combined "marked and in
// process" state is unreachable and asserted against by core.Vertex.
// Cycle and SCC discovery use explicit work stacks rather than
// language-level recursion, so deep graphs cannot overflow the stack.
//
// TopologicalSort is Kahn's algorithm. On a cyclic graph it returns a
// zero-length slice — this sentinel is the only failure signal; callers
// must compare the result length against the vertex count.
//
// Complexity:
//
//   - Search/SearchRecursive/TopologicalSort: O(V + E)
//   - Cycles: O(V + E) traversal plus the length of every emitted cycle
//   - StronglyConnectedComponents: O(V + E) Tarjan plus subgraph builds
//
// Errors:
//
//   - ErrNilGraph             if g is nil.
//   - core.ErrVertexNotFound  if a start or goal index is outside [0, n).
package dfs
