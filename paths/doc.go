// Package paths implements shortest-path algorithms on weighted graphs:
// Dijkstra (min-heap, lazy decrease-key), Bellman-Ford, and
// Floyd-Warshall all-pairs relaxation.
//
// All three operate on core.WeightedGraph, where a missing edge carries
// weight +Inf and a zero weight means no edge. Unreachable vertices keep
// a distance of +Inf and a predecessor of -1.
//
// Negative weights: by textbook contract Dijkstra requires non-negative
// weights, and Bellman-Ford distances are undefined under a reachable
// negative cycle. Neither condition is validated by default; the
// algorithms silently proceed. Opt-in strictness is available:
// WithNegativeWeightCheck makes Dijkstra fail fast with
// ErrNegativeWeight; WithNegativeCycleCheck makes Bellman-Ford run its
// extra relaxation pass and report ErrNegativeCycle.
//
// Complexity:
//
//   - Dijkstra:       O((V + E) log V) with the lazy-decrease-key heap
//   - Bellman-Ford:   O(V · E)
//   - Floyd-Warshall: O(V³)
//
// Errors:
//
//   - ErrNilGraph            if g is nil.
//   - core.ErrVertexNotFound if the source or target index is outside [0, n).
//   - ErrNegativeWeight      only when WithNegativeWeightCheck is set.
//   - ErrNegativeCycle       only when WithNegativeCycleCheck is set.
package paths
