// Package cluster implements community detection on graphs: a
// vertex-to-cluster partition model (Clustering), Newman modularity
// scoring, a greedy agglomerative search (Detect), and exhaustive
// partition enumeration for small graphs (DetectExact).
//
// A Clustering assigns every vertex an integer cluster id; ids are kept
// contiguous in [0, NumberOfClusters) at all times, including after
// Merge, which dissolves the higher id into the lower and renumbers the
// rest downward.
//
// Modularity Q lies in [-1, 1] and measures how much denser the
// intra-cluster edges are than a degree-preserving random null model:
//
//	Q = (1/2m) Σ_{i,j in same cluster} (A_ij − k_i^out · k_j^in / 2m)
//
// Directed graphs use out- and in-degrees; undirected graphs use plain
// degrees on both sides. An edgeless graph scores 0.
//
// Detect starts from the all-singleton clustering and performs n-1
// greedy merge levels, each time applying the pairwise merge with the
// highest resulting modularity, and returns the best clustering seen
// across all levels. DetectExact enumerates every set partition via
// restricted growth strings; the Bell number grows super-exponentially,
// so callers must guard the input size themselves (roughly n ≤ 14 stays
// tractable). Both accept WithContext for cancellation between
// evaluation steps; computation order is fixed, so results stay
// deterministic.
//
// Complexity:
//
//   - Modularity:  O(V²)
//   - Detect:      O(V⁵) (O(V³) candidate merges, O(V²) scoring each)
//   - DetectExact: O(Bell(V) · V²)
//
// Errors:
//
//   - ErrNilGraph             if g is nil.
//   - ErrNilClustering        if a nil *Clustering is passed in.
//   - ErrInvalidAssignment    if an assignment slice is empty or has
//     non-contiguous cluster ids.
//   - ErrClusterNotFound      if a cluster id is outside [0, k).
//   - ErrLengthMismatch       if a clustering's size differs from the
//     graph order.
//   - core.ErrVertexNotFound  if a vertex index is outside [0, n).
package cluster
