// Package spectra is an in-memory engine for weighted and unweighted
// graphs with a spectral-analysis core — from adjacency primitives to
// non-backtracking matrices and modularity clustering.
//
// What is spectra?
//
//	A dense, deterministic graph library that brings together:
//		• Core primitives: adjacency-matrix-backed graphs with contiguous vertex indices
//		• Matrix kernel: LU (Crout, partial pivoting), QR, determinant, inverse, Kronecker products
//		• Spectral tools: power-iteration dominant eigenvalues, Hashimoto (non-backtracking) matrices,
//		  network-relevance scoring via virtual single-node removal
//		• Traversals: BFS, DFS (iterative and recursive), cycle enumeration, Tarjan SCC, topological sort
//		• Shortest paths: Dijkstra, Bellman-Ford, Floyd-Warshall
//		• Clustering: modularity scoring, greedy agglomerative merging, exhaustive partition search
//
// Why choose spectra?
//
//   - Deterministic by design – fixed iteration orders, documented epsilon tolerances
//   - Clear failure surfaces – sentinel errors per package, matched via errors.Is
//   - Minimal dependencies – gonum only for the full eigendecomposition routine
//
// Everything is organized under flat subpackages:
//
//	core/      — Graph, WeightedGraph, Vertex types and structural accessors
//	matrix/    — dense linear-algebra kernel (Dense type and operations)
//	hashimoto/ — non-backtracking matrices and relevance scoring
//	bfs/       — breadth-first search
//	dfs/       — depth-first search, cycles, SCC, topological sort
//	paths/     — single-source and all-pairs shortest paths
//	cluster/   — modularity-based clustering
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a square: four vertices, four undirected edges, adjacency matrix 4×4.
//
//	go get github.com/velikar/spectra
package spectra
