// Package hashimoto builds non-backtracking ("Hashimoto") matrices over
// a graph's oriented edges and scores network relevance from them.
//
// The Hashimoto matrix B is square over oriented edge instances
// (self-loops ignored): B[k][l] = 1 iff edge k's head equals edge l's
// tail and edge k's tail differs from edge l's head — valid two-edge
// walks that do not immediately reverse.
//
// Edge labeling: for a symmetric (undirected) adjacency the first m ids
// are the forward edges (tail < head) and id k+m is the mirror of id k,
// so mutual reverses sit exactly m apart. Directed graphs enumerate
// oriented edges in row-major adjacency order.
//
// The Modifiable form supports virtual single-node removal without
// recomputation: alongside B it keeps the linking vertex of every row
// (the head of edge k), so removing node i reduces to an integer
// comparison at evaluation time. Evaluating at id -1 — or any id outside
// [0, n) — reproduces the full Hashimoto matrix exactly.
//
// Relevance: relevance[i] = max_j λ(M(j)) − λ(M(i)), where M(i) is the
// Hashimoto matrix with node i virtually removed and λ is the dominant
// eigenvalue. Higher relevance means removing that node shrinks the
// graph's dominant eigenvalue more. Computing it needs one dominant-
// eigenvalue run per vertex, each on an E×E matrix — the single most
// expensive operation in the library; guard call sites accordingly.
//
// Errors:
//
//	ErrNilGraph - the provided *core.Graph is nil.
//	ErrNoEdges  - the graph has no oriented edges (no Hashimoto matrix exists).
package hashimoto
