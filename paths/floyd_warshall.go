// Package paths: Floyd-Warshall all-pairs relaxation.

package paths

import (
	"math"

	"github.com/velikar/spectra/core"
	"github.com/velikar/spectra/matrix"
)

// FloydWarshall computes all-pairs shortest distances by dynamic
// programming over allowed intermediate vertices. It returns the n×n
// distance matrix and a next table recording, for each pair (i, j), the
// intermediate vertex through which the shortest path was last improved,
// or NoPredecessor (-1) when the path is a direct edge (or no path
// exists). Path reconstruction recurses: path(i, j) = path(i, k) +
// path(k, j) for k = next[i][j].
//
// Distances are initialized to 0 on the diagonal, the edge weight where
// an edge is present, and +Inf otherwise. Negative edge weights are
// handled; a negative cycle leaves affected distances undefined.
// Errors: ErrNilGraph.
// Complexity: O(V³); space O(V²).
func FloydWarshall(g *core.WeightedGraph) (*matrix.Dense, [][]int, error) {
	// 1. Validate the graph pointer
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.Order()

	// 2. Initialize the distance matrix and the next table
	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	next := make([][]int, n)
	var i, j, k int
	var w float64
	var present bool
	for i = 0; i < n; i++ {
		next[i] = make([]int, n)
		for j = 0; j < n; j++ {
			next[i][j] = NoPredecessor
			present, _ = g.HasEdge(i, j)
			switch {
			case i == j:
				// diagonal stays 0
			case present:
				w, _ = g.Weight(i, j)
				_ = dist.Set(i, j, w)
			default:
				_ = dist.Set(i, j, math.Inf(1))
			}
		}
	}

	// 3. Triple loop: allow one more intermediate vertex per outer pass
	var dik, dkj, cand, cur float64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			dik, _ = dist.At(i, k)
			if math.IsInf(dik, 1) {
				continue // no path into k from i
			}
			for j = 0; j < n; j++ {
				dkj, _ = dist.At(k, j)
				if math.IsInf(dkj, 1) {
					continue
				}
				cand = dik + dkj
				cur, _ = dist.At(i, j)
				if cand < cur {
					_ = dist.Set(i, j, cand)
					next[i][j] = k
				}
			}
		}
	}

	return dist, next, nil
}
