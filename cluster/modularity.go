// Package cluster: Newman modularity scoring.

package cluster

import "github.com/velikar/spectra/core"

// Modularity scores how well the clustering c partitions the graph g:
//
//	Q = (1/2m) Σ_{i,j: same cluster} (A_ij − k_i^out · k_j^in / 2m)
//
// with m the number of edges. Directed graphs use out-degrees on the row
// side and in-degrees on the column side; undirected graphs use plain
// degrees on both, with A_ij counted in both orientations. Q lies in
// [-1, 1] up to floating tolerance; an edgeless graph scores 0.
// Errors: ErrNilGraph, ErrNilClustering, ErrLengthMismatch.
// Complexity: O(V²).
func Modularity(g *core.Graph, c *Clustering) (float64, error) {
	// 1. Validate inputs
	if g == nil {
		return 0, ErrNilGraph
	}
	if c == nil {
		return 0, ErrNilClustering
	}
	n := g.Order()
	if c.Size() != n {
		return 0, ErrLengthMismatch
	}

	// 2. Edgeless graphs have no null model to compare against
	m := float64(g.NumberOfEdges())
	if m == 0 {
		return 0, nil
	}

	// 3. Pick the degree vectors for the null model
	var kout, kin []int
	if g.Undirected() {
		deg := g.Degrees()
		kout, kin = deg, deg
	} else {
		kout, kin = g.OutDegrees(), g.InDegrees()
	}

	// 4. Accumulate over ordered intra-cluster pairs
	adj := g.Adjacency()
	twoM := 2 * m
	var q, a float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if c.assign[i] != c.assign[j] {
				continue
			}
			a, _ = adj.At(i, j)
			q += a - float64(kout[i])*float64(kin[j])/twoM
		}
	}

	return q / twoM, nil
}
