// Package core: degree accessors, Laplacian, and subgraph extraction.

package core

import (
	"fmt"

	"github.com/velikar/spectra/matrix"
)

// OutDegrees returns the out-degree of every vertex (row sums of the
// adjacency matrix). For undirected graphs this equals Degrees.
// Complexity: O(n²).
func (g *Graph) OutDegrees() []int {
	n := len(g.vertices)
	out := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.hasEdge(i, j) {
				out[i]++
			}
		}
	}

	return out
}

// InDegrees returns the in-degree of every vertex (column sums of the
// adjacency matrix). For undirected graphs this equals Degrees.
// Complexity: O(n²).
func (g *Graph) InDegrees() []int {
	n := len(g.vertices)
	in := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.hasEdge(j, i) {
				in[i]++
			}
		}
	}

	return in
}

// Degrees returns the degree of every vertex. For undirected graphs this
// is the row sum; for directed graphs it is in-degree plus out-degree.
// Complexity: O(n²).
func (g *Graph) Degrees() []int {
	if g.undirected {
		return g.OutDegrees()
	}
	in := g.InDegrees()
	out := g.OutDegrees()
	for i := range out {
		out[i] += in[i]
	}

	return out
}

// DegreeOf returns the degree of a single vertex.
// Errors: ErrVertexNotFound.
func (g *Graph) DegreeOf(i int) (int, error) {
	if i < 0 || i >= len(g.vertices) {
		return 0, fmt.Errorf("index %d: %w", i, ErrVertexNotFound)
	}

	return g.Degrees()[i], nil
}

// Laplacian computes the graph Laplacian.
//
// Undirected: L[i][i] = degree(i) − selfloop(i), L[i][j] = −A[i][j] for
// i ≠ j. Directed: the symmetrized form over S = (A + Aᵀ)/2 with
// diagonal (outdeg(i)+indeg(i))/2 − S[i][i].
// Complexity: O(n²).
func (g *Graph) Laplacian() (*matrix.Dense, error) {
	n := len(g.vertices)
	lap, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("laplacian: %w", err)
	}

	var i, j int
	var aij, aji, s float64
	if g.undirected {
		deg := g.OutDegrees()
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				aij, _ = g.adjacency.At(i, j)
				if i == j {
					// degree minus self-loop on the diagonal
					_ = lap.Set(i, i, float64(deg[i])-aij)
				} else {
					_ = lap.Set(i, j, -aij)
				}
			}
		}

		return lap, nil
	}

	// Directed: average the in/out structure into a symmetric Laplacian
	in := g.InDegrees()
	out := g.OutDegrees()
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij, _ = g.adjacency.At(i, j)
			aji, _ = g.adjacency.At(j, i)
			s = (aij + aji) / 2
			if i == j {
				_ = lap.Set(i, i, float64(out[i]+in[i])/2-s)
			} else {
				_ = lap.Set(i, j, -s)
			}
		}
	}

	return lap, nil
}

// Subgraph extracts the induced subgraph over the given vertex indices,
// re-indexing the returned graph's vertices contiguously from 0 in the
// order provided. Names are carried over.
// Errors: ErrVertexNotFound when any requested index is outside [0, n).
// Complexity: O(k²) for k requested vertices.
func (g *Graph) Subgraph(indices []int) (*Graph, error) {
	// 1. Validate every requested index
	n := len(g.vertices)
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("subgraph index %d: %w", idx, ErrVertexNotFound)
		}
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("subgraph of zero vertices: %w", ErrInvalidStructure)
	}

	// 2. Build the induced adjacency and carried names
	k := len(indices)
	sub, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, fmt.Errorf("subgraph: %w", err)
	}
	names := make([]string, k)
	var i, j int
	for i = 0; i < k; i++ {
		names[i] = g.vertices[indices[i]].Name
		for j = 0; j < k; j++ {
			if g.hasEdge(indices[i], indices[j]) {
				_ = sub.Set(i, j, 1)
			}
		}
	}

	// 3. Re-validate through the public constructor (re-indexes from 0)
	return newGraph(names, sub, g.undirected, g.weighted)
}
