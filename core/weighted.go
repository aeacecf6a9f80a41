// Package core: the WeightedGraph specialization.
// A WeightedGraph derives its adjacency from a weight matrix by the rule
// "edge present iff weight ∉ {0, +Inf}": a missing edge is encoded by
// +Inf, a zero weight means no edge.

package core

import (
	"fmt"
	"math"

	"github.com/velikar/spectra/matrix"
)

// WeightedGraph is a Graph that additionally owns an n×n weight matrix.
// adjacency[i][j] == 1 iff weight[i][j] is neither 0 nor +Inf.
type WeightedGraph struct {
	Graph

	weight *matrix.Dense
}

// NewWeightedGraph constructs a WeightedGraph from vertex names and a
// weight matrix. names may be nil (index labels). For an undirected
// graph the weight matrix must be symmetric.
// Errors: ErrNilMatrix, ErrInvalidStructure.
// Complexity: O(n²).
func NewWeightedGraph(names []string, weight *matrix.Dense, undirected bool) (*WeightedGraph, error) {
	// 1. Validate the weight matrix shape and symmetry
	if weight == nil {
		return nil, ErrNilMatrix
	}
	n := weight.Rows()
	if weight.Cols() != n {
		return nil, fmt.Errorf("weight %dx%d: %w", n, weight.Cols(), ErrInvalidStructure)
	}
	var i, j int
	var wij, wji float64
	if undirected {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				wij, _ = weight.At(i, j)
				wji, _ = weight.At(j, i)
				if wij != wji && math.Abs(wij-wji) > matrix.Epsilon {
					return nil, fmt.Errorf("asymmetric weight at (%d,%d): %w", i, j, ErrInvalidStructure)
				}
			}
		}
	}

	// 2. Derive the 0/1 adjacency: edge present iff weight ∉ {0, +Inf}
	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("weighted graph: %w", err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			wij, _ = weight.At(i, j)
			if wij != 0 && !math.IsInf(wij, 1) {
				_ = adj.Set(i, j, 1)
			}
		}
	}

	// 3. Construct the underlying graph over the derived adjacency
	g, err := newGraph(names, adj, undirected, true)
	if err != nil {
		return nil, err
	}

	return &WeightedGraph{Graph: *g, weight: weight.Clone()}, nil
}

// Weight returns the weight of the edge i→j. A missing edge reports
// +Inf by the encoding rule.
// Errors: ErrVertexNotFound for an index outside [0, n).
func (g *WeightedGraph) Weight(i, j int) (float64, error) {
	n := g.Order()
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %d: %w", i, ErrVertexNotFound)
	}
	if j < 0 || j >= n {
		return 0, fmt.Errorf("index %d: %w", j, ErrVertexNotFound)
	}
	w, _ := g.weight.At(i, j)

	return w, nil
}

// WeightMatrix returns a defensive copy of the weight matrix.
// Complexity: O(n²).
func (g *WeightedGraph) WeightMatrix() *matrix.Dense { return g.weight.Clone() }
