// Package core: the Graph type — construction, validation, and
// structural accessors over the adjacency-matrix model.

package core

import (
	"fmt"
	"math"
	"strconv"

	"github.com/velikar/spectra/matrix"
)

// Graph is the adjacency-matrix-backed graph core.
//
// It owns a vertex array of size n and an n×n 0/1 adjacency matrix;
// adjacency[i][j] == 1 iff vertex i has an edge to vertex j. Topology is
// immutable after construction; the derived edge count is cached.
type Graph struct {
	vertices   []*Vertex
	adjacency  *matrix.Dense // n×n, entries ∈ {0,1}
	undirected bool
	weighted   bool
	numEdges   int // derived at construction
}

// NewGraph constructs a Graph from vertex names and a 0/1 adjacency
// matrix. names may be nil, in which case vertices are labeled by their
// index; otherwise len(names) must equal the matrix dimension. For an
// undirected graph the matrix must be symmetric.
// Errors: ErrNilMatrix, ErrInvalidStructure.
// Complexity: O(n²).
func NewGraph(names []string, adjacency *matrix.Dense, undirected bool) (*Graph, error) {
	return newGraph(names, adjacency, undirected, false)
}

// newGraph is the shared constructor behind NewGraph and NewWeightedGraph.
func newGraph(names []string, adjacency *matrix.Dense, undirected, weighted bool) (*Graph, error) {
	// 1. Validate the matrix: non-nil, square, binary, symmetric if undirected
	if adjacency == nil {
		return nil, ErrNilMatrix
	}
	n := adjacency.Rows()
	if adjacency.Cols() != n {
		return nil, fmt.Errorf("adjacency %dx%d: %w", n, adjacency.Cols(), ErrInvalidStructure)
	}
	if names != nil && len(names) != n {
		return nil, fmt.Errorf("%d names for %d vertices: %w", len(names), n, ErrInvalidStructure)
	}
	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij, _ = adjacency.At(i, j)
			if math.Abs(aij) > matrix.Epsilon && math.Abs(aij-1) > matrix.Epsilon {
				return nil, fmt.Errorf("adjacency[%d][%d]=%g not in {0,1}: %w", i, j, aij, ErrInvalidStructure)
			}
			if undirected && j > i {
				aji, _ = adjacency.At(j, i)
				if math.Abs(aij-aji) > matrix.Epsilon {
					return nil, fmt.Errorf("asymmetric at (%d,%d): %w", i, j, ErrInvalidStructure)
				}
			}
		}
	}

	// 2. Build the vertex array
	g := &Graph{
		vertices:   make([]*Vertex, n),
		adjacency:  adjacency.Clone(),
		undirected: undirected,
		weighted:   weighted,
	}
	for i = 0; i < n; i++ {
		name := strconv.Itoa(i)
		if names != nil {
			name = names[i]
		}
		g.vertices[i] = &Vertex{Index: i, Name: name, Distance: math.Inf(1)}
	}

	// 3. Mirror adjacency rows into per-vertex back-reference slices
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.hasEdge(i, j) {
				g.vertices[i].Adjacency = append(g.vertices[i].Adjacency, g.vertices[j])
			}
		}
	}

	// 4. Cache the derived edge count
	g.numEdges = g.computeNumberOfEdges()

	return g, nil
}

// computeNumberOfEdges sums the adjacency matrix, counting only the
// upper triangle (diagonal included) for undirected graphs to avoid
// double counting.
// Complexity: O(n²).
func (g *Graph) computeNumberOfEdges() int {
	n := len(g.vertices)
	count := 0
	var i, j int
	for i = 0; i < n; i++ {
		j = 0
		if g.undirected {
			j = i // upper triangle only
		}
		for ; j < n; j++ {
			if g.hasEdge(i, j) {
				count++
			}
		}
	}

	return count
}

// hasEdge reads the adjacency matrix without bounds diagnostics; callers
// guarantee valid indices.
func (g *Graph) hasEdge(i, j int) bool {
	v, _ := g.adjacency.At(i, j)

	return v > 0.5
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// Undirected reports whether the graph is undirected.
func (g *Graph) Undirected() bool { return g.undirected }

// Weighted reports whether the graph carries edge weights.
func (g *Graph) Weighted() bool { return g.weighted }

// NumberOfEdges returns the cached edge count (undirected edges counted once).
func (g *Graph) NumberOfEdges() int { return g.numEdges }

// Vertices returns the vertex array. The slice is a copy; the *Vertex
// entries are the graph's own (transient fields are shared by design so
// traversals can annotate them).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexAt returns the vertex with the given index.
// Errors: ErrVertexNotFound when i is outside [0, n).
func (g *Graph) VertexAt(i int) (*Vertex, error) {
	if i < 0 || i >= len(g.vertices) {
		return nil, fmt.Errorf("index %d: %w", i, ErrVertexNotFound)
	}

	return g.vertices[i], nil
}

// Adjacency returns a defensive copy of the adjacency matrix.
// Complexity: O(n²).
func (g *Graph) Adjacency() *matrix.Dense { return g.adjacency.Clone() }

// HasEdge reports whether an edge i→j exists.
// Errors: ErrVertexNotFound for an index outside [0, n).
func (g *Graph) HasEdge(i, j int) (bool, error) {
	n := len(g.vertices)
	if i < 0 || i >= n {
		return false, fmt.Errorf("index %d: %w", i, ErrVertexNotFound)
	}
	if j < 0 || j >= n {
		return false, fmt.Errorf("index %d: %w", j, ErrVertexNotFound)
	}

	return g.hasEdge(i, j), nil
}

// ResetTraversal returns every vertex to the initial traversal state.
// Called by each algorithm before it runs.
// Complexity: O(n).
func (g *Graph) ResetTraversal() {
	for _, v := range g.vertices {
		v.ResetState()
	}
}
