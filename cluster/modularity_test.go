package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikar/spectra/cluster"
	"github.com/velikar/spectra/core"
	"github.com/velikar/spectra/matrix"
)

// buildGraph constructs a graph from adjacency rows or fails the test.
func buildGraph(t *testing.T, rows [][]float64, undirected bool) *core.Graph {
	t.Helper()
	adj, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	g, err := core.NewGraph(nil, adj, undirected)
	require.NoError(t, err)

	return g
}

// triangle builds the undirected 3-clique.
func triangle(t *testing.T) *core.Graph {
	t.Helper()

	return buildGraph(t, [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}, true)
}

// barbell builds two triangles joined by the bridge 2-3: the canonical
// two-community graph.
func barbell(t *testing.T) *core.Graph {
	t.Helper()

	return buildGraph(t, [][]float64{
		{0, 1, 1, 0, 0, 0},
		{1, 0, 1, 0, 0, 0},
		{1, 1, 0, 1, 0, 0},
		{0, 0, 1, 0, 1, 1},
		{0, 0, 0, 1, 0, 1},
		{0, 0, 0, 1, 1, 0},
	}, true)
}

// TestModularity_SingleClusterIsZero: with every vertex in one cluster
// the sum telescopes to exactly zero.
func TestModularity_SingleClusterIsZero(t *testing.T) {
	g := triangle(t)
	c, err := cluster.NewClustering([]int{0, 0, 0})
	require.NoError(t, err)

	q, err := cluster.Modularity(g, c)
	require.NoError(t, err)
	assert.InDelta(t, 0, q, 1e-12)
}

// TestModularity_BarbellCommunities: the two-triangle split of the
// barbell scores Q = 5/14.
func TestModularity_BarbellCommunities(t *testing.T) {
	g := barbell(t)
	c, err := cluster.NewClustering([]int{0, 0, 0, 1, 1, 1})
	require.NoError(t, err)

	q, err := cluster.Modularity(g, c)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/14.0, q, 1e-12)
}

// TestModularity_SingletonsNegative: the all-singleton clustering of a
// connected graph scores below zero.
func TestModularity_SingletonsNegative(t *testing.T) {
	g := triangle(t)
	c, err := cluster.NewSingleton(3)
	require.NoError(t, err)

	q, err := cluster.Modularity(g, c)
	require.NoError(t, err)
	assert.Less(t, q, 0.0)
}

// TestModularity_Bounds: any clustering of any graph stays within
// [-1, 1] up to tolerance.
func TestModularity_Bounds(t *testing.T) {
	graphs := []*core.Graph{
		triangle(t),
		barbell(t),
		buildGraph(t, [][]float64{
			{0, 1, 0},
			{0, 0, 1},
			{1, 0, 0},
		}, false),
	}
	for gi, g := range graphs {
		n := g.Order()
		partitions := [][]int{make([]int, n)} // single cluster
		singleton := make([]int, n)
		for i := range singleton {
			singleton[i] = i
		}
		partitions = append(partitions, singleton)

		for pi, assign := range partitions {
			c, err := cluster.NewClustering(assign)
			require.NoError(t, err)
			q, err := cluster.Modularity(g, c)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, q, -1.0-1e-9, "graph %d partition %d", gi, pi)
			assert.LessOrEqual(t, q, 1.0+1e-9, "graph %d partition %d", gi, pi)
		}
	}
}

// TestModularity_DirectedUsesInOutDegrees pins the 2m normalization on
// directed input: the single-cluster 2-cycle scores
// (1/2m)(m - m²/2m) = 1/4.
func TestModularity_DirectedUsesInOutDegrees(t *testing.T) {
	g := buildGraph(t, [][]float64{
		{0, 1},
		{1, 0},
	}, false)
	c, err := cluster.NewClustering([]int{0, 0})
	require.NoError(t, err)

	q, err := cluster.Modularity(g, c)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, q, 1e-12)
}

// TestModularity_EdgelessIsZero: no edges, no null model, Q = 0.
func TestModularity_EdgelessIsZero(t *testing.T) {
	g := buildGraph(t, [][]float64{
		{0, 0},
		{0, 0},
	}, true)
	c, err := cluster.NewClustering([]int{0, 1})
	require.NoError(t, err)

	q, err := cluster.Modularity(g, c)
	require.NoError(t, err)
	assert.Zero(t, q)
}

func TestModularity_Errors(t *testing.T) {
	g := triangle(t)
	c, err := cluster.NewSingleton(3)
	require.NoError(t, err)

	_, err = cluster.Modularity(nil, c)
	assert.ErrorIs(t, err, cluster.ErrNilGraph)
	_, err = cluster.Modularity(g, nil)
	assert.ErrorIs(t, err, cluster.ErrNilClustering)

	short, err := cluster.NewSingleton(2)
	require.NoError(t, err)
	_, err = cluster.Modularity(g, short)
	assert.ErrorIs(t, err, cluster.ErrLengthMismatch)
}
