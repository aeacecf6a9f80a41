package cluster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikar/spectra/cluster"
)

// TestDetect_Barbell: greedy merging recovers the two-triangle
// communities with Q = 5/14.
func TestDetect_Barbell(t *testing.T) {
	c, q, err := cluster.Detect(barbell(t))
	require.NoError(t, err)
	assert.InDelta(t, 5.0/14.0, q, 1e-9)
	assert.Equal(t, 2, c.NumberOfClusters())

	for _, pair := range [][2]int{{0, 1}, {0, 2}, {3, 4}, {3, 5}} {
		same, serr := c.SameCluster(pair[0], pair[1])
		require.NoError(t, serr)
		assert.True(t, same, "vertices %v share a triangle", pair)
	}
	cross, err := c.SameCluster(0, 3)
	require.NoError(t, err)
	assert.False(t, cross, "the bridge must separate the communities")
}

// TestDetect_Triangle: a clique never splits; the best level is the
// single cluster at Q = 0.
func TestDetect_Triangle(t *testing.T) {
	c, q, err := cluster.Detect(triangle(t))
	require.NoError(t, err)
	assert.InDelta(t, 0, q, 1e-12)
	assert.Equal(t, 1, c.NumberOfClusters())
}

// TestDetect_SingleVertex degenerates to the one-vertex clustering.
func TestDetect_SingleVertex(t *testing.T) {
	g := buildGraph(t, [][]float64{{0}}, true)
	c, q, err := cluster.Detect(g)
	require.NoError(t, err)
	assert.Equal(t, 1, c.NumberOfClusters())
	assert.Zero(t, q)
}

func TestDetect_Errors(t *testing.T) {
	_, _, err := cluster.Detect(nil)
	assert.ErrorIs(t, err, cluster.ErrNilGraph)
}

// TestDetect_ContextCancellation aborts between merge levels.
func TestDetect_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := cluster.Detect(barbell(t), cluster.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDetectExact_Triangle: exhaustive search over all partitions of the
// 3-clique settles on the single cluster at Q = 0.
func TestDetectExact_Triangle(t *testing.T) {
	c, q, err := cluster.DetectExact(triangle(t))
	require.NoError(t, err)
	assert.InDelta(t, 0, q, 1e-12)
	assert.Equal(t, 1, c.NumberOfClusters())
	assert.Equal(t, []int{0, 0, 0}, c.Assignments())
}

// TestDetectExact_Barbell: the enumeration confirms the greedy optimum.
func TestDetectExact_Barbell(t *testing.T) {
	c, q, err := cluster.DetectExact(barbell(t))
	require.NoError(t, err)
	assert.InDelta(t, 5.0/14.0, q, 1e-9)
	assert.Equal(t, 2, c.NumberOfClusters())
	same, err := c.SameCluster(0, 2)
	require.NoError(t, err)
	assert.True(t, same)
	cross, err := c.SameCluster(2, 3)
	require.NoError(t, err)
	assert.False(t, cross)
}

// TestDetectExact_NeverBelowGreedy: brute force dominates the heuristic
// by construction.
func TestDetectExact_NeverBelowGreedy(t *testing.T) {
	g := buildGraph(t, [][]float64{
		{0, 1, 1, 0, 0},
		{1, 0, 1, 0, 0},
		{1, 1, 0, 1, 0},
		{0, 0, 1, 0, 1},
		{0, 0, 0, 1, 0},
	}, true)

	_, greedyQ, err := cluster.Detect(g)
	require.NoError(t, err)
	_, exactQ, err := cluster.DetectExact(g)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, exactQ+1e-12, greedyQ)
}

func TestDetectExact_Errors(t *testing.T) {
	_, _, err := cluster.DetectExact(nil)
	assert.ErrorIs(t, err, cluster.ErrNilGraph)
}

// TestDetectExact_ContextCancellation aborts between partitions.
func TestDetectExact_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := cluster.DetectExact(triangle(t), cluster.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
