package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikar/spectra/core"
	"github.com/velikar/spectra/dfs"
)

// names extracts the vertex names of a component subgraph, which carry
// the original indices as labels.
func names(t *testing.T, g *core.Graph) []string {
	t.Helper()
	out := make([]string, 0, g.Order())
	for _, v := range g.Vertices() {
		out = append(out, v.Name)
	}

	return out
}

// TestSCC_Errors covers nil and out-of-range input.
func TestSCC_Errors(t *testing.T) {
	_, err := dfs.StronglyConnectedComponents(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)

	g := buildGraph(t, [][]float64{{0, 1}, {0, 0}}, false)
	_, err = dfs.StronglyConnectedComponents(g, 2)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestSCC_TwoComponents: a 2-cycle feeding a 2-cycle splits into two
// components, completed in reverse topological order.
func TestSCC_TwoComponents(t *testing.T) {
	// {0,1} cycle → {2,3} cycle via edge 1→2
	g := buildGraph(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}, false)

	comps, err := dfs.StronglyConnectedComponents(g, 0)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	// Tarjan completes the sink component {2,3} first
	assert.Equal(t, []string{"2", "3"}, names(t, comps[0]))
	assert.Equal(t, []string{"0", "1"}, names(t, comps[1]))

	// each component keeps its internal cycle edge
	ok, err := comps[0].HasEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = comps[0].HasEdge(1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestSCC_Singletons: a DAG decomposes into one component per vertex.
func TestSCC_Singletons(t *testing.T) {
	g := buildGraph(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	}, false)

	comps, err := dfs.StronglyConnectedComponents(g, 0)
	require.NoError(t, err)
	require.Len(t, comps, 3)
	for _, c := range comps {
		assert.Equal(t, 1, c.Order())
	}
}

// TestSCC_SingleStrongComponent: a full directed cycle is one component.
func TestSCC_SingleStrongComponent(t *testing.T) {
	g := buildGraph(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}, false)

	comps, err := dfs.StronglyConnectedComponents(g, 0)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, 3, comps[0].Order())
	assert.Equal(t, []string{"0", "1", "2"}, names(t, comps[0]))
}

// TestSCC_ReachableOnly: components not reachable from the start vertex
// are not discovered.
func TestSCC_ReachableOnly(t *testing.T) {
	// {0} alone; the cycle {1,2} is unreachable from 0
	g := buildGraph(t, [][]float64{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
	}, false)

	comps, err := dfs.StronglyConnectedComponents(g, 0)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, 1, comps[0].Order())
}
