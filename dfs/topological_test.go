package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikar/spectra/dfs"
)

// position returns the index of v in order, or -1 when absent.
func position(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// TestTopologicalSort_NilGraph rejects nil.
func TestTopologicalSort_NilGraph(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)
}

// TestTopologicalSort_Chain: the path 0→1→2 has exactly one ordering.
func TestTopologicalSort_Chain(t *testing.T) {
	g := buildGraph(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	}, false)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestTopologicalSort_Diamond checks every edge precedence over the
// branching DAG 0→{1,2}→3.
func TestTopologicalSort_Diamond(t *testing.T) {
	g := buildGraph(t, [][]float64{
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}, false)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)
	assert.Less(t, position(order, 0), position(order, 1))
	assert.Less(t, position(order, 0), position(order, 2))
	assert.Less(t, position(order, 1), position(order, 3))
	assert.Less(t, position(order, 2), position(order, 3))
}

// TestTopologicalSort_EdgelessAscending: sources are seeded in ascending
// index order for determinism.
func TestTopologicalSort_EdgelessAscending(t *testing.T) {
	g := buildGraph(t, [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}, false)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestTopologicalSort_CycleSentinel: a cyclic graph yields the
// zero-length slice, the only failure signal.
func TestTopologicalSort_CycleSentinel(t *testing.T) {
	g := buildGraph(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}, false)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Len(t, order, 0)
}

// TestTopologicalSort_UndirectedEdgeIsCyclic: mirrored undirected edges
// form two-cycles, so any undirected graph with an edge hits the sentinel.
func TestTopologicalSort_UndirectedEdgeIsCyclic(t *testing.T) {
	g := buildGraph(t, [][]float64{
		{0, 1},
		{1, 0},
	}, true)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Len(t, order, 0)
}

// TestTopologicalSort_PartialCycle: an acyclic prefix feeding a cycle
// still returns the sentinel, not the prefix.
func TestTopologicalSort_PartialCycle(t *testing.T) {
	// 0→1, then 1⇄2
	g := buildGraph(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 1, 0},
	}, false)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Len(t, order, 0)
}
