// Package dfs: topological sorting via Kahn's algorithm.
//
// TopologicalSort returns a linear ordering of vertex indices such that
// for every edge u→v, u appears before v. A cyclic graph yields a
// zero-length slice — the only failure signal for cyclicity; callers
// must compare the result length against the vertex count. (An
// undirected graph with any edge is cyclic by this rule, since its
// mirrored edges form two-cycles.)

package dfs

import "github.com/velikar/spectra/core"

// TopologicalSort computes a topological ordering of all vertices using
// Kahn's algorithm with a FIFO frontier seeded in ascending index order
// for determinism. Returns the zero-length slice when the graph contains
// a cycle.
// Errors: ErrNilGraph.
// Complexity: O(V + E).
func TopologicalSort(g *core.Graph) ([]int, error) {
	// 1. Validate the graph pointer
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	order := make([]int, 0, n)

	// 2. Compute in-degrees
	indeg := g.InDegrees()

	// 3. Seed the frontier with every source vertex, ascending
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}

	// 4. Peel sources, decrementing successor in-degrees
	var u int
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		order = append(order, u)

		v, _ := g.VertexAt(u)
		for _, w := range v.Adjacency {
			indeg[w.Index]--
			if indeg[w.Index] == 0 {
				queue = append(queue, w.Index)
			}
		}
	}

	// 5. Leftover vertices mean a cycle: return the zero-length sentinel
	if len(order) != n {
		return []int{}, nil
	}

	return order, nil
}
