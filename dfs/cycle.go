// Package dfs: cycle enumeration over the three-state vertex lifecycle.
// A back-edge into an active vertex emits the cycle formed by the
// portion of the current search path from that vertex onward. The search
// is an explicit work-stack formulation; no language-level recursion.

package dfs

import "github.com/velikar/spectra/core"

// frame tracks one vertex on the explicit DFS stack together with the
// position of the next neighbor to explore.
type frame struct {
	v    *core.Vertex
	next int // index into v.Adjacency
}

// Cycles enumerates the cycles discoverable from start: whenever the
// depth-first search meets an active vertex again (a back-edge), it
// emits the cycle as the slice of vertex indices from the repeated
// vertex along the current path, closed by the repeat. Vertices follow
// initial → active → ready strictly; a vertex never re-enters an earlier
// state.
// Errors: ErrNilGraph, core.ErrVertexNotFound.
// Complexity: O(V + E) traversal plus the total length of emitted cycles.
func Cycles(g *core.Graph, start int) ([][]int, error) {
	if err := validate(g, start); err != nil {
		return nil, err
	}
	g.ResetTraversal()

	return cyclesFrom(g, start, false), nil
}

// HasCycles reports whether the graph contains any cycle, driving the
// same search from every still-initial vertex and stopping at the first
// back-edge.
// Errors: ErrNilGraph.
// Complexity: O(V + E).
func HasCycles(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	g.ResetTraversal()

	for i := 0; i < g.Order(); i++ {
		v, _ := g.VertexAt(i)
		if v.State() != core.StateInitial {
			continue
		}
		if found := cyclesFrom(g, i, true); len(found) > 0 {
			return true, nil
		}
	}

	return false, nil
}

// cyclesFrom runs the work-stack cycle search from start. When firstOnly
// is set, the search aborts after the first emitted cycle.
func cyclesFrom(g *core.Graph, start int, firstOnly bool) [][]int {
	startV, _ := g.VertexAt(start)
	if startV.State() != core.StateInitial {
		return nil
	}

	var cycles [][]int
	// path mirrors the active frames as vertex indices, for cycle extraction
	path := make([]int, 0, g.Order())
	startV.Activate()
	stack := []frame{{v: startV}}
	path = append(path, start)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 1. Frame exhausted: active → ready, pop the path
		if top.next >= len(top.v.Adjacency) {
			top.v.Finish()
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]

			continue
		}

		// 2. Advance to the next neighbor
		w := top.v.Adjacency[top.next]
		top.next++

		switch w.State() {
		case core.StateActive:
			// Back-edge: emit the cycle from w's position on the path
			pos := 0
			for path[pos] != w.Index {
				pos++
			}
			cyc := make([]int, 0, len(path)-pos+1)
			cyc = append(cyc, path[pos:]...)
			cyc = append(cyc, w.Index) // close the walk
			cycles = append(cycles, cyc)
			if firstOnly {
				return cycles
			}
		case core.StateInitial:
			// Descend
			w.Activate()
			stack = append(stack, frame{v: w})
			path = append(path, w.Index)
		case core.StateReady:
			// Fully explored; nothing to do
		}
	}

	return cycles
}
