package dfs

import (
	"errors"
	"fmt"

	"github.com/velikar/spectra/core"
)

// NotFound is the sentinel index returned by the search forms when the
// goal is unreachable from the start vertex.
const NotFound = -1

// ErrNilGraph is returned when a nil *core.Graph is passed in.
var ErrNilGraph = errors.New("dfs: graph is nil")

// validate checks the graph pointer and that every index is in [0, n).
func validate(g *core.Graph, indices ...int) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.Order()
	for _, i := range indices {
		if i < 0 || i >= n {
			return fmt.Errorf("dfs: index %d: %w", i, core.ErrVertexNotFound)
		}
	}

	return nil
}

// Search performs an iterative, stack-based depth-first search from
// start and returns goal's index once reached, or NotFound (-1) after
// exhausting all reachable vertices.
// Errors: ErrNilGraph, core.ErrVertexNotFound.
// Complexity: O(V + E).
func Search(g *core.Graph, start, goal int) (int, error) {
	// 1. Validate inputs and reset traversal state
	if err := validate(g, start, goal); err != nil {
		return NotFound, err
	}
	g.ResetTraversal()

	// 2. Explicit work stack of vertex indices
	stack := []int{start}
	var u *core.Vertex
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		u, _ = g.VertexAt(idx)
		if u.Marked {
			continue // already finished via another path
		}
		u.Finish()

		if idx == goal {
			return goal, nil
		}

		// Push neighbors in reverse so lower indices are explored first
		for i := len(u.Adjacency) - 1; i >= 0; i-- {
			w := u.Adjacency[i]
			if !w.Marked {
				if w.Predecessor == nil && w.Index != start {
					w.Predecessor = u
				}
				stack = append(stack, w.Index)
			}
		}
	}

	return NotFound, nil
}

// SearchRecursive performs a recursive, vertex-driven depth-first search
// from start, with reachability results identical to Search (discovery
// order may differ and is not a contract).
// Errors: ErrNilGraph, core.ErrVertexNotFound.
// Complexity: O(V + E); recursion depth up to V.
func SearchRecursive(g *core.Graph, start, goal int) (int, error) {
	if err := validate(g, start, goal); err != nil {
		return NotFound, err
	}
	g.ResetTraversal()

	startV, _ := g.VertexAt(start)
	if visit(startV, goal) {
		return goal, nil
	}

	return NotFound, nil
}

// visit recursively explores v, reporting whether goal was reached.
func visit(v *core.Vertex, goal int) bool {
	v.Finish()
	if v.Index == goal {
		return true
	}
	for _, w := range v.Adjacency {
		if w.Marked {
			continue
		}
		w.Predecessor = v
		if visit(w, goal) {
			return true
		}
	}

	return false
}
