package bfs

import (
	"errors"
	"fmt"

	"github.com/velikar/spectra/core"
)

// NotFound is the sentinel index returned by Search when the goal is
// unreachable from the start vertex.
const NotFound = -1

// ErrNilGraph is returned when a nil *core.Graph is passed in.
var ErrNilGraph = errors.New("bfs: graph is nil")

// Result captures the outcome of a breadth-first traversal.
type Result struct {
	// Order records vertex indices in the sequence they were dequeued.
	Order []int

	// Dist maps each vertex index to its edge distance from the start
	// (+Inf semantics are collapsed to -1 here: unreached vertices hold -1).
	Dist []int

	// Pred maps each vertex index to its predecessor on the BFS tree,
	// or -1 for the start and unreached vertices.
	Pred []int
}

// Search runs breadth-first search from start and returns goal's index
// once reached, or NotFound (-1) after exhausting every reachable
// vertex. The per-vertex Distance and Predecessor fields are updated as
// a side effect, mirroring Traverse.
// Errors: ErrNilGraph, core.ErrVertexNotFound.
// Complexity: O(V + E).
func Search(g *core.Graph, start, goal int) (int, error) {
	res, err := traverse(g, start, goal)
	if err != nil {
		return NotFound, err
	}
	if res == nil {
		return goal, nil // goal reached, traversal stopped early
	}

	return NotFound, nil
}

// Traverse runs a full breadth-first traversal from start, returning
// visit order, distances, and predecessor links.
// Errors: ErrNilGraph, core.ErrVertexNotFound.
// Complexity: O(V + E).
func Traverse(g *core.Graph, start int) (*Result, error) {
	res, err := traverse(g, start, NotFound)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// traverse is the shared BFS engine. When goal is a valid index and gets
// dequeued, traversal stops early and a nil Result signals the hit.
func traverse(g *core.Graph, start, goal int) (*Result, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("bfs: start %d: %w", start, core.ErrVertexNotFound)
	}
	if goal != NotFound && (goal < 0 || goal >= n) {
		return nil, fmt.Errorf("bfs: goal %d: %w", goal, core.ErrVertexNotFound)
	}

	// 2. Reset traversal state and prepare the result arrays
	g.ResetTraversal()
	res := &Result{
		Order: make([]int, 0, n),
		Dist:  make([]int, n),
		Pred:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = -1
		res.Pred[i] = -1
	}

	// 3. Seed the FIFO queue with the start vertex
	startV, err := g.VertexAt(start)
	if err != nil {
		return nil, err
	}
	startV.Marked = true
	startV.Distance = 0
	res.Dist[start] = 0
	queue := make([]*core.Vertex, 0, n)
	queue = append(queue, startV)

	// 4. Standard FIFO loop
	var u *core.Vertex
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		res.Order = append(res.Order, u.Index)

		if u.Index == goal {
			return nil, nil // goal dequeued: early exit
		}

		for _, w := range u.Adjacency {
			if w.Marked {
				continue
			}
			w.Marked = true
			w.Distance = u.Distance + 1
			w.Predecessor = u
			res.Dist[w.Index] = res.Dist[u.Index] + 1
			res.Pred[w.Index] = u.Index
			queue = append(queue, w)
		}
	}

	return res, nil
}
