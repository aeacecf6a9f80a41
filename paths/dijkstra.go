// Package paths: Dijkstra's algorithm with a lazy-decrease-key min-heap.

package paths

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/velikar/spectra/core"
)

// Dijkstra computes shortest distances from source to all other vertices
// of the weighted graph g, processing vertices in order of increasing
// tentative distance via a min-heap. Duplicate heap entries are pushed
// instead of decreasing keys; stale entries are skipped when popped.
//
// Per-vertex Distance and Predecessor fields are updated alongside the
// returned Result.
//
// Textbook correctness requires non-negative weights; by default no
// validation occurs. Enable WithNegativeWeightCheck for a fail-fast
// pre-scan.
// Errors: ErrNilGraph, core.ErrVertexNotFound, ErrNegativeWeight (opt-in).
// Complexity: O((V + E) log V); space O(V + E).
func Dijkstra(g *core.WeightedGraph, source int, opts ...Option) (*Result, error) {
	// 1. Validate inputs and apply options
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("paths: source %d: %w", source, core.ErrVertexNotFound)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Target >= n {
		return nil, fmt.Errorf("paths: target %d: %w", o.Target, core.ErrVertexNotFound)
	}

	// 2. Optional fail-fast pre-scan for negative weights
	if o.CheckNegativeWeight {
		if err := scanNegativeWeights(g); err != nil {
			return nil, err
		}
	}

	// 3. Initialize distances, predecessors, and the heap
	g.ResetTraversal()
	res := &Result{
		Dist: make([]float64, n),
		Pred: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = math.Inf(1)
		res.Pred[i] = NoPredecessor
	}
	res.Dist[source] = 0
	srcV, _ := g.VertexAt(source)
	srcV.Distance = 0

	visited := make([]bool, n)
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{index: source, dist: 0})

	// 4. Main loop: pop, skip stale, relax
	var u int
	var du, w, cand float64
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, du = item.index, item.dist
		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true

		if u == o.Target {
			break // target finalized: early exit
		}

		uv, _ := g.VertexAt(u)
		for _, nb := range uv.Adjacency {
			w, _ = g.Weight(u, nb.Index)
			cand = du + w
			if cand >= res.Dist[nb.Index] {
				continue // not strictly better
			}
			res.Dist[nb.Index] = cand
			res.Pred[nb.Index] = u
			nb.Distance = cand
			nb.Predecessor = uv
			heap.Push(&pq, &nodeItem{index: nb.Index, dist: cand})
		}
	}

	return res, nil
}

// scanNegativeWeights walks every present edge and reports the first
// negative weight found.
func scanNegativeWeights(g *core.WeightedGraph) error {
	n := g.Order()
	var w float64
	for i := 0; i < n; i++ {
		v, _ := g.VertexAt(i)
		for _, nb := range v.Adjacency {
			w, _ = g.Weight(i, nb.Index)
			if w < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, i, nb.Index, w)
			}
		}
	}

	return nil
}

// nodeItem pairs a vertex index with its tentative distance for heap ordering.
type nodeItem struct {
	index int
	dist  float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key pattern: improved distances push fresh entries,
// and outdated entries are ignored when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
