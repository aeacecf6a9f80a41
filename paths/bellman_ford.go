// Package paths: the Bellman-Ford single-source algorithm.

package paths

import (
	"fmt"
	"math"

	"github.com/velikar/spectra/core"
)

// BellmanFord computes shortest distances from source by relaxing every
// present edge |V|-1 times, tolerating negative edge weights. A
// reachable negative cycle leaves the distances undefined; by default it
// is checked for but not reported. Enable WithNegativeCycleCheck to
// receive ErrNegativeCycle instead.
//
// Per-vertex Distance and Predecessor fields are updated alongside the
// returned Result.
// Errors: ErrNilGraph, core.ErrVertexNotFound, ErrNegativeCycle (opt-in).
// Complexity: O(V · E); space O(V).
func BellmanFord(g *core.WeightedGraph, source int, opts ...Option) (*Result, error) {
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

	// 2. Initialize distances and predecessors
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

	// 3. Relax all present edges |V|-1 times, in fixed vertex order
	var pass, u int
	var w, cand float64
	for pass = 0; pass < n-1; pass++ {
		improved := false
		for u = 0; u < n; u++ {
			if math.IsInf(res.Dist[u], 1) {
				continue // nothing to relax from an unreached vertex
			}
			uv, _ := g.VertexAt(u)
			for _, nb := range uv.Adjacency {
				w, _ = g.Weight(u, nb.Index)
				cand = res.Dist[u] + w
				if cand < res.Dist[nb.Index] {
					res.Dist[nb.Index] = cand
					res.Pred[nb.Index] = u
					nb.Distance = cand
					nb.Predecessor = uv
					improved = true
				}
			}
		}
		if !improved {
			break // fixpoint reached early
		}
	}

	// 4. Extra pass: any further improvement means a negative cycle.
	//    Detected but unreported unless the caller opted in.
	negative := false
	for u = 0; u < n && !negative; u++ {
		if math.IsInf(res.Dist[u], 1) {
			continue
		}
		uv, _ := g.VertexAt(u)
		for _, nb := range uv.Adjacency {
			w, _ = g.Weight(u, nb.Index)
			if res.Dist[u]+w < res.Dist[nb.Index] {
				negative = true

				break
			}
		}
	}
	if negative && o.CheckNegativeCycle {
		return nil, ErrNegativeCycle
	}

	return res, nil
}
