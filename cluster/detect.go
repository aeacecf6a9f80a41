// Package cluster: greedy agglomerative community detection.

package cluster

import (
	"fmt"

	"github.com/velikar/spectra/core"
)

// Detect runs a greedy agglomerative modularity search: starting from
// the all-singleton clustering, it performs n-1 merge levels, at each
// level applying the pairwise cluster merge whose result has the highest
// modularity (first pair in (i, j) ascending order on ties), and returns
// the clustering with the globally maximum modularity across all levels,
// together with its score.
//
// Greedy merging is a heuristic: it need not find the true modularity
// optimum, but it handles graph sizes far beyond DetectExact.
// Errors: ErrNilGraph, context cancellation.
// Complexity: O(V⁵) in the worst case (O(V³) candidate merges across
// all levels, each scored in O(V²)).
func Detect(g *core.Graph, opts ...Option) (*Clustering, float64, error) {
	// 1. Validate inputs and apply options
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Start from singletons; they are the level-0 incumbent
	current, err := NewSingleton(g.Order())
	if err != nil {
		return nil, 0, err
	}
	bestQ, err := Modularity(g, current)
	if err != nil {
		return nil, 0, err
	}
	best := current.Clone()

	// 3. One merge level per iteration until a single cluster remains
	for current.NumberOfClusters() > 1 {
		select {
		case <-o.Ctx.Done():
			return nil, 0, o.Ctx.Err()
		default:
		}

		levelBest, levelQ, err := bestPairMerge(g, current)
		if err != nil {
			return nil, 0, err
		}
		current = levelBest

		// 4. Track the global maximum across levels
		if levelQ > bestQ {
			bestQ = levelQ
			best = current.Clone()
		}
	}

	return best, bestQ, nil
}

// bestPairMerge scores every pairwise cluster merge of c and returns the
// merged clustering with the highest modularity, first pair winning
// ties. c itself is left untouched.
func bestPairMerge(g *core.Graph, c *Clustering) (*Clustering, float64, error) {
	k := c.NumberOfClusters()
	var best *Clustering
	bestQ := 0.0
	var i, j int
	for i = 0; i < k-1; i++ {
		for j = i + 1; j < k; j++ {
			cand := c.Clone()
			if err := cand.Merge(i, j); err != nil {
				return nil, 0, fmt.Errorf("cluster: merge %d+%d: %w", i, j, err)
			}
			q, err := Modularity(g, cand)
			if err != nil {
				return nil, 0, err
			}
			if best == nil || q > bestQ {
				best = cand
				bestQ = q
			}
		}
	}

	return best, bestQ, nil
}
