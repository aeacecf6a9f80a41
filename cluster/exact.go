// Package cluster: exhaustive modularity maximization over all set
// partitions.

package cluster

import "github.com/velikar/spectra/core"

// DetectExact enumerates every set partition of the vertex set via
// restricted growth strings and returns the first partition (in
// enumeration order) achieving the maximum modularity, together with its
// score. Ties beyond the first maximum are not reported; which partition
// wins a tie is an artifact of the successor order and carries no
// meaning.
//
// The number of partitions is the Bell number B(n), which exceeds 10⁹
// near n = 15. No internal size guard exists; callers decide what is
// tractable and may bound the run with WithContext.
// Errors: ErrNilGraph, context cancellation.
// Complexity: O(Bell(V) · V²).
func DetectExact(g *core.Graph, opts ...Option) (*Clustering, float64, error) {
	// 1. Validate inputs and apply options
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.Order()

	// 2. The all-zero string (single cluster) opens the enumeration
	rgs := make([]int, n)
	var best *Clustering
	var bestQ float64
	for {
		select {
		case <-o.Ctx.Done():
			return nil, 0, o.Ctx.Err()
		default:
		}

		cand, err := NewClustering(rgs)
		if err != nil {
			return nil, 0, err
		}
		q, err := Modularity(g, cand)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || q > bestQ {
			best = cand
			bestQ = q
		}

		if !nextPartition(rgs) {
			break
		}
	}

	return best, bestQ, nil
}

// nextPartition advances rgs to the successor restricted growth string
// in place and reports whether one existed. A restricted growth string
// satisfies rgs[0] = 0 and rgs[i] ≤ max(rgs[0..i-1]) + 1, putting set
// partitions in one-to-one correspondence with strings.
func nextPartition(rgs []int) bool {
	n := len(rgs)

	// 1. Scan from the right for a position that can still grow
	for i := n - 1; i > 0; i-- {
		maxPrefix := 0
		for j := 0; j < i; j++ {
			if rgs[j] > maxPrefix {
				maxPrefix = rgs[j]
			}
		}
		if rgs[i] <= maxPrefix {
			// 2. Bump it and reset everything to its right
			rgs[i]++
			for j := i + 1; j < n; j++ {
				rgs[j] = 0
			}

			return true
		}
	}

	return false
}
