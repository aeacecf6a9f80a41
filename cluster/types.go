// Package cluster: the Clustering partition model, sentinel errors, and
// functional options shared by the detection algorithms.

package cluster

import (
	"context"
	"errors"
	"fmt"

	"github.com/velikar/spectra/core"
)

// Sentinel errors returned by the cluster package.
var (
	// ErrNilGraph indicates that a nil graph was passed in.
	ErrNilGraph = errors.New("cluster: graph is nil")

	// ErrNilClustering indicates that a nil *Clustering was passed in.
	ErrNilClustering = errors.New("cluster: clustering is nil")

	// ErrInvalidAssignment indicates an empty assignment slice or cluster
	// ids that do not form the contiguous range [0, max+1).
	ErrInvalidAssignment = errors.New("cluster: invalid cluster assignment")

	// ErrClusterNotFound indicates a cluster id outside [0, NumberOfClusters).
	ErrClusterNotFound = errors.New("cluster: cluster id out of range")

	// ErrLengthMismatch indicates that a clustering covers a different
	// number of vertices than the graph it is scored against.
	ErrLengthMismatch = errors.New("cluster: clustering size does not match graph order")
)

// Clustering is a partition of the vertex set {0, ..., n-1} into k
// clusters. Invariant: assign[i] ∈ [0, k) for every i, and every id in
// [0, k) is held by at least one vertex.
type Clustering struct {
	assign []int // assign[i] is the cluster id of vertex i
	k      int   // number of clusters
}

// NewSingleton returns the all-singleton clustering of n vertices:
// vertex i alone in cluster i.
// Errors: ErrInvalidAssignment for n < 1.
func NewSingleton(n int) (*Clustering, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d vertices", ErrInvalidAssignment, n)
	}
	assign := make([]int, n)
	for i := range assign {
		assign[i] = i
	}

	return &Clustering{assign: assign, k: n}, nil
}

// NewClustering builds a Clustering from an explicit assignment slice.
// The slice is copied; ids must form the contiguous range [0, max+1).
// Errors: ErrInvalidAssignment.
func NewClustering(assign []int) (*Clustering, error) {
	// 1. Reject the empty partition
	if len(assign) == 0 {
		return nil, fmt.Errorf("%w: empty assignment", ErrInvalidAssignment)
	}

	// 2. Determine the id range
	k := 0
	for i, id := range assign {
		if id < 0 {
			return nil, fmt.Errorf("%w: vertex %d has negative id %d", ErrInvalidAssignment, i, id)
		}
		if id+1 > k {
			k = id + 1
		}
	}

	// 3. Every id in [0, k) must be used
	seen := make([]bool, k)
	for _, id := range assign {
		seen[id] = true
	}
	for id, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: id %d unused, range not contiguous", ErrInvalidAssignment, id)
		}
	}

	return &Clustering{assign: append([]int(nil), assign...), k: k}, nil
}

// Size returns the number of vertices covered by the clustering.
func (c *Clustering) Size() int { return len(c.assign) }

// NumberOfClusters returns k, the count of distinct cluster ids.
func (c *Clustering) NumberOfClusters() int { return c.k }

// Assignments returns a copy of the vertex-to-cluster assignment slice.
func (c *Clustering) Assignments() []int {
	return append([]int(nil), c.assign...)
}

// ClusterOf returns the cluster id of vertex i.
// Errors: core.ErrVertexNotFound.
func (c *Clustering) ClusterOf(i int) (int, error) {
	if i < 0 || i >= len(c.assign) {
		return 0, fmt.Errorf("cluster: vertex %d: %w", i, core.ErrVertexNotFound)
	}

	return c.assign[i], nil
}

// SameCluster reports whether vertices i and j share a cluster.
// Errors: core.ErrVertexNotFound.
func (c *Clustering) SameCluster(i, j int) (bool, error) {
	ci, err := c.ClusterOf(i)
	if err != nil {
		return false, err
	}
	cj, err := c.ClusterOf(j)
	if err != nil {
		return false, err
	}

	return ci == cj, nil
}

// Clusters returns the member vertex indices of every cluster, indexed
// by cluster id, members ascending.
func (c *Clustering) Clusters() [][]int {
	out := make([][]int, c.k)
	for i, id := range c.assign {
		out[id] = append(out[id], i)
	}

	return out
}

// Clone returns an independent deep copy of the clustering.
func (c *Clustering) Clone() *Clustering {
	return &Clustering{assign: append([]int(nil), c.assign...), k: c.k}
}

// Merge dissolves the higher of the two cluster ids into the lower, then
// renumbers every id above the dissolved one downward by one so that ids
// stay contiguous. Merging a cluster with itself is a no-op.
// Errors: ErrClusterNotFound.
func (c *Clustering) Merge(i, j int) error {
	// 1. Validate both ids
	if i < 0 || i >= c.k {
		return fmt.Errorf("%w: %d of %d", ErrClusterNotFound, i, c.k)
	}
	if j < 0 || j >= c.k {
		return fmt.Errorf("%w: %d of %d", ErrClusterNotFound, j, c.k)
	}
	if i == j {
		return nil
	}

	// 2. Dissolve the higher id into the lower
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	for v, id := range c.assign {
		switch {
		case id == hi:
			c.assign[v] = lo
		case id > hi:
			c.assign[v] = id - 1 // close the gap left by hi
		}
	}
	c.k--

	return nil
}

// Option configures the detection algorithms.
type Option func(*Options)

// Options holds configurable parameters for Detect and DetectExact.
type Options struct {
	// Ctx allows cancellation between evaluation steps (per merge level
	// in Detect, per enumerated partition in DetectExact); defaults to
	// context.Background(). Evaluation order is fixed, so any result
	// returned before cancellation is deterministic.
	Ctx context.Context
}

// DefaultOptions returns Options with a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
