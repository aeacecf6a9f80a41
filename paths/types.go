// Package paths: result model, sentinel errors, and functional options
// shared by the shortest-path algorithms.

package paths

import "errors"

// NoPredecessor is the sentinel predecessor index for sources and
// unreachable vertices.
const NoPredecessor = -1

// Sentinel errors returned by the shortest-path implementations.
var (
	// ErrNilGraph indicates that a nil *core.WeightedGraph was passed in.
	ErrNilGraph = errors.New("paths: graph is nil")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	// Only returned when WithNegativeWeightCheck is enabled.
	ErrNegativeWeight = errors.New("paths: negative edge weight encountered")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from
	// the source. Only returned when WithNegativeCycleCheck is enabled.
	ErrNegativeCycle = errors.New("paths: negative cycle detected")
)

// Result is the single-source shortest-path outcome.
type Result struct {
	// Dist maps each vertex index to its distance from the source;
	// unreachable vertices hold +Inf.
	Dist []float64

	// Pred maps each vertex index to its predecessor on the shortest
	// path, or NoPredecessor (-1) for the source and unreachable vertices.
	Pred []int
}

// Option configures the single-source algorithms.
type Option func(*Options)

// Options holds configurable parameters for Dijkstra and Bellman-Ford.
type Options struct {
	// Target, when non-negative, lets Dijkstra stop as soon as the
	// target's distance is finalized. Default -1 (full relaxation).
	Target int

	// CheckNegativeWeight makes Dijkstra pre-scan edges and fail fast
	// with ErrNegativeWeight. Off by default: negative input is
	// silently accepted.
	CheckNegativeWeight bool

	// CheckNegativeCycle makes Bellman-Ford run the extra relaxation
	// pass and report ErrNegativeCycle. Off by default: the cycle is
	// detected but not reported.
	CheckNegativeCycle bool
}

// DefaultOptions returns the permissive defaults: full relaxation, no
// negative-weight or negative-cycle reporting.
func DefaultOptions() Options {
	return Options{Target: -1}
}

// WithTarget makes Dijkstra stop once the given vertex is finalized.
// Negative values have no effect.
func WithTarget(t int) Option {
	return func(o *Options) {
		if t >= 0 {
			o.Target = t
		}
	}
}

// WithNegativeWeightCheck enables the fail-fast negative-weight pre-scan
// in Dijkstra.
func WithNegativeWeightCheck() Option {
	return func(o *Options) { o.CheckNegativeWeight = true }
}

// WithNegativeCycleCheck enables negative-cycle reporting in
// Bellman-Ford.
func WithNegativeCycleCheck() Option {
	return func(o *Options) { o.CheckNegativeCycle = true }
}
