// Package hashimoto: network-relevance scoring via virtual node removal.

package hashimoto

import (
	"context"
	"fmt"

	"github.com/velikar/spectra/core"
	"github.com/velikar/spectra/matrix"
)

// defaultTolerance is the power-iteration convergence tolerance used by
// relevance scoring when no override is supplied.
const defaultTolerance = 1e-6

// Option configures relevance computation.
type Option func(*Options)

// Options holds configurable parameters for relevance scoring.
type Options struct {
	// Ctx allows cancellation between per-vertex eigen computations;
	// defaults to context.Background(). The computation itself stays
	// strictly sequential and deterministic.
	Ctx context.Context

	// Tolerance is the power-iteration convergence threshold passed to
	// matrix.DominantEigen. Must be positive.
	Tolerance float64
}

// DefaultOptions returns Options with a Background context and the
// default tolerance.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Tolerance: defaultTolerance}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTolerance sets the power-iteration tolerance. Non-positive values
// have no effect.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// Analysis couples a graph with its lazily built modifiable Hashimoto
// matrix and relevance vector. The underlying graph topology is
// immutable, so both caches stay valid for the Analysis lifetime.
type Analysis struct {
	g         *core.Graph
	mod       *Modifiable // built on first use
	relevance []float64   // computed on first use
}

// NewAnalysis wraps g for spectral analysis. The Hashimoto structures
// are not built until first requested.
// Errors: ErrNilGraph.
func NewAnalysis(g *core.Graph) (*Analysis, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Analysis{g: g}, nil
}

// modifiable lazily builds the modifiable Hashimoto matrix once.
func (a *Analysis) modifiable() (*Modifiable, error) {
	if a.mod == nil {
		mod, err := NewModifiable(a.g)
		if err != nil {
			return nil, err
		}
		a.mod = mod
	}

	return a.mod, nil
}

// ModifiedAt returns the Hashimoto matrix with node removed virtually
// deleted, building the modifiable form lazily on first call. Passing -1
// (or any id outside [0, n)) yields the unmodified matrix.
// Errors: ErrNoEdges.
// Complexity: O(E²) per call after an O(E²) one-time build.
func (a *Analysis) ModifiedAt(removed int) (*matrix.Dense, error) {
	mod, err := a.modifiable()
	if err != nil {
		return nil, err
	}

	return mod.Evaluate(removed), nil
}

// Relevances computes the full relevance vector:
// relevance[i] = max_j λ(M(j)) − λ(M(i)), with λ the dominant eigenvalue
// and M(i) the node-i-removed Hashimoto matrix. One dominant-eigenvalue
// computation per vertex, each on an E×E matrix — O(n) eigen runs; this
// is the most expensive operation in the library. Results are cached on
// the Analysis; subsequent calls are O(n) copies.
// Errors: ErrNoEdges, context cancellation, eigen failures.
// Complexity: O(n·E²) plus n power iterations (or fallbacks).
func (a *Analysis) Relevances(opts ...Option) ([]float64, error) {
	// 1. Serve from cache when available
	if a.relevance != nil {
		return append([]float64(nil), a.relevance...), nil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mod, err := a.modifiable()
	if err != nil {
		return nil, err
	}

	// 3. One dominant eigenvalue per removed vertex, fixed order
	n := a.g.Order()
	lambdas := make([]float64, n)
	var maxLambda float64
	for i := 0; i < n; i++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		removed := mod.Evaluate(i)
		lambda, _, err := matrix.DominantEigen(removed, o.Tolerance)
		if err != nil {
			return nil, fmt.Errorf("hashimoto: relevance of %d: %w", i, err)
		}
		lambdas[i] = lambda
		if i == 0 || lambda > maxLambda {
			maxLambda = lambda
		}
	}

	// 4. Relevance is the drop from the best achievable eigenvalue
	rel := make([]float64, n)
	for i := 0; i < n; i++ {
		rel[i] = maxLambda - lambdas[i]
	}
	a.relevance = rel

	return append([]float64(nil), rel...), nil
}

// Relevance returns the relevance score of a single vertex, computing
// the full vector on first use (the maximum over all removals is part of
// the definition, so per-vertex work cannot be isolated).
// Errors: core.ErrVertexNotFound, plus everything Relevances can return.
func (a *Analysis) Relevance(i int, opts ...Option) (float64, error) {
	if i < 0 || i >= a.g.Order() {
		return 0, fmt.Errorf("hashimoto: relevance index %d: %w", i, core.ErrVertexNotFound)
	}
	rel, err := a.Relevances(opts...)
	if err != nil {
		return 0, err
	}

	return rel[i], nil
}
