// Package matrix: spectral kernels.
// DominantEigen approximates the dominant eigenpair by power iteration;
// the general real eigenproblem is delegated to gonum's QR-algorithm
// eigensolver, the package's single external numerical collaborator.

package matrix

import (
	"math"

	gmat "gonum.org/v1/gonum/mat"
)

const (
	opEigen         = "Eigen"
	opDominantEigen = "DominantEigen"

	// powerMaxIter caps the power-iteration loop before the full
	// eigendecomposition fallback takes over.
	powerMaxIter = 20
)

// Eigen computes the full eigendecomposition of a square real matrix,
// returning the real and imaginary eigenvalue parts and a matrix whose
// column j is the (real part of the) eigenvector for eigenvalue j. The
// three results are ordered consistently with each other.
// Errors: ErrNilMatrix, ErrNotSquare, ErrEigenFailed.
// Complexity: O(n³), delegated to gonum's real Schur solver.
func Eigen(m *Dense) (re, im []float64, vectors *Dense, err error) {
	// 1. Validate input
	if err = ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opEigen, err)
	}

	// 2. Delegate to the external eigensolver
	n := m.r
	src := gmat.NewDense(n, n, append([]float64(nil), m.data...))
	var eig gmat.Eigen
	if ok := eig.Factorize(src, gmat.EigenRight); !ok {
		return nil, nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	// 3. Split complex eigenvalues into parallel real/imaginary slices
	values := eig.Values(nil)
	re = make([]float64, n)
	im = make([]float64, n)
	for i, v := range values {
		re[i] = real(v)
		im[i] = imag(v)
	}

	// 4. Extract real eigenvector components, column-aligned with values
	var cvec gmat.CDense
	eig.VectorsTo(&cvec)
	vectors, err = NewDense(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			vectors.data[i*n+j] = real(cvec.At(i, j))
		}
	}

	return re, im, vectors, nil
}

// DominantEigen approximates the dominant eigenvalue and eigenvector of
// a square matrix by power iteration: starting from the all-ones vector,
// each step multiplies by m and normalizes by the Euclidean norm, with
// the Rayleigh quotient as the running eigenvalue estimate. Iteration
// stops when successive estimates differ by less than tol or after
// powerMaxIter steps; on non-convergence the full eigendecomposition is
// computed and the eigenvalue with maximum real part is selected.
//
// The resulting eigenpair is cached on the instance; Set and
// TransposeInPlace invalidate the cache.
//
// A non-positive tol falls back to Epsilon.
// Errors: ErrNilMatrix, ErrNotSquare, ErrEigenFailed (fallback failure).
// Complexity: O(powerMaxIter · n²), or O(n³) when the fallback runs.
func DominantEigen(m *Dense, tol float64) (float64, []float64, error) {
	// 1. Validate input and consult the cache
	if err := ValidateSquare(m); err != nil {
		return 0, nil, matrixErrorf(opDominantEigen, err)
	}
	if m.domOK {
		return m.domVal, append([]float64(nil), m.domVec...), nil
	}
	if tol <= 0 {
		tol = Epsilon
	}

	// 2. Power iteration from the normalized all-ones vector
	n := m.r
	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / math.Sqrt(float64(n))
	}
	var (
		iter      int
		lambda    float64
		prev      = math.Inf(1)
		norm      float64
		converged bool
	)
	for iter = 0; iter < powerMaxIter; iter++ {
		y, err := MatVec(m, x)
		if err != nil {
			return 0, nil, matrixErrorf(opDominantEigen, err)
		}

		// 2a. Rayleigh quotient xᵀy with ||x|| == 1
		lambda = 0
		for i := 0; i < n; i++ {
			lambda += x[i] * y[i]
		}

		// 2b. Renormalize; a vanishing iterate means the zero eigenvalue
		norm = 0
		for i := 0; i < n; i++ {
			norm += y[i] * y[i]
		}
		norm = math.Sqrt(norm)
		if norm < Epsilon {
			lambda = 0
			converged = true

			break
		}
		for i := 0; i < n; i++ {
			x[i] = y[i] / norm
		}

		// 2c. Convergence on successive eigenvalue estimates
		if math.Abs(lambda-prev) < tol {
			converged = true

			break
		}
		prev = lambda
	}

	// 3. Fallback: full decomposition, eigenvalue with maximum real part
	if !converged {
		re, _, vectors, err := Eigen(m)
		if err != nil {
			return 0, nil, matrixErrorf(opDominantEigen, err)
		}
		best := 0
		for i := 1; i < n; i++ {
			if re[i] > re[best] {
				best = i
			}
		}
		lambda = re[best]
		for i := 0; i < n; i++ {
			x[i] = vectors.data[i*n+best]
		}
	}

	// 4. Cache the eigenpair on the instance and return copies
	m.domOK = true
	m.domVal = lambda
	m.domVec = append([]float64(nil), x...)

	return lambda, append([]float64(nil), x...), nil
}
