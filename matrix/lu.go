// Package matrix: LU factorization and the kernels built on it.
// The factorization is Crout-style with partial pivoting: rows are
// permuted so each pivot is the largest-magnitude candidate in its
// column, and a best pivot below Epsilon marks the matrix singular.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// Operation tags for LU-derived kernels.
const (
	opDet      = "Det"
	opInverse  = "Inverse"
	opSolve    = "Solve"
	opPow      = "Pow"
	opCofactor = "Cofactor"
	opAdjugate = "Adjugate"
)

// luFactor computes the partially pivoted factorization P·A = L·U into a
// single combined matrix: the strict lower triangle holds L (unit
// diagonal implied) and the upper triangle holds U. perm records the row
// permutation and sign its parity (+1 for even, -1 for odd).
// Returns ErrSingular when the best pivot magnitude in some column is
// below Epsilon.
// Complexity: O(n³).
func luFactor(m *Dense) (lu *Dense, perm []int, sign float64, err error) {
	n := m.r
	lu = m.Clone()
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1.0

	var k, i, j, p int
	var best, cand, pivot, factor float64
	for k = 0; k < n; k++ {
		// 1. Partial pivoting: pick the largest-magnitude candidate in column k
		p = k
		best = math.Abs(lu.data[k*n+k])
		for i = k + 1; i < n; i++ {
			cand = math.Abs(lu.data[i*n+k])
			if cand > best {
				best, p = cand, i
			}
		}
		if best < Epsilon {
			return nil, nil, 0, ErrSingular
		}

		// 2. Swap rows k and p, flipping the permutation parity
		if p != k {
			rowK := lu.data[k*n : (k+1)*n]
			rowP := lu.data[p*n : (p+1)*n]
			for j = 0; j < n; j++ {
				rowK[j], rowP[j] = rowP[j], rowK[j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		// 3. Eliminate below the pivot
		pivot = lu.data[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = lu.data[i*n+k] / pivot
			lu.data[i*n+k] = factor // store the L multiplier
			for j = k + 1; j < n; j++ {
				lu.data[i*n+j] -= factor * lu.data[k*n+j]
			}
		}
	}

	return lu, perm, sign, nil
}

// luSolve solves A·x = b given the combined LU factors and permutation
// from luFactor. b is read through the permutation; x is freshly
// allocated.
// Complexity: O(n²).
func luSolve(lu *Dense, perm []int, b []float64) []float64 {
	n := lu.r
	x := make([]float64, n)

	// 1. Forward substitution: L·y = P·b (unit diagonal on L)
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = b[perm[i]]
		for k = 0; k < i; k++ {
			sum -= lu.data[i*n+k] * x[k]
		}
		x[i] = sum
	}

	// 2. Backward substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= lu.data[i*n+k] * x[k]
		}
		x[i] = sum / lu.data[i*n+i]
	}

	return x
}

// Det computes the determinant of a square matrix via LU factorization:
// the product of the upper-triangular diagonal times the pivot-parity
// sign. A singular matrix (best pivot below Epsilon) yields exactly 0.
// Errors: ErrNilMatrix, ErrNotSquare.
// Complexity: O(n³).
func Det(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	lu, _, sign, err := luFactor(m)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return 0, nil // singularity means a zero determinant, not a failure
		}

		return 0, matrixErrorf(opDet, err)
	}

	det := sign
	for i := 0; i < m.r; i++ {
		det *= lu.data[i*m.r+i]
	}

	return det, nil
}

// Solve solves A·x = b for a column vector b (shape n×1 matching A's row
// count), returning x as a fresh n×1 matrix.
// Errors: ErrNilMatrix, ErrNotSquare, ErrDimensionMismatch (b not n×1),
// ErrSingular.
// Complexity: O(n³) dominated by the factorization.
func Solve(a, b *Dense) (*Dense, error) {
	// 1. Validate operand shapes
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.c != 1 || b.r != a.r {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}

	// 2. Factor and back-substitute
	lu, perm, _, err := luFactor(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := luSolve(lu, perm, b.data)

	res, err := NewDense(a.r, 1)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	copy(res.data, x)

	return res, nil
}

// Inverse computes A⁻¹ by solving A·X = I column-by-column over a single
// LU factorization.
// Errors: ErrNilMatrix, ErrNotSquare, ErrSingular.
// Complexity: O(n³).
func Inverse(m *Dense) (*Dense, error) {
	// 1. Validate and factor once
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	lu, perm, _, err := luFactor(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// 2. Solve against each canonical basis column
	n := m.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		x := luSolve(lu, perm, e)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Pow computes the integer matrix power mⁿ by repeated multiplication.
// n == 0 yields the identity; negative n inverts first and therefore
// requires |det| ≥ Epsilon.
// Errors: ErrNilMatrix, ErrNotSquare, ErrSingular (negative n on a
// singular matrix).
// Complexity: O(|n| · k³) for a k×k matrix.
func Pow(m *Dense, n int) (*Dense, error) {
	// 1. Validate the base
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	// 2. Resolve the effective base: m, or m⁻¹ for negative exponents
	base := m
	if n < 0 {
		inv, err := Inverse(m)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		base = inv
		n = -n
	}

	// 3. Repeated multiplication from the identity
	acc, err := Identity(m.r)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	for i := 0; i < n; i++ {
		acc, err = Mul(acc, base)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return acc, nil
}

// Cofactor computes the (i,j) cofactor of a square matrix: (-1)^(i+j)
// times the determinant of the minor obtained by deleting row i and
// column j. The 1×1 cofactor is 1 by convention.
// Errors: ErrNilMatrix, ErrNotSquare, ErrIndexOutOfBounds.
// Complexity: O(n³) per call.
func Cofactor(m *Dense, i, j int) (float64, error) {
	// 1. Validate shape and indices
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d): %w", i, j, ErrIndexOutOfBounds))
	}
	if m.r == 1 {
		return 1, nil
	}

	// 2. Build the minor and take its determinant
	n := m.r
	minor, err := NewDense(n-1, n-1)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	var r, c, mr, mc int
	for r = 0; r < n; r++ {
		if r == i {
			continue
		}
		mc = 0
		for c = 0; c < n; c++ {
			if c == j {
				continue
			}
			minor.data[mr*(n-1)+mc] = m.data[r*n+c]
			mc++
		}
		mr++
	}
	det, err := Det(minor)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	// 3. Apply the checkerboard sign
	if (i+j)%2 != 0 {
		det = -det
	}

	return det, nil
}

// Adjugate computes the adjugate (classical adjoint): the transpose of
// the cofactor matrix, so adj[j][i] = Cofactor(i, j).
// Errors: ErrNilMatrix, ErrNotSquare.
// Complexity: O(n⁵) via per-entry cofactors.
func Adjugate(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := m.r
	adj, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	var i, j int
	var cf float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cf, err = Cofactor(m, i, j)
			if err != nil {
				return nil, matrixErrorf(opAdjugate, err)
			}
			adj.data[j*n+i] = cf // transposed placement
		}
	}

	return adj, nil
}
