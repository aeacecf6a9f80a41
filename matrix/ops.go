// Package matrix: elementwise and structural kernels.
// All functions perform strict fail-fast validation, iterate in fixed
// order, and allocate fresh result matrices. Operands are never mutated
// except by TransposeInPlace, whose in-place contract is explicit.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opTrace     = "Trace"
	opTensor    = "Tensor"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w so callers still match with errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared validation/allocation path for Add and Sub.
// Complexity: O(r*c).
func addSub(a, b *Dense, sign float64, tag string) (*Dense, error) {
	// 1. Validate shapes match
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// 2. Allocate result and walk the flat storage in one pass
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for idx := range a.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Rows).
// Complexity: O(r*n*c) with a zero-skip on A[i,k]; fixed i→k→j order.
func Mul(a, b *Dense) (*Dense, error) {
	// 1. Validate inner dimensions
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// 2. Allocate result
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// 3. Row-major triple loop (i→k→j), skipping zero multiplicands
	var i, j, k int
	var av float64
	var baseA, baseB, baseR int
	for i = 0; i < a.r; i++ {
		baseA = i * a.c
		baseR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[baseA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			baseB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[baseR+j] += av * b.data[baseB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range m.data {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x of length m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c), one pass per row with flat indexing.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	// 1. Validate receiver and vector length
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// 2. Per-row dot products in fixed i→j order
	y := make([]float64, m.r)
	var i, j, base int
	var acc, xv float64
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.c, m.r) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// TransposeInPlace transposes m in place, swapping its dimensions. This
// is the single documented in-place mutation in the kernel; the cached
// dominant eigenpair is invalidated.
// Errors: ErrNilMatrix.
// Complexity: O(r*c); square matrices swap without reallocation.
func (m *Dense) TransposeInPlace() error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	m.domOK = false
	m.domVec = nil

	// Square fast path: pairwise swaps above the diagonal
	if m.r == m.c {
		n := m.r
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
			}
		}

		return nil
	}

	// Rectangular path: rebuild the flat storage with flipped strides
	next := make([]float64, len(m.data))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			next[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	m.data = next
	m.r, m.c = m.c, m.r

	return nil
}

// Trace returns the sum of the diagonal entries of a square matrix.
// Errors: ErrNilMatrix, ErrNotSquare.
// Complexity: O(n).
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum float64
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.r+i]
	}

	return sum, nil
}

// Tensor computes the Kronecker product of the given matrices in order:
// Tensor(A, B, C) = (A ⊗ B) ⊗ C. At least one matrix is required and
// every operand must be non-nil.
// Errors: ErrNilMatrix (nil operand), ErrInvalidDimensions (no operands).
// Complexity: O(Π rows × Π cols) for the final product.
func Tensor(ms ...*Dense) (*Dense, error) {
	// 1. Validate the operand list
	if len(ms) == 0 {
		return nil, matrixErrorf(opTensor, ErrInvalidDimensions)
	}
	for i, m := range ms {
		if m == nil {
			return nil, matrixErrorf(opTensor, fmt.Errorf("operand %d: %w", i, ErrNilMatrix))
		}
	}

	// 2. Left-fold the pairwise Kronecker product
	acc := ms[0].Clone()
	var err error
	for i := 1; i < len(ms); i++ {
		acc, err = kronecker(acc, ms[i])
		if err != nil {
			return nil, matrixErrorf(opTensor, err)
		}
	}

	return acc, nil
}

// kronecker computes the Kronecker product A ⊗ B into a fresh Dense.
// Block (i,j) of the result is a[i,j] * B.
// Complexity: O(a.r * a.c * b.r * b.c).
func kronecker(a, b *Dense) (*Dense, error) {
	res, err := NewDense(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, err
	}
	var ai, aj, bi, bj int
	var av float64
	var rowBase, colBase int
	for ai = 0; ai < a.r; ai++ {
		for aj = 0; aj < a.c; aj++ {
			av = a.data[ai*a.c+aj]
			if av == 0 {
				continue // zero block
			}
			rowBase = ai * b.r
			colBase = aj * b.c
			for bi = 0; bi < b.r; bi++ {
				for bj = 0; bj < b.c; bj++ {
					res.data[(rowBase+bi)*res.c+colBase+bj] = av * b.data[bi*b.c+bj]
				}
			}
		}
	}

	return res, nil
}
