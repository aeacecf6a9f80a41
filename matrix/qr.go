// Package matrix: Householder QR decomposition.

package matrix

import "math"

const opQR = "QR"

// QR computes the Householder factorization A = Q·R for a matrix with
// Rows ≥ Cols. Q is orthogonal (r×r) and R is upper-trapezoidal (r×c).
// Errors: ErrNilMatrix, ErrDimensionMismatch (Rows < Cols).
// Complexity: O(r·c²) reflections plus O(r²·c) accumulation into Q.
func QR(m *Dense) (q, r *Dense, err error) {
	// 1. Validate shape: tall or square input only
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if m.r < m.c {
		return nil, nil, matrixErrorf(opQR, ErrDimensionMismatch)
	}

	rows, cols := m.r, m.c
	r = m.Clone() // R accumulates reflections applied to A
	q, err = Identity(rows)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	// 2. One Householder reflector per column
	v := make([]float64, rows)
	var (
		i, j, k     int
		norm, alpha float64
		beta, tau   float64
		sum, aik    float64
	)
	for k = 0; k < cols; k++ {
		// 2a. Norm of the column below (and including) the diagonal
		norm = 0
		for i = k; i < rows; i++ {
			aik = r.data[i*cols+k]
			norm += aik * aik
		}
		norm = math.Sqrt(norm)
		if norm < Epsilon {
			continue // column already eliminated
		}

		// 2b. alpha = -sign(R[k,k]) * norm keeps the reflector stable
		alpha = -math.Copysign(norm, r.data[k*cols+k])

		// 2c. Build the Householder vector v = x - alpha*e_k
		for i = 0; i < rows; i++ {
			v[i] = 0
		}
		for i = k; i < rows; i++ {
			v[i] = r.data[i*cols+k]
		}
		v[k] -= alpha

		// 2d. tau = 2 / vᵀv; a degenerate reflector is skipped
		beta = 0
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta < Epsilon {
			continue
		}
		tau = 2.0 / beta

		// 2e. Apply the reflection to R: R -= tau * v (vᵀ R)
		for j = k; j < cols; j++ {
			sum = 0
			for i = k; i < rows; i++ {
				sum += v[i] * r.data[i*cols+j]
			}
			for i = k; i < rows; i++ {
				r.data[i*cols+j] -= tau * v[i] * sum
			}
		}

		// 2f. Accumulate the reflection into Q: Q -= tau * (Q v) vᵀ
		for i = 0; i < rows; i++ {
			sum = 0
			for j = k; j < rows; j++ {
				sum += q.data[i*rows+j] * v[j]
			}
			for j = k; j < rows; j++ {
				q.data[i*rows+j] -= tau * sum * v[j]
			}
		}
	}

	// 3. Zero the numerically eliminated entries below the diagonal of R
	for i = 0; i < rows; i++ {
		for j = 0; j < cols && j < i; j++ {
			if math.Abs(r.data[i*cols+j]) < Epsilon {
				r.data[i*cols+j] = 0
			}
		}
	}

	return q, r, nil
}
