// Package matrix_test contains unit tests for the Householder QR
// factorization.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/velikar/spectra/matrix"
)

// TestQR_Reconstruction verifies Q·R == A for square and tall inputs.
func TestQR_Reconstruction(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
	}{
		{"square", [][]float64{{12, -51}, {6, 167}}},
		{"tall", [][]float64{{1, 2}, {3, 4}, {5, 6}}},
		{"classic", [][]float64{{12, -51, 4}, {6, 167, -68}, {-4, 24, -41}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := mustFromRows(t, tc.rows)
			q, r, err := matrix.QR(a)
			if err != nil {
				t.Fatalf("QR: %v", err)
			}
			prod, err := matrix.Mul(q, r)
			if err != nil {
				t.Fatalf("Mul(Q,R): %v", err)
			}
			if !prod.Equal(a, 1e-8) {
				t.Errorf("Q·R =\n%s; want\n%s", prod, a)
			}
		})
	}
}

// TestQR_Orthonormal verifies QᵀQ == I.
func TestQR_Orthonormal(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	q, _, err := matrix.QR(a)
	if err != nil {
		t.Fatalf("QR: %v", err)
	}
	qt, err := matrix.Transpose(q)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	prod, err := matrix.Mul(qt, q)
	if err != nil {
		t.Fatalf("Mul(Qᵀ,Q): %v", err)
	}
	id, _ := matrix.Identity(q.Rows())
	if !prod.Equal(id, 1e-8) {
		t.Errorf("QᵀQ =\n%s; want identity", prod)
	}
}

// TestQR_UpperTriangular verifies R carries exact zeros below the diagonal.
func TestQR_UpperTriangular(t *testing.T) {
	a := mustFromRows(t, [][]float64{{12, -51, 4}, {6, 167, -68}, {-4, 24, -41}})
	_, r, err := matrix.QR(a)
	if err != nil {
		t.Fatalf("QR: %v", err)
	}
	var i, j int
	for i = 0; i < r.Rows(); i++ {
		for j = 0; j < r.Cols() && j < i; j++ {
			if v := mustAt(t, r, i, j); math.Abs(v) > 1e-8 {
				t.Errorf("R[%d,%d] = %g; want 0 below diagonal", i, j, v)
			}
		}
	}
}

func TestQR_WideRejected(t *testing.T) {
	if _, _, err := matrix.QR(mustDense(t, 2, 3)); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Errorf("wide input: want ErrDimensionMismatch, got %v", err)
	}
	if _, _, err := matrix.QR(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Errorf("nil input: want ErrNilMatrix, got %v", err)
	}
}
