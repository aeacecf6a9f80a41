// Package matrix_test shared helpers: fail-fast constructors and
// entrywise comparison against expected row data.
package matrix_test

import (
	"math"
	"testing"

	"github.com/velikar/spectra/matrix"
)

// tol is the comparison tolerance for numerically computed results.
const tol = 1e-9

// mustDense builds a zero rows×cols matrix or fails the test.
func mustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// mustFromRows builds a matrix from row data or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// mustAt reads one element or fails the test.
func mustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// checkEntries compares m against expected row data entrywise within tol.
func checkEntries(t *testing.T, m *matrix.Dense, want [][]float64) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape %dx%d; want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	var i, j int
	var got float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			got = mustAt(t, m, i, j)
			if math.Abs(got-want[i][j]) > tol {
				t.Fatalf("[%d,%d] = %g; want %g", i, j, got, want[i][j])
			}
		}
	}
}
