// Package matrix_test contains unit tests for the elementwise and
// structural kernels.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/velikar/spectra/matrix"
)

func TestAddSub(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	checkEntries(t, sum, [][]float64{{6, 8}, {10, 12}})

	diff, err := matrix.Sub(b, a)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	checkEntries(t, diff, [][]float64{{4, 4}, {4, 4}})

	if _, err = matrix.Add(a, mustDense(t, 3, 2)); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Errorf("shape mismatch: want ErrDimensionMismatch, got %v", err)
	}
	if _, err = matrix.Add(nil, a); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Errorf("nil operand: want ErrNilMatrix, got %v", err)
	}
}

func TestMul(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := mustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	prod, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	checkEntries(t, prod, [][]float64{{58, 64}, {139, 154}})

	if _, err = matrix.Mul(a, a); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Errorf("inner mismatch: want ErrDimensionMismatch, got %v", err)
	}
}

// TestMul_IdentityNeutral verifies I·A == A·I == A.
func TestMul_IdentityNeutral(t *testing.T) {
	a := mustFromRows(t, [][]float64{{2, -1}, {0, 3}})
	id, _ := matrix.Identity(2)

	left, err := matrix.Mul(id, a)
	if err != nil {
		t.Fatalf("Mul(I,A): %v", err)
	}
	right, err := matrix.Mul(a, id)
	if err != nil {
		t.Fatalf("Mul(A,I): %v", err)
	}
	if !left.Equal(a, tol) || !right.Equal(a, tol) {
		t.Error("identity must be multiplicatively neutral")
	}
}

func TestScale(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, -2}, {3, 0}})
	s, err := matrix.Scale(a, -2)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	checkEntries(t, s, [][]float64{{-2, 4}, {-6, 0}})
}

func TestMatVec(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(a, []float64{1, -1})
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}
	if y[0] != -1 || y[1] != -1 {
		t.Errorf("MatVec = %v; want [-1 -1]", y)
	}
	if _, err = matrix.MatVec(a, []float64{1}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Errorf("short vector: want ErrDimensionMismatch, got %v", err)
	}
}

func TestTranspose(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	checkEntries(t, at, [][]float64{{1, 4}, {2, 5}, {3, 6}})
}

// TestTransposeInPlace covers the square fast path and the rectangular
// reallocation path.
func TestTransposeInPlace(t *testing.T) {
	sq := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	if err := sq.TransposeInPlace(); err != nil {
		t.Fatalf("TransposeInPlace square: %v", err)
	}
	checkEntries(t, sq, [][]float64{{1, 3}, {2, 4}})

	rect := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	if err := rect.TransposeInPlace(); err != nil {
		t.Fatalf("TransposeInPlace rect: %v", err)
	}
	checkEntries(t, rect, [][]float64{{1, 4}, {2, 5}, {3, 6}})
}

func TestTrace(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 9}, {9, 5}})
	tr, err := matrix.Trace(a)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if tr != 6 {
		t.Errorf("Trace = %g; want 6", tr)
	}
	if _, err = matrix.Trace(mustDense(t, 2, 3)); !errors.Is(err, matrix.ErrNotSquare) {
		t.Errorf("rectangular: want ErrNotSquare, got %v", err)
	}
}

// TestTensor verifies the Kronecker product against a hand-computed block
// layout and the left-fold over three operands.
func TestTensor(t *testing.T) {
	id, _ := matrix.Identity(2)
	x := mustFromRows(t, [][]float64{{0, 1}, {1, 0}})

	kr, err := matrix.Tensor(id, x)
	if err != nil {
		t.Fatalf("Tensor: %v", err)
	}
	checkEntries(t, kr, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})

	// Associativity of the fold: (A⊗B)⊗C == A⊗(B⊗C)
	a := mustFromRows(t, [][]float64{{2}})
	left, err := matrix.Tensor(a, id, x)
	if err != nil {
		t.Fatalf("Tensor fold: %v", err)
	}
	bc, _ := matrix.Tensor(id, x)
	right, _ := matrix.Tensor(a, bc)
	if !left.Equal(right, tol) {
		t.Error("Kronecker fold must associate")
	}

	if _, err = matrix.Tensor(); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Errorf("no operands: want ErrInvalidDimensions, got %v", err)
	}
	if _, err = matrix.Tensor(id, nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Errorf("nil operand: want ErrNilMatrix, got %v", err)
	}
}

// TestScale_NaNPropagation pins float64 semantics: NaN entries survive.
func TestScale_NaNPropagation(t *testing.T) {
	a := mustDense(t, 1, 1)
	_ = a.Set(0, 0, math.NaN())
	s, err := matrix.Scale(a, 2)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if v := mustAt(t, s, 0, 0); !math.IsNaN(v) {
		t.Errorf("NaN * 2 = %g; want NaN", v)
	}
}
