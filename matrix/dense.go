// Package matrix: the Dense type.
// Dense is a row-major matrix of float64 values, storing elements in a
// flat slice for performance and cache friendliness.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Epsilon is the tolerance for all floating comparisons against zero in
// this package: singularity detection, invertibility checks, and
// epsilon-aware equality.
const Epsilon = 1e-10

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
//
// The dominant eigenpair computed by DominantEigen is cached on the
// instance after the first successful call; any Set invalidates the
// cache, so stale reads are impossible even for mutated matrices.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c

	domOK  bool      // dominant eigenpair cache valid
	domVal float64   // cached dominant eigenvalue
	domVec []float64 // cached dominant eigenvector, length r
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions when rows or cols is non-positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate flat slice and return
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a slice of equal-length rows.
// The input is copied; later mutation of rows does not affect the matrix.
// Returns ErrInvalidDimensions on empty input and ErrRaggedRows when the
// rows differ in length.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// 1. Validate outer and inner dimensions
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("row %d: %w", i, ErrRaggedRows)
		}
	}

	// 2. Copy row data into flat storage
	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Identity creates the n×n identity matrix.
// Returns ErrInvalidDimensions when n is non-positive.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// IsSquare reports whether the matrix has equal row and column counts.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) and invalidates the cached dominant
// eigenpair. Returns ErrIndexOutOfBounds on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	m.domOK = false // mutation invalidates the eigenpair cache
	m.domVec = nil

	return nil
}

// Clone returns a deep copy of the Dense matrix. The eigenpair cache is
// not carried over; the copy recomputes on demand.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and other share a shape and agree entrywise
// within tol. A non-positive tol falls back to Epsilon.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense, tol float64) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	if tol <= 0 {
		tol = Epsilon
	}
	for i := range m.data {
		if math.Abs(m.data[i]-other.data[i]) > tol {
			return false
		}
	}

	return true
}

// Row returns a copy of row i. Returns ErrIndexOutOfBounds when i is
// outside [0, Rows).
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String implements fmt.Stringer for debugging. Formatting is stateless:
// it uses the %g verb and shares no process-wide formatter state.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Format renders the matrix with a fixed number of decimals, rounding
// magnitudes below Epsilon to an exact zero for display. Precision is an
// explicit parameter; there is no shared formatting state.
// Complexity: O(r*c).
func (m *Dense) Format(decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	var b strings.Builder
	var v float64
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			v = m.data[i*m.c+j]
			if math.Abs(v) < Epsilon {
				v = 0 // display rounding only; storage is untouched
			}
			fmt.Fprintf(&b, "%.*f", decimals, v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}
