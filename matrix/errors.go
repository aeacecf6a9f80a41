// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels return these sentinels (optionally wrapped
// with operation context via fmt.Errorf("...: %w", ErrX)) and tests match
// them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand side vector whose length differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when the best available pivot magnitude falls
	// below Epsilon during LU-based inversion or solving.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrRaggedRows indicates that a row-slice constructor received rows of
	// unequal length.
	ErrRaggedRows = errors.New("matrix: ragged row lengths")

	// ErrEigenFailed indicates that the delegated full eigendecomposition
	// did not succeed for the given input.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
