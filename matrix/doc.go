// Package matrix provides the dense linear-algebra kernel used across
// spectra: a row-major Dense matrix type with arithmetic, LU-based
// determinant/inverse/solve, Householder QR, Kronecker products, and
// power-iteration dominant-eigenvalue estimation with a full
// eigendecomposition fallback.
//
// Numeric policy:
//
//   - All comparisons against zero use Epsilon = 1e-10. The same constant
//     governs singularity detection during LU pivoting, matrix equality,
//     and invertibility checks for negative matrix powers.
//   - Results are deterministic: every kernel iterates in a fixed order
//     and allocates fresh result matrices (operands are never mutated,
//     except TransposeInPlace, which is documented as in-place).
//
// Decompositions:
//
//   - LU: Crout-style factorization with partial pivoting. Det returns the
//     product of the upper-triangular diagonal times the pivot-parity
//     sign; a best pivot below Epsilon makes the matrix singular (Det
//     reports 0, Inverse/Solve report ErrSingular).
//   - QR: Householder reflections for any matrix with Rows ≥ Cols,
//     returning Q (orthogonal, r×r) and R (upper-trapezoidal, r×c)
//     with A = Q·R.
//   - Eigen: the full real eigendecomposition is delegated to gonum
//     (gonum.org/v1/gonum/mat), the package's only external numerical
//     collaborator. DominantEigen runs power iteration first and falls
//     back to Eigen when the iteration does not converge.
//
// Errors (sentinel, matched via errors.Is):
//
//   - ErrNilMatrix          — nil *Dense receiver or argument.
//   - ErrInvalidDimensions  — non-positive construction dimensions.
//   - ErrIndexOutOfBounds   — At/Set index outside the matrix.
//   - ErrNotSquare          — square input required but not provided.
//   - ErrDimensionMismatch  — incompatible operand shapes.
//   - ErrSingular           — pivot magnitude below Epsilon in Inverse/Solve.
//   - ErrEigenFailed        — the delegated eigendecomposition failed.
package matrix
