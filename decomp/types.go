// SPDX-License-Identifier: MIT

// Package decomp: result aggregates.
// Every decomposition returns a plain struct of freshly allocated matrices
// and vectors; results own their storage and never alias the input matrix.

package decomp

import "github.com/katalvlaran/lvlinalg/matrix"

// LUResult holds the factors of a partially pivoted LU decomposition.
//
// Invariants (within numerical tolerance):
//   - P·A ≈ L·U
//   - L is unit lower triangular (diagonal all 1)
//   - U is upper triangular
//   - SwapCount parity determines det(P) = (-1)^SwapCount
type LUResult struct {
	P *matrix.Dense // permutation matrix, n×n
	L *matrix.Dense // unit lower triangular factor, n×n
	U *matrix.Dense // upper triangular factor, n×n

	// SwapCount is the number of row exchanges performed during pivoting.
	SwapCount int
}

// EigenResult holds the spectral decomposition of a symmetric matrix.
//
// Invariants (for symmetric input, within tolerance):
//   - A ≈ Q·diag(Values)·Qᵀ where Q = Vectors
//   - QᵀQ ≈ I (columns are orthonormal eigenvectors)
//
// Converged=false means the iteration budget ran out before the off-diagonal
// norm fell under the tolerance; Values/Vectors then hold the best estimate
// reached. This is documented best-effort behavior, not an error.
type EigenResult struct {
	Values  []float64     // eigenvalues, one per column of Vectors
	Vectors *matrix.Dense // eigenvector matrix Q, n×n, column k ↔ Values[k]

	Converged  bool // whether the off-diagonal norm fell under tolerance
	Iterations int  // rotations applied before termination
}

// SVDResult holds a full singular value decomposition.
//
// Invariants (within tolerance):
//   - A ≈ U·Sigma·Vᵀ
//   - Sigma is m×n, zero off the leading diagonal, entries non-negative
//     and sorted descending
//   - U (m×m) and V (n×n) have orthonormal columns
type SVDResult struct {
	U     *matrix.Dense // left singular vectors, m×m
	Sigma *matrix.Dense // rectangular diagonal of singular values, m×n
	V     *matrix.Dense // right singular vectors, n×n
}

// SingularValues returns a copy of the leading diagonal of Sigma,
// length min(m, n).
func (r *SVDResult) SingularValues() []float64 {
	return r.Sigma.Diag()
}

// PCAResult holds a principal component analysis of an n×d data matrix.
//
// Invariants:
//   - Components is d×k with orthonormal columns (unit principal directions)
//   - ExplainedVarianceRatio has length k, entries non-increasing and
//     summing to at most 1
//   - Projected is n×k, the centered data expressed in the retained basis
type PCAResult struct {
	Mean                   []float64     // per-feature column means, length d
	Components             *matrix.Dense // principal directions, d×k
	ExplainedVarianceRatio []float64     // variance fraction per component, length k
	Projected              *matrix.Dense // projected coordinates, n×k
}
