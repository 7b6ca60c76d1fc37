// Package decomp: LU decomposition with partial pivoting.
//
// LU produces P, L, U with P·A ≈ L·U, selecting at each step the
// largest-magnitude pivot in the current column for numerical stability.
// The near-zero-pivot policy is deliberately lenient: a degenerate column is
// passed through unchanged rather than reported as an error, which leaves a
// zero on U's diagonal and lets DetViaLU report a zero determinant for
// singular inputs. Do not "fix" this into a failure.

package decomp

import (
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// LU computes the partially pivoted factorization P·A ≈ L·U.
//
// Algorithm, per pivot column k in fixed order:
//   - Stage 1: select the row in [k, n) with maximum |U[i][k]| as pivot.
//   - Stage 2: if the pivot magnitude is below DefaultEpsilon, the column is
//     treated as already eliminated (singular degeneracy) — skip it.
//   - Stage 3: if the pivot row differs from k, swap rows k↔pivot in the
//     working copy of U, in P, and in the already-computed columns [0,k) of
//     L; count the swap.
//   - Stage 4: for each row i > k, store factor = U[i][k]/U[k][k] in L[i][k]
//     and subtract factor × (pivot row) from row i over columns [k, n).
//
// The input is never mutated; U starts as an owned clone of a.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Determinism: fixed column order, first-maximum pivot selection.
// Complexity: O(n³) time, O(n²) space.
func LU(a *matrix.Dense) (*LUResult, error) {
	// Validate square input
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, decompErrorf(opLU, err)
	}

	// Working copies: U ← A, L ← I, P ← I
	n := a.Rows()
	u := a.Clone()
	l, err := matrix.Identity(n)
	if err != nil {
		return nil, decompErrorf(opLU, err)
	}
	p, err := matrix.Identity(n)
	if err != nil {
		return nil, decompErrorf(opLU, err)
	}

	var (
		k, i, j, pivot int     // loop iterators and pivot row index
		best, cand     float64 // pivot magnitudes during selection
		pv, factor     float64 // pivot value and elimination factor
		uk, ui         float64 // row entries during elimination
	)
	swaps := 0
	for k = 0; k < n; k++ {
		// Select the largest-magnitude pivot in column k, rows [k, n)
		pivot = k
		best = 0.0
		for i = k; i < n; i++ {
			cand, _ = u.At(i, k)
			if math.Abs(cand) > best {
				best = math.Abs(cand)
				pivot = i
			}
		}

		// Lenient singular policy: a numerically zero column is skipped
		// untouched, leaving U[k][k] ≈ 0 for the determinant to see.
		if best < DefaultEpsilon {
			continue
		}

		// Row exchange in U (full rows), P (full rows), L (columns [0,k))
		if pivot != k {
			swapRows(u, k, pivot, 0, n)
			swapRows(p, k, pivot, 0, n)
			if k > 0 {
				swapRows(l, k, pivot, 0, k)
			}
			swaps++
		}

		// Eliminate below the pivot
		pv, _ = u.At(k, k)
		for i = k + 1; i < n; i++ {
			ui, _ = u.At(i, k)
			factor = ui / pv
			_ = l.Set(i, k, factor)
			for j = k; j < n; j++ {
				uk, _ = u.At(k, j)
				ui, _ = u.At(i, j)
				_ = u.Set(i, j, ui-factor*uk)
			}
		}
	}

	return &LUResult{P: p, L: l, U: u, SwapCount: swaps}, nil
}

// DetViaLU computes det(A) through the pivoted factorization:
// det(U) is the product of U's diagonal (det(L)=1 by construction), and
// det(P) = (-1)^SwapCount, so det(A) = det(U) / det(P).
//
// A singular input yields 0 via the zero diagonal entry the lenient pivot
// policy leaves behind.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n³).
func DetViaLU(a *matrix.Dense) (float64, error) {
	res, err := LU(a)
	if err != nil {
		return 0, decompErrorf(opDetViaLU, err)
	}

	detU := 1.0
	for _, d := range res.U.Diag() {
		detU *= d
	}

	detP := 1.0
	if res.SwapCount%2 == 1 {
		detP = -1.0
	}

	return detU / detP, nil
}

// swapRows exchanges rows a and b of m over the half-open column range
// [lo, hi). Complexity: O(hi-lo).
func swapRows(m *matrix.Dense, a, b, lo, hi int) {
	var va, vb float64
	for j := lo; j < hi; j++ {
		va, _ = m.At(a, j)
		vb, _ = m.At(b, j)
		_ = m.Set(a, j, vb)
		_ = m.Set(b, j, va)
	}
}
