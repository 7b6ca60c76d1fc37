// Package decomp: determinant via Laplace cofactor expansion.
//
// Det exists to validate DetViaLU on small matrices; its cost is factorial
// and it must never be pointed at production-size inputs. The two routes are
// cross-checked in tests and agree to 1e-6 relative tolerance for
// well-conditioned matrices up to size 5.

package decomp

import (
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Det computes the determinant of a square matrix by recursive Laplace
// expansion along the first row.
//
// Contract:
//   - a must be square; ErrDimensionMismatch otherwise (fail fast).
//   - n=1 returns the sole entry; n=2 returns ad−bc.
//   - n>2 sums (-1)^j · a[0][j] · det(minor(a,0,j)) over j, skipping terms
//     whose leading coefficient is below DefaultEpsilon in absolute value.
//     The skip is a pure optimization on exact zeros and near-zeros far
//     below float64 noise; it never drops small-but-significant terms at
//     this threshold.
//
// Determinism: fixed column order; no data-dependent reordering.
// Complexity: O(n!) time — validation-only.
func Det(a *matrix.Dense) (float64, error) {
	// Validate square input
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, decompErrorf(opDet, err)
	}

	return detRecursive(a), nil
}

// detRecursive is the unchecked recursion body; a is known square.
func detRecursive(a *matrix.Dense) float64 {
	n := a.Rows()

	// Closed forms for the recursion base
	if n == 1 {
		v, _ := a.At(0, 0)
		return v
	}
	if n == 2 {
		a00, _ := a.At(0, 0)
		a01, _ := a.At(0, 1)
		a10, _ := a.At(1, 0)
		a11, _ := a.At(1, 1)
		return a00*a11 - a01*a10
	}

	// Expand along row 0
	var total, lead, sign float64
	for j := 0; j < n; j++ {
		lead, _ = a.At(0, j)
		if math.Abs(lead) < DefaultEpsilon {
			continue // zero coefficient contributes nothing
		}
		sign = 1.0
		if j%2 == 1 {
			sign = -1.0
		}
		total += sign * lead * detRecursive(minor(a, 0, j))
	}

	return total
}

// minor returns a copy of a with row i and column j removed; a is known
// square with n ≥ 2. Complexity: O(n²).
func minor(a *matrix.Dense, i, j int) *matrix.Dense {
	n := a.Rows()
	m, _ := matrix.NewDense(n-1, n-1)

	var r, c, mr, mc int
	var v float64
	for r, mr = 0, 0; r < n; r++ {
		if r == i {
			continue
		}
		for c, mc = 0, 0; c < n; c++ {
			if c == j {
				continue
			}
			v, _ = a.At(r, c)
			_ = m.Set(mr, mc, v)
			mc++
		}
		mr++
	}

	return m
}
