// Package decomp: classical Jacobi eigenvalue method for symmetric matrices.
//
// Each sweep annihilates the largest off-diagonal pair with a Givens
// rotation, monotonically shrinking the off-diagonal Frobenius norm —
// guaranteed convergence for real symmetric input. Exhausting the iteration
// budget is not a failure: the result carries Converged=false and the best
// diagonal/eigenvector estimate reached.

package decomp

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// JacobiEigen diagonalizes a symmetric matrix: A ≈ Q·diag(Values)·Qᵀ.
//
// Precondition: a is square and symmetric within DefaultSymmetryTol
// (Frobenius norm of A−Aᵀ); violation fails with ErrAsymmetry rather than
// producing meaningless output.
//
// Algorithm, per iteration up to MaxIter:
//   - Stage 1: off-diagonal Frobenius norm of the working copy S below the
//     tolerance → converged, stop.
//   - Stage 2: locate S[i][j] (i<j) of maximum absolute value; below the
//     tolerance → converged, stop.
//   - Stage 3: rotation angle θ = π/4 when |S[i][i]−S[j][j]| < DefaultEpsilon
//     (guards the division), else θ = ½·atan2(2·S[i][j], S[j][j]−S[i][i]).
//   - Stage 4: apply the Givens rotation in place — S ← GᵀSG with explicit
//     zeroing of the annihilated pair, Q ← QG.
//
// After termination, Values is the diagonal of S and the columns of Vectors
// are the eigenvectors. Eigenpairs arrive unsorted; see SortEigenDesc.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry.
// Determinism: fixed i→j pivot scan; first maximum wins.
// Complexity: O(maxIter·n²) scanning plus O(n) per rotation.
func JacobiEigen(a *matrix.Dense, opts ...Option) (*EigenResult, error) {
	return jacobiEigen(a, gatherOptions(defaultOptions(), opts...))
}

// jacobiEigen is the shared body; SVD calls it with tighter base options.
func jacobiEigen(a *matrix.Dense, o options) (*EigenResult, error) {
	// Validate: non-nil, square, symmetric within tolerance
	if err := matrix.ValidateSymmetric(a, DefaultSymmetryTol); err != nil {
		return nil, decompErrorf(opEigen, err)
	}

	// Working copy S and orthogonal accumulator Q = I
	n := a.Rows()
	s := a.Clone()
	q, err := matrix.Identity(n)
	if err != nil {
		return nil, decompErrorf(opEigen, err)
	}

	var (
		iter, r, c    int     // iteration counter and scan indices
		pi, pj        int     // pivot indices (pi < pj)
		off, maxOff   float64 // off-diagonal norm and max off-diagonal entry
		sii, sjj, v   float64 // diagonal entries and scan temporary
		sij           float64 // pivot entry to annihilate
		theta, cs, sn float64 // rotation angle, cosine, sine
		sri, srj      float64 // row entries during the rotation update
		qri, qrj      float64 // accumulator entries during the update
	)

	converged := false
	for iter = 0; iter < o.maxIter; iter++ {
		// Convergence on the off-diagonal Frobenius norm
		off, _ = matrix.OffDiagNorm(s)
		if off < o.tol {
			converged = true
			break
		}

		// Locate the largest off-diagonal entry (upper triangle, i<j)
		pi, pj = 0, 1
		maxOff = 0.0
		for r = 0; r < n; r++ {
			for c = r + 1; c < n; c++ {
				v, _ = s.At(r, c)
				if math.Abs(v) > maxOff {
					maxOff = math.Abs(v)
					pi, pj = r, c
				}
			}
		}
		if maxOff < o.tol {
			converged = true
			break
		}

		// Rotation angle; the π/4 branch avoids dividing by ~zero when the
		// two diagonal entries coincide.
		sii, _ = s.At(pi, pi)
		sjj, _ = s.At(pj, pj)
		sij, _ = s.At(pi, pj)
		if math.Abs(sii-sjj) < DefaultEpsilon {
			theta = math.Pi / 4
		} else {
			theta = 0.5 * math.Atan2(2*sij, sjj-sii)
		}
		cs = math.Cos(theta)
		sn = math.Sin(theta)

		// S ← GᵀSG applied in place, using symmetry: rows and columns pi,pj
		// rotate together, the rest of S is untouched.
		for r = 0; r < n; r++ {
			if r == pi || r == pj {
				continue
			}
			sri, _ = s.At(r, pi)
			srj, _ = s.At(r, pj)
			_ = s.Set(r, pi, cs*sri-sn*srj)
			_ = s.Set(pi, r, cs*sri-sn*srj)
			_ = s.Set(r, pj, sn*sri+cs*srj)
			_ = s.Set(pj, r, sn*sri+cs*srj)
		}
		_ = s.Set(pi, pi, cs*cs*sii-2*cs*sn*sij+sn*sn*sjj)
		_ = s.Set(pj, pj, sn*sn*sii+2*cs*sn*sij+cs*cs*sjj)
		_ = s.Set(pi, pj, 0.0)
		_ = s.Set(pj, pi, 0.0)

		// Q ← QG: only columns pi and pj change
		for r = 0; r < n; r++ {
			qri, _ = q.At(r, pi)
			qrj, _ = q.At(r, pj)
			_ = q.Set(r, pi, cs*qri-sn*qrj)
			_ = q.Set(r, pj, sn*qri+cs*qrj)
		}
	}

	return &EigenResult{
		Values:     s.Diag(),
		Vectors:    q,
		Converged:  converged,
		Iterations: iter,
	}, nil
}

// SortEigenDesc returns a copy of res with eigenpairs sorted by eigenvalue
// descending, eigenvector columns permuted correspondingly. Ties keep their
// original order (stable sort). The input result is not mutated.
//
// Errors: ErrNilMatrix on a nil result or nil Vectors.
// Complexity: O(n log n + n²).
func SortEigenDesc(res *EigenResult) (*EigenResult, error) {
	if res == nil {
		return nil, decompErrorf(opSortEig, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNotNil(res.Vectors); err != nil {
		return nil, decompErrorf(opSortEig, err)
	}

	// Stable permutation of indices by descending eigenvalue
	n := len(res.Values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return res.Values[idx[a]] > res.Values[idx[b]]
	})

	// Materialize permuted values and columns into fresh storage
	vals := make([]float64, n)
	vecs, err := matrix.NewDense(res.Vectors.Rows(), n)
	if err != nil {
		return nil, decompErrorf(opSortEig, err)
	}
	for k, src := range idx {
		vals[k] = res.Values[src]
		col, cerr := res.Vectors.Col(src)
		if cerr != nil {
			return nil, decompErrorf(opSortEig, cerr)
		}
		if serr := vecs.SetCol(k, col); serr != nil {
			return nil, decompErrorf(opSortEig, serr)
		}
	}

	return &EigenResult{
		Values:     vals,
		Vectors:    vecs,
		Converged:  res.Converged,
		Iterations: res.Iterations,
	}, nil
}
