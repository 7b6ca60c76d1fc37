// Package decomp: singular value decomposition via eigendecomposition.
//
// SVD factors any real m×n matrix as A ≈ U·Σ·Vᵀ by eigendecomposing the
// symmetric positive-semidefinite AᵀA: eigenvalues give σ² (clamped at zero
// against floating-point noise), eigenvectors give V, and the leading left
// singular vectors come from projecting A through V. Columns of U beyond the
// numerical rank are completed by Gram-Schmidt over random candidates so U
// is a full orthogonal basis of ℝᵐ.

package decomp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// SVD computes the full singular value decomposition of an m×n matrix:
// U is m×m, Sigma is m×n, V is n×n, with A ≈ U·Sigma·Vᵀ and the singular
// values non-negative and sorted descending.
//
// Steps:
//   - Stage 1: form AᵀA (n×n, symmetric PSD) and run the Jacobi method on it
//     with the tighter SVD-internal settings; sort eigenpairs descending.
//   - Stage 2: σ_k = sqrt(max(λ_k, 0)) — the clamp guards against small
//     negative eigenvalues that floating-point noise produces on a PSD
//     matrix.
//   - Stage 3: for each k < min(m,n) with σ_k above the rank tolerance,
//     u_k = normalize(A·v_k / σ_k) and Sigma[k][k] = σ_k.
//   - Stage 4: remaining columns of U are filled by Gram-Schmidt against the
//     already-placed columns, starting from random candidates drawn from the
//     per-call source (WithRand); with the default fixed seed the result is
//     reproducible.
//
// A Jacobi budget exhaustion inside Stage 1 degrades precision but is not an
// error; the reconstruction residual simply grows.
//
// Errors: ErrNilMatrix; ErrAsymmetry cannot occur (AᵀA is symmetric by
// construction).
// Complexity: O(m·n² + n³) plus the Jacobi iteration cost.
func SVD(a *matrix.Dense, opts ...Option) (*SVDResult, error) {
	// Validate input
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, decompErrorf(opSVD, err)
	}
	o := gatherOptions(svdOptions(), opts...)

	m, n := a.Rows(), a.Cols()

	// AᵀA and its sorted eigendecomposition
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, decompErrorf(opSVD, err)
	}
	ata, err := matrix.Mul(at, a)
	if err != nil {
		return nil, decompErrorf(opSVD, err)
	}
	eig, err := jacobiEigen(ata, o)
	if err != nil {
		return nil, decompErrorf(opSVD, err)
	}
	eig, err = SortEigenDesc(eig)
	if err != nil {
		return nil, decompErrorf(opSVD, err)
	}

	// Singular values: clamped square roots of the descending eigenvalues
	sig := make([]float64, n)
	for k, v := range eig.Values {
		if v < 0 {
			v = 0
		}
		sig[k] = math.Sqrt(v)
	}

	// Allocate U (identity placeholder for unfilled columns), Sigma, V
	u, err := matrix.Identity(m)
	if err != nil {
		return nil, decompErrorf(opSVD, err)
	}
	sigma, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, decompErrorf(opSVD, err)
	}
	v := eig.Vectors

	// Project the leading left singular vectors: u_k = A·v_k / σ_k
	r := m
	if n < r {
		r = n
	}
	filled := 0
	var vk, uk []float64
	for k := 0; k < r; k++ {
		if sig[k] <= o.rankTol {
			break // descending order: everything past here is rank noise
		}
		if vk, err = v.Col(k); err != nil {
			return nil, decompErrorf(opSVD, err)
		}
		if uk, err = matrix.MatVec(a, vk); err != nil {
			return nil, decompErrorf(opSVD, err)
		}
		for i := range uk {
			uk[i] /= sig[k]
		}
		if err = u.SetCol(k, matrix.NormalizeVec(uk)); err != nil {
			return nil, decompErrorf(opSVD, err)
		}
		if err = sigma.Set(k, k, sig[k]); err != nil {
			return nil, decompErrorf(opSVD, err)
		}
		filled++
	}

	// Complete U to a full orthogonal basis via Gram-Schmidt on random
	// candidates; the source is per-call, so concurrent SVDs never share
	// generator state.
	if err = completeBasis(u, filled, o.rng()); err != nil {
		return nil, decompErrorf(opSVD, err)
	}

	return &SVDResult{U: u, Sigma: sigma, V: v}, nil
}

// completeBasis fills columns [from, m) of the m×m matrix u with unit
// vectors orthogonal to all columns before them, using random candidates
// from rng. Columns [0, from) must already be orthonormal.
// Complexity: O((m-from)·m²).
func completeBasis(u *matrix.Dense, from int, rng *rand.Rand) error {
	m := u.Rows()

	var cand, prev []float64
	var proj float64
	var err error
	for k := from; k < m; k++ {
		// Random candidate, then subtract its projection onto each earlier
		// column. One pass suffices at these scales; the normalization floor
		// guards against a degenerate draw.
		cand = make([]float64, m)
		for i := range cand {
			cand[i] = rng.NormFloat64()
		}
		for j := 0; j < k; j++ {
			if prev, err = u.Col(j); err != nil {
				return err
			}
			if proj, err = matrix.Dot(prev, cand); err != nil {
				return err
			}
			for i := range cand {
				cand[i] -= proj * prev[i]
			}
		}
		if err = u.SetCol(k, matrix.NormalizeVec(cand)); err != nil {
			return err
		}
	}

	return nil
}
