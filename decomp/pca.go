// Package decomp: principal component analysis via the from-scratch SVD.

package decomp

import "github.com/katalvlaran/lvlinalg/matrix"

// PCA analyzes an n×d data matrix (n samples, d features) and retains the
// leading k principal components, 1 ≤ k ≤ d.
//
// Steps:
//   - Stage 1: compute per-feature column means and center the data.
//   - Stage 2: SVD of the centered matrix (component directions are the
//     columns of V, already sorted by singular value descending).
//   - Stage 3: Components = leading k columns of V (d×k);
//     Projected = Xc·Components (n×k).
//   - Stage 4: ExplainedVarianceRatio[i] = σ_i² / Σσ². When total variance
//     is numerically zero (below DefaultEpsilon) the denominator is defined
//     as 1, yielding zero ratios instead of dividing by zero.
//
// Errors: ErrNilMatrix, ErrBadComponents (k outside [1, d]).
// Determinism: inherits SVD's — fixed seed unless WithRand overrides.
// Complexity: the SVD cost dominates.
func PCA(x *matrix.Dense, k int, opts ...Option) (*PCAResult, error) {
	// Validate input and component count
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, decompErrorf(opPCA, err)
	}
	n, d := x.Rows(), x.Cols()
	if k < 1 || k > d {
		return nil, decompErrorf(opPCA, ErrBadComponents)
	}

	// Column means in one deterministic i→j pass
	mean := make([]float64, d)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			v, _ = x.At(i, j)
			mean[j] += v
		}
	}
	for j = 0; j < d; j++ {
		mean[j] /= float64(n)
	}

	// Centered copy Xc = X − mean (input untouched)
	xc := x.Clone()
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			v, _ = xc.At(i, j)
			_ = xc.Set(i, j, v-mean[j])
		}
	}

	// SVD of the centered data
	svd, err := SVD(xc, opts...)
	if err != nil {
		return nil, decompErrorf(opPCA, err)
	}

	// Explained variance over all min(n,d) singular values
	sing := svd.SingularValues()
	total := 0.0
	for _, s := range sing {
		total += s * s
	}
	if total < DefaultEpsilon {
		total = 1.0 // zero-variance data: ratios collapse to 0
	}
	ratio := make([]float64, k)
	for i = 0; i < k && i < len(sing); i++ {
		ratio[i] = sing[i] * sing[i] / total
	}

	// Leading k principal directions (d×k)
	components, err := matrix.NewDense(d, k)
	if err != nil {
		return nil, decompErrorf(opPCA, err)
	}
	var col []float64
	for j = 0; j < k; j++ {
		if col, err = svd.V.Col(j); err != nil {
			return nil, decompErrorf(opPCA, err)
		}
		if err = components.SetCol(j, col); err != nil {
			return nil, decompErrorf(opPCA, err)
		}
	}

	// Project centered data into the retained basis (n×k)
	projected, err := matrix.Mul(xc, components)
	if err != nil {
		return nil, decompErrorf(opPCA, err)
	}

	return &PCAResult{
		Mean:                   mean,
		Components:             components,
		ExplainedVarianceRatio: ratio,
		Projected:              projected,
	}, nil
}
