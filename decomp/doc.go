// Package decomp implements the classic dense decomposition chain from
// scratch: determinants, LU with partial pivoting, the Jacobi eigenvalue
// method for symmetric matrices, SVD derived from the eigendecomposition of
// AᵀA, and PCA on top of the SVD.
//
// 🚀 What is decomp?
//
//	Five pure functions over matrix.Dense values, each returning a plain
//	result aggregate and honoring a reconstruction identity:
//	  • Det        — Laplace cofactor expansion, O(n!), validation-only
//	  • LU         — P·A ≈ L·U with partial pivoting and swap parity
//	  • JacobiEigen — A ≈ Q·Λ·Qᵀ for symmetric A, Q orthogonal
//	  • SVD        — A ≈ U·Σ·Vᵀ, Σ non-negative and descending
//	  • PCA        — principal directions, explained variance, projections
//
// ✨ Behavior contracts:
//
//   - Inputs are never mutated; decompositions work on owned copies.
//   - Numerical degeneracy is not an error: near-zero LU pivots pass the
//     column through untouched (so a singular matrix yields a zero
//     determinant), near-zero singular values switch the left basis to
//     Gram-Schmidt completion, and a Jacobi iteration that runs out of
//     budget returns its best-effort result with Converged=false.
//   - Contract violations ARE errors: non-square input where square is
//     required, asymmetric input to JacobiEigen, out-of-range PCA k. All
//     are sentinel-matched via errors.Is.
//   - Determinism: fixed traversal orders everywhere; the only random
//     element (SVD basis completion) draws from a per-call source seeded
//     to DefaultSeed unless WithRand overrides it, so repeated calls are
//     bit-identical and concurrent calls never share state.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlinalg/decomp"
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1, 3}, {4, 1, 6}, {1, -2, 0}})
//	d, err := decomp.DetViaLU(a)            // 3
//	res, err := decomp.SVD(a)               // res.U, res.Sigma, res.V
//	p, err := decomp.PCA(x, 2,
//	    decomp.WithRand(rand.NewSource(42)))
//
// Performance:
//
//   - Det: O(n!) — keep n ≤ 6, it exists to validate DetViaLU
//   - LU / DetViaLU: O(n³)
//   - JacobiEigen: O(maxIter·n²) scan + O(n) update per rotation
//   - SVD: O(n³) for AᵀA plus the Jacobi cost
//
// See example_test.go for complete walkthroughs.
package decomp
