// Package lvlinalg is a from-scratch playground for dense linear algebra
// decompositions — determinants, pivoted LU, Jacobi eigendecomposition,
// SVD and PCA — with every kernel written by hand and verified against
// its mathematical reconstruction identity.
//
// 🚀 What is lvlinalg?
//
//	A small, deterministic, pure-Go library that builds the classic
//	decomposition chain from first principles:
//		• Dense matrices: row-major float64 storage + the usual kernels
//		  (Add, Sub, Mul, Transpose, Scale, MatVec, norms)
//		• Determinants: Laplace cofactor expansion (validation-only) and
//		  the O(n³) route through pivoted LU
//		• LU: PA = LU with partial pivoting and swap-parity bookkeeping
//		• Eigen: classical Jacobi rotations for symmetric matrices
//		• SVD: A = U·Σ·Vᵀ derived from the eigendecomposition of AᵀA
//		• PCA: principal directions, explained variance, projections
//
// ✨ Why choose lvlinalg?
//
//   - Transparent – every elimination step and rotation is plain Go,
//     no cgo, no BLAS, no hidden numerics
//   - Deterministic – fixed loop orders, injected random sources,
//     identical inputs give identical outputs
//   - Honest errors – sentinel errors matched with errors.Is; numerical
//     degeneracy is a documented result, never a silent failure
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — the Dense value type, shared kernels and validators
//	decomp/ — Det, LU, JacobiEigen, SVD and PCA with their result types
//
// A reference CLI under cmd/lvlinalg exercises the whole chain on fixed
// example matrices and can render PCA projections as a scatter plot.
//
//	go get github.com/katalvlaran/lvlinalg
package lvlinalg
