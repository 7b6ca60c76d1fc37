// Package matrix provides the dense storage type and shared linear-algebra
// kernels used by the decomposition suite: element-wise addition and
// subtraction, matrix multiplication, transpose, scalar scaling,
// matrix-vector products, and the norm helpers the iterative algorithms
// converge against.
//
// Design rules, enforced package-wide:
//
//   - Immutability: public operations never mutate their operands; every
//     kernel allocates a fresh *Dense for its result. Working copies used
//     inside decompositions are owned by the callee, never aliased.
//   - Determinism: fixed loop orders (flat 0..n-1 or i→j), no data-dependent
//     traversal, no global state. Identical inputs produce identical outputs.
//   - Fail-fast validation: shape and nil checks live in validators.go as a
//     single source of truth and return plain sentinel errors; kernels wrap
//     them with an operation tag so callers can still match via errors.Is.
//
// Complexity:
//   - Element-wise kernels and Transpose: O(r·c)
//   - Mul: O(r·n·c)
//   - MatVec: O(r·c)
//
// See decomp/ for the decomposition algorithms built on these kernels.
package matrix
