// SPDX-License-Identifier: MIT

// Package decomp: functional configuration for the iterative decompositions.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness. The
//     SVD basis completion draws from a per-call generator seeded with
//     DefaultSeed unless the caller injects a source via WithRand.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); user-data problems surface as errors at the call site.
//   - Zero-value friendliness: calling any decomposition with no options
//     uses the documented defaults below.

package decomp

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute threshold under which a value is treated
	// as numerically zero: cofactor terms are skipped, LU pivots are deemed
	// degenerate, and PCA total variance collapses to the safe denominator.
	DefaultEpsilon = 1e-10

	// DefaultSymmetryTol bounds ‖A−Aᵀ‖_F for JacobiEigen input acceptance.
	DefaultSymmetryTol = 1e-8

	// DefaultMaxIter caps Jacobi rotations for a direct JacobiEigen call.
	DefaultMaxIter = 10000

	// DefaultTolerance is the off-diagonal Frobenius norm at which the
	// Jacobi iteration is considered converged.
	DefaultTolerance = 1e-12

	// DefaultRankTolerance is the singular-value threshold below which a
	// column is past the numerical rank and the left singular vector is
	// completed by Gram-Schmidt instead of projection.
	DefaultRankTolerance = 1e-10

	// DefaultSeed seeds the private random source used by SVD basis
	// completion when the caller does not inject one. A fixed seed keeps
	// repeated calls bit-identical.
	DefaultSeed = 1

	// svdMaxIter and svdTolerance are the tighter Jacobi settings SVD uses
	// for the inner eigendecomposition of AᵀA.
	svdMaxIter   = 20000
	svdTolerance = 1e-14
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterInvalid = "decomp: WithMaxIter: iterations must be > 0"
	panicTolInvalid     = "decomp: WithTolerance: tol must be finite, positive"
	panicRankTolInvalid = "decomp: WithRankTolerance: tol must be finite, non-negative"
	panicRandNil        = "decomp: WithRand: source must be non-nil"
)

// ---------- Public option type (functional) ----------

// options carries the resolved configuration; fields are unexported, public
// APIs consume ...Option.
type options struct {
	maxIter int
	tol     float64
	rankTol float64
	src     rand.Source
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// WithMaxIter caps the number of Jacobi rotations. Exhausting the budget is
// not an error; the result reports Converged=false.
// Panics if n <= 0 (programmer error).
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIter = n }
}

// WithTolerance sets the off-diagonal Frobenius norm at which the Jacobi
// iteration stops. Panics if tol is not finite and positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithRankTolerance sets the singular-value cutoff for the numerical rank in
// SVD. Panics if tol is not finite and non-negative.
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRankTolInvalid)
	}

	return func(o *options) { o.rankTol = tol }
}

// WithRand injects the random source used by SVD's Gram-Schmidt completion.
// Inject distinct sources for concurrent calls, or distinct seeds for
// distinct experiments; the default is a fixed-seed source per call.
// Panics if src is nil.
func WithRand(src rand.Source) Option {
	if src == nil {
		panic(panicRandNil)
	}

	return func(o *options) { o.src = src }
}

// defaultOptions is the base configuration for a direct JacobiEigen call.
func defaultOptions() options {
	return options{
		maxIter: DefaultMaxIter,
		tol:     DefaultTolerance,
		rankTol: DefaultRankTolerance,
	}
}

// svdOptions is the base configuration SVD (and PCA) uses for the inner
// eigendecomposition of AᵀA: a tighter tolerance and a larger budget, since
// singular values are square roots and lose half the achieved precision.
func svdOptions() options {
	o := defaultOptions()
	o.maxIter = svdMaxIter
	o.tol = svdTolerance

	return o
}

// gatherOptions applies opts over the given base defaults and finalizes the
// per-call random generator. Caller-supplied options always win.
func gatherOptions(base options, opts ...Option) options {
	for _, opt := range opts {
		opt(&base)
	}
	if base.src == nil {
		base.src = rand.NewSource(DefaultSeed)
	}

	return base
}

// rng materializes the per-call generator from the configured source.
func (o *options) rng() *rand.Rand {
	return rand.New(o.src)
}
