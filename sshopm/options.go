// Package sshopm: configuration for the shifted power method.
package sshopm

import "github.com/katalvlaran/symtensor/progress"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultShift applies no shift: adequate for tensors whose iteration
	// map already contracts; raise it when the residual oscillates.
	DefaultShift = 0.0

	// DefaultTol is the residual-norm stopping threshold.
	DefaultTol = 1e-10

	// DefaultMaxIter caps the iteration budget.
	DefaultMaxIter = 500

	// DefaultEvery disables progress reporting (0 = silent).
	DefaultEvery = 0
)

// Options configures the shifted symmetric higher-order power method.
//
// Fields:
//   - Shift    — additive shift α: each iteration computes T·x^{k−1} + α·x.
//     A sufficiently large non-negative shift makes the iteration map a
//     contraction toward the dominant eigenpair; negative shifts steer
//     toward the opposite end of the spectrum (with internal sign
//     correction). Note the returned Lambda estimates the SHIFTED map's
//     eigenvalue: subtract Shift to recover the tensor eigenvalue.
//   - Tol      — convergence threshold on the eigen-residual norm.
//   - MaxIter  — iteration budget; reaching it without meeting Tol is a
//     non-fatal condition surfaced via Result.Converged=false.
//   - Every    — progress cadence: one Observer sample every Every
//     iterations; 0 disables.
//   - Observer — diagnostic sink; nil means silent.
//
// Example:
//
//	opts := sshopm.DefaultOptions()
//	opts.Shift = 2
//	opts.MaxIter = 1000
//	res, err := sshopm.Solve(ctx, t, x0, &opts)
type Options struct {
	Shift    float64
	Tol      float64
	MaxIter  int
	Every    int
	Observer progress.Observer
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Shift:    DefaultShift,
		Tol:      DefaultTol,
		MaxIter:  DefaultMaxIter,
		Every:    DefaultEvery,
		Observer: progress.Discard(),
	}
}

// gatherOptions normalizes a caller-supplied options pointer: nil falls back
// to the defaults, zero/invalid fields are filled in.
func gatherOptions(opts *Options) Options {
	if opts == nil {
		d := DefaultOptions()

		return d
	}
	o := *opts
	if o.Tol <= 0 {
		o.Tol = DefaultTol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}
	if o.Every < 0 {
		o.Every = DefaultEvery
	}
	if o.Observer == nil {
		o.Observer = progress.Discard()
	}

	return o
}
