// Package dynsys: configuration for the continuous-time eigensolver.
package dynsys

import "github.com/katalvlaran/symtensor/progress"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStep is the forward-Euler step size h.
	DefaultStep = 1e-2

	// DefaultTol is the derivative-norm stopping threshold.
	DefaultTol = 1e-8

	// DefaultWhich selects the dominant (first) eigenvector each step.
	DefaultWhich = 1

	// DefaultMaxSteps leaves the integration unbounded (0), preserving the
	// method's native behavior; set a cap to make runs interruptible
	// without a context.
	DefaultMaxSteps = 0

	// DefaultEvery disables progress reporting (0 = silent).
	DefaultEvery = 0
)

// Options configures the dynamical-system eigensolver.
//
// Fields:
//   - Step     — forward-Euler step size h in x ← x + h·dx/dt.
//   - Tol      — stop when ‖dx/dt‖ ≤ Tol.
//   - Which    — 1-based eigenvector choice m handed to the collaborator
//     each step (1 = dominant). Must not exceed the dimension.
//   - MaxSteps — optional cap on integration steps; 0 means unbounded.
//     Hitting a non-zero cap surfaces as Result.Converged=false.
//   - Every    — progress cadence; 0 disables.
//   - Observer — diagnostic sink; nil means silent.
//   - Solver   — matrix-eigensolver collaborator; nil means SymEig{}.
type Options struct {
	Step     float64
	Tol      float64
	Which    int
	MaxSteps int
	Every    int
	Observer progress.Observer
	Solver   Eigensolver
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Step:     DefaultStep,
		Tol:      DefaultTol,
		Which:    DefaultWhich,
		MaxSteps: DefaultMaxSteps,
		Every:    DefaultEvery,
		Observer: progress.Discard(),
		Solver:   SymEig{},
	}
}

// gatherOptions normalizes a caller-supplied options pointer.
func gatherOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	o := *opts
	if o.Step <= 0 {
		o.Step = DefaultStep
	}
	if o.Tol <= 0 {
		o.Tol = DefaultTol
	}
	if o.Which < 1 {
		o.Which = DefaultWhich
	}
	if o.MaxSteps < 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.Every < 0 {
		o.Every = DefaultEvery
	}
	if o.Observer == nil {
		o.Observer = progress.Discard()
	}
	if o.Solver == nil {
		o.Solver = SymEig{}
	}

	return o
}
