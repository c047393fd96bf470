// Package progress decouples the eigensolvers' diagnostic side channel from
// their numeric cores: solvers hand periodic Snapshots to an injectable
// Observer and stay silent by default, so the cores remain testable without
// capturing output streams.
package progress

import "github.com/charmbracelet/log"

// Snapshot is one diagnostic sample of a running solver iteration. It is a
// side channel, not part of any return contract.
type Snapshot struct {
	// Iter is the 1-based iteration (or integration step) counter.
	Iter int

	// Lambda is the current eigenvalue estimate.
	Lambda float64

	// Residual is the current eigen-residual norm.
	Residual float64

	// Delta is the current update norm: the residual again for the power
	// method, the derivative norm for the dynamical solver.
	Delta float64
}

// Observer receives periodic snapshots from a running solver. Observe is
// called from the solver's own goroutine between iterations; implementations
// must not block for long.
type Observer interface {
	Observe(Snapshot)
}

// Func adapts a plain function to the Observer interface.
type Func func(Snapshot)

// Observe implements Observer.
func (f Func) Observe(s Snapshot) { f(s) }

type discard struct{}

func (discard) Observe(Snapshot) {}

// Discard returns the silent observer: every snapshot is dropped. Solvers
// default to it when no observer is configured.
func Discard() Observer { return discard{} }

// NewLogObserver returns an observer that emits one structured log line per
// snapshot: iteration number, update norm, eigenvalue estimate and residual
// norm.
func NewLogObserver(l *log.Logger) Observer {
	return Func(func(s Snapshot) {
		l.Info("iteration",
			"iter", s.Iter,
			"delta", s.Delta,
			"lambda", s.Lambda,
			"residual", s.Residual,
		)
	})
}
