package dynsys

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symtensor/progress"
	"github.com/katalvlaran/symtensor/tensor"
)

// Dynamical-System Eigensolver
//
// Description:
//
//	Models the ODE
//
//	  dx/dt = v_m(T·x^{k−2}) − x,
//
//	where v_m is the (sign-aligned) m-th eigenvector of the once-contracted
//	matrix, and integrates it with fixed-step forward Euler from x₀/‖x₀‖.
//	A fixed point of the ODE is a tensor eigenvector.
//
// Algorithm Outline:
//  1. x = x₀ / ‖x₀‖.
//  2. Each step:
//     A      = T·x^{k−2}          ((k−2)-mode contraction)
//     v      = m-th eigenvector of A via the collaborator
//     if v[0] < 0: v = −v         (sign alignment prevents oscillation
//     from arbitrary eigenvector sign)
//     dx/dt  = v − x
//     λ      = xᵀ·A·x
//  3. Stop when ‖dx/dt‖ ≤ Tol, returning (x, λ, steps). Otherwise
//     x = x + h·dx/dt and repeat. The iterate is NOT re-normalized.
//
// Errors:
//   - tensor.ErrDimensionMismatch — x₀ length ≠ dimension, or Which exceeds
//     the dimension (checked eagerly, before iterating).
//   - ErrZeroVector               — ‖x₀‖ = 0.
//   - ErrEigenFailed              — collaborator non-convergence
//     (propagated; no retry).
//   - context errors              — cancellation between steps.

// opSolve tags solver-level error wrapping.
const opSolve = "Solve"

// ErrZeroVector mirrors the power method's starting-vector guard.
var ErrZeroVector = fmt.Errorf("dynsys: zero vector")

// dynsysErrorf wraps err with an operation tag, preserving errors.Is.
func dynsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Result carries the integration outcome.
type Result struct {
	// Vector is the final iterate x.
	Vector []float64

	// Lambda is the generalized Rayleigh quotient xᵀ·(T·x^{k−2})·x at the
	// final step.
	Lambda float64

	// Steps counts completed integration steps.
	Steps int

	// Derivative is the final ‖dx/dt‖.
	Derivative float64

	// Converged reports whether Derivative met the tolerance. It is false
	// only when a non-zero MaxSteps cap was hit.
	Converged bool
}

// contractMatFn abstracts the (k−2)-mode contraction so the sparse and
// dense paths share one integration loop.
type contractMatFn func(x []float64) (*mat.SymDense, error)

// Solve integrates the ODE over a symmetric store until ‖dx/dt‖ ≤ Tol (or
// a configured step cap / context cancellation intervenes).
func Solve(ctx context.Context, t *tensor.SymTensor, x0 []float64, opts *Options) (Result, error) {
	if t == nil {
		return Result{}, dynsysErrorf(opSolve, tensor.ErrNilTensor)
	}

	return solve(ctx, t.Dim(), t.ContractMatrix, x0, gatherOptions(opts))
}

// SolveDense performs the identical integration directly on an explicit
// k-dimensional cubical array, without a symmetric-tensor representation —
// the small/testing path. Same return contract as Solve.
func SolveDense(ctx context.Context, d *tensor.Dense, x0 []float64, opts *Options) (Result, error) {
	if d == nil {
		return Result{}, dynsysErrorf(opSolve, tensor.ErrNilTensor)
	}

	return solve(ctx, d.Dim(), d.ContractMatrix, x0, gatherOptions(opts))
}

// solve is the shared forward-Euler loop. dim and o are pre-normalized.
func solve(ctx context.Context, dim int, contract contractMatFn, x0 []float64, o Options) (Result, error) {
	if len(x0) != dim {
		return Result{}, dynsysErrorf(opSolve, tensor.ErrDimensionMismatch)
	}
	if o.Which > dim {
		return Result{}, dynsysErrorf(opSolve, tensor.ErrDimensionMismatch)
	}
	nrm := floats.Norm(x0, 2)
	if nrm == 0 {
		return Result{}, dynsysErrorf(opSolve, ErrZeroVector)
	}

	x := make([]float64, dim)
	copy(x, x0)
	floats.Scale(1/nrm, x)

	var (
		steps          int
		lambda, dxNorm float64
		dxdt           = make([]float64, dim)
	)
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		a, err := contract(x)
		if err != nil {
			return Result{}, err
		}
		_, vecs, err := o.Solver.TopM(a, o.Which)
		if err != nil {
			return Result{}, dynsysErrorf(opSolve, err)
		}
		v := mat.Col(nil, o.Which-1, vecs)
		if v[0] < 0 {
			floats.Scale(-1, v) // first coordinate non-negative
		}

		floats.SubTo(dxdt, v, x) // dx/dt = v − x
		dxNorm = floats.Norm(dxdt, 2)
		lambda = quadForm(a, x)
		steps++

		if o.Every > 0 && steps%o.Every == 0 {
			o.Observer.Observe(progress.Snapshot{Iter: steps, Lambda: lambda, Residual: dxNorm, Delta: dxNorm})
		}

		if dxNorm <= o.Tol {
			return Result{Vector: x, Lambda: lambda, Steps: steps, Derivative: dxNorm, Converged: true}, nil
		}
		if o.MaxSteps > 0 && steps >= o.MaxSteps {
			return Result{Vector: x, Lambda: lambda, Steps: steps, Derivative: dxNorm, Converged: false}, nil
		}
		floats.AddScaled(x, o.Step, dxdt) // forward Euler
	}
}

// quadForm evaluates xᵀ·A·x for a symmetric A. Deterministic i→j order.
func quadForm(a *mat.SymDense, x []float64) float64 {
	n := a.SymmetricDim()
	sum := 0.0
	var i, j int
	for i = 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			sum += x[i] * a.At(i, j) * x[j]
		}
	}

	return sum
}
