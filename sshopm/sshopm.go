package sshopm

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/symtensor/progress"
	"github.com/katalvlaran/symtensor/tensor"
)

// SSHOPM — Shifted Symmetric Higher-Order Power Method
//
// Description:
//
//	The direct tensor analog of the matrix power method: repeatedly contract
//	the tensor against the current iterate, shift, normalize. Without a
//	shift the plain iteration need not converge monotonically for arbitrary
//	symmetric tensors; a sufficiently large non-negative shift turns the
//	iteration map into a contraction toward the dominant eigenpair.
//
// Algorithm Outline:
//  1. x = x₀ / ‖x₀‖.
//  2. Each iteration:
//     z = T·x^{k−1}                 ((k−1)-mode contraction)
//     z = z + shift·x
//     if shift < 0: z = −z          (keeps the fixed-point structure valid,
//     the method assumes a non-negative
//     dominant term)
//     λ = xᵀz                       (Rayleigh-style estimate, BEFORE
//     normalization)
//     residual = z − λ·x
//     z = z / ‖z‖
//  3. Stop when ‖residual‖ < Tol (converged) or the iteration budget is
//     spent (non-converged, non-fatal). Otherwise x = z and repeat — the
//     next iterate is the normalized post-shift vector.
//
// Errors:
//   - tensor.ErrDimensionMismatch — starting vector length ≠ tensor
//     dimension (checked eagerly).
//   - ErrZeroVector               — ‖x₀‖ = 0, or the contraction
//     annihilates the iterate.
//   - context errors              — cancellation between iterations.
var (
	// ErrZeroVector indicates a zero starting vector or an iterate whose
	// shifted contraction vanished, leaving nothing to normalize.
	ErrZeroVector = errors.New("sshopm: zero vector")
)

// Operation tags for unified error wrapping.
const (
	opSolve = "Solve"
	opShift = "ConvergenceShift"
)

// sshopmErrorf wraps err with an operation tag, preserving errors.Is.
func sshopmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Result carries one approximate eigenpair of the shifted iteration map.
type Result struct {
	// Vector is the unit-norm eigenvector approximation.
	Vector []float64

	// Lambda is the eigenvalue estimate of the SHIFTED map (subtract the
	// shift to recover the tensor eigenvalue).
	Lambda float64

	// Iters counts completed iterations.
	Iters int

	// Residual is the final eigen-residual norm.
	Residual float64

	// Converged reports whether Residual met the tolerance within the
	// budget. False is a warning condition, not an error: the result is
	// still usable, and callers may retry with a larger shift or budget.
	Converged bool
}

// contractFn abstracts the (k−1)-mode contraction so the store-based and
// low-memory variants share one iteration loop.
type contractFn func(x []float64) ([]float64, error)

// Solve runs SSHOPM on a symmetric store.
//
// The context is checked once per iteration; cancellation aborts with the
// context's error. Reaching MaxIter without meeting Tol returns a usable
// Result with Converged=false and a nil error.
func Solve(ctx context.Context, t *tensor.SymTensor, x0 []float64, opts *Options) (Result, error) {
	if t == nil {
		return Result{}, sshopmErrorf(opSolve, tensor.ErrNilTensor)
	}

	return solve(ctx, t.Dim(), t.Contract, x0, gatherOptions(opts))
}

// SolveSlices runs the identical algorithm directly over parallel
// index/value arrays via tensor.ContractSlices — the low-memory variant for
// edge sets where building the store is prohibitive. Same numeric contract
// as Solve, including the sign handling for negative shifts.
func SolveSlices(ctx context.Context, indices [][]int, values []float64, dim int, x0 []float64, opts *Options) (Result, error) {
	contract := func(x []float64) ([]float64, error) {
		return tensor.ContractSlices(indices, values, dim, x)
	}

	return solve(ctx, dim, contract, x0, gatherOptions(opts))
}

// solve is the shared iteration loop. dim and o are pre-normalized.
func solve(ctx context.Context, dim int, contract contractFn, x0 []float64, o Options) (Result, error) {
	if len(x0) != dim {
		return Result{}, sshopmErrorf(opSolve, tensor.ErrDimensionMismatch)
	}
	nrm := floats.Norm(x0, 2)
	if nrm == 0 {
		return Result{}, sshopmErrorf(opSolve, ErrZeroVector)
	}

	// x = x0 / ‖x0‖; the caller's slice stays untouched.
	x := make([]float64, dim)
	copy(x, x0)
	floats.Scale(1/nrm, x)

	var (
		iter            int
		lambda, resNorm float64
		res             = make([]float64, dim) // residual workspace
	)
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		z, err := contract(x)
		if err != nil {
			return Result{}, err
		}
		floats.AddScaled(z, o.Shift, x) // z += shift·x
		if o.Shift < 0 {
			floats.Scale(-1, z) // sign correction for negative shifts
		}

		lambda = floats.Dot(x, z) // BEFORE normalization
		copy(res, z)
		floats.AddScaled(res, -lambda, x) // residual = z − λ·x
		resNorm = floats.Norm(res, 2)

		znrm := floats.Norm(z, 2)
		if znrm == 0 {
			return Result{}, sshopmErrorf(opSolve, ErrZeroVector)
		}
		floats.Scale(1/znrm, z)
		iter++

		if o.Every > 0 && iter%o.Every == 0 {
			o.Observer.Observe(progress.Snapshot{Iter: iter, Lambda: lambda, Residual: resNorm, Delta: resNorm})
		}

		if resNorm < o.Tol {
			return Result{Vector: z, Lambda: lambda, Iters: iter, Residual: resNorm, Converged: true}, nil
		}
		if iter >= o.MaxIter {
			return Result{Vector: z, Lambda: lambda, Iters: iter, Residual: resNorm, Converged: false}, nil
		}
		x = z
	}
}

// ConvergenceShift reports a shift magnitude guaranteeing monotone
// convergence of Solve for the given tensor. The bound depends on the
// tensor order alone, or additionally on the Frobenius norm of the tensor
// when useNorm is set (the norm-aware bound is tighter).
//
// Not yet implemented; the contract is kept on the surface so callers can
// code against it and so the shift-selection policy stays a documented,
// explicit gap rather than a silent omission. Until it lands, choose shifts
// manually — (k−1)·‖T‖ with ‖T‖ = tensor.Norm() is a safe overestimate.
//
// TODO: implement the order-dependent bound and its norm-aware refinement.
func ConvergenceShift(t *tensor.SymTensor, useNorm bool) (float64, error) {
	if t == nil {
		return 0, sshopmErrorf(opShift, tensor.ErrNilTensor)
	}
	_ = useNorm

	return 0, sshopmErrorf(opShift, tensor.ErrNotImplemented)
}
