// Package sshopm implements the Shifted Symmetric Higher-Order Power
// Method: the tensor generalization of shifted power iteration, producing
// an approximate dominant eigenpair of a super-symmetric tensor.
//
// 🚀 Why a shift?
//
//	For matrices, power iteration converges whenever a dominant eigenvalue
//	exists. For higher-order symmetric tensors the plain analog can cycle;
//	adding α·x to the contraction before normalizing (with α large enough)
//	restores monotone convergence toward the dominant eigenpair. Negative
//	shifts, with an internal sign correction, steer to the other end of the
//	spectrum.
//
// ✨ Key features:
//   - store-based Solve and low-memory SolveSlices over parallel arrays —
//     identical numeric contract
//   - residual-based stopping with an explicit iteration budget; running
//     out of budget is a status flag, never an error
//   - context cancellation between iterations
//   - injectable progress.Observer cadence, silent by default
//   - ConvergenceShift: the shift-selection bound as a documented,
//     explicitly unimplemented contract (tensor.ErrNotImplemented)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/symtensor/sshopm"
//
//	opts := sshopm.DefaultOptions()
//	opts.Shift = 2
//	res, err := sshopm.Solve(ctx, t, x0, &opts)
//	if err != nil { ... }
//	if !res.Converged { /* retry with a larger shift or budget */ }
//
// Performance: one (k−1)-mode contraction per iteration, O(nnz·k²) each.
//
// See example_test.go for a worked run on a matrix-equivalent tensor.
package sshopm
