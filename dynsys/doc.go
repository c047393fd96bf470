// Package dynsys computes tensor eigenpairs by integrating a dynamical
// system whose fixed points are eigenvectors of a super-symmetric tensor.
//
// 🚀 How does it work?
//
//	Contract the tensor against the iterate down to a matrix, take that
//	matrix's m-th eigenvector (sign-aligned), and flow the iterate toward
//	it:
//
//	  dx/dt = v_m(T·x^{k−2}) − x,
//
//	integrated with fixed-step forward Euler. Unlike the power method this
//	reaches non-dominant eigenpairs directly: pick them with Options.Which.
//
// ✨ Key features:
//   - pluggable matrix-eigensolver collaborator (Eigensolver interface) —
//     the per-step full eigensolve is the scalability bottleneck, swap in a
//     cheaper top-m extractor without touching the integration loop
//   - sparse (Solve) and explicit dense-array (SolveDense) paths sharing
//     one loop and one return contract
//   - optional step cap (unbounded by default) and context cancellation
//   - injectable progress.Observer cadence, silent by default
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/symtensor/dynsys"
//
//	opts := dynsys.DefaultOptions()
//	opts.Step = 0.5
//	opts.Which = 2 // second eigenvector
//	res, err := dynsys.Solve(ctx, t, x0, &opts)
//
// Performance: each step costs one (k−2)-mode contraction O(nnz·k³) plus
// one n×n symmetric eigendecomposition.
//
// See example_test.go for a worked run.
package dynsys
