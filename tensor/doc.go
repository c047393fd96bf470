// Package tensor stores fully symmetric (super-symmetric) cubical tensors
// sparsely and provides their contraction algebra.
//
// 🚀 What lives here?
//
//	A super-symmetric tensor is invariant under any permutation of its
//	indices, so one canonical (sorted tuple, weight) pair per symmetry
//	class is enough — the package keeps exactly that map and contracts it
//	without ever expanding the permutations:
//	  • SymTensor     — validated sparse store with merge-on-insert
//	  • Multiplicity  — the multinomial factor weighting implicit duplicates
//	  • Contract      — (k−1)-mode contraction, the tensor analog of A·x
//	  • ContractMatrix— (k−2)-mode contraction feeding per-step eigensolves
//	  • ContractSlices— the same kernel over raw parallel arrays (low memory)
//	  • Dense/Unfold  — explicit materialization & mode-1 flattening for
//	    testing and SVD seeding
//
// ✨ Conventions:
//
//   - Indices are 1-based and range over [1, Dim()]; vectors and matrices
//     exchanged with callers are ordinary 0-based Go slices and gonum types.
//   - All kernels iterate edges in canonical ascending-tuple order, so
//     floating accumulation is deterministic across runs.
//   - Inputs are read-only borrows; results are freshly allocated.
//   - Errors are package sentinels matched via errors.Is; contracting an
//     arbitrary number of modes is explicitly ErrNotImplemented.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/symtensor/tensor"
//
//	t, err := tensor.New([]tensor.Edge{
//	  {Index: []int{1, 2, 3}, Weight: 2},
//	  {Index: []int{1, 1, 2}, Weight: -1},
//	})
//	// ...
//	y, err := t.Contract([]float64{1, 0.5, 0.25})
//
// Performance: Contract is O(nnz·k²); ToDense/Unfold are exponential in the
// order and exist for small tensors and tests.
//
// See example_test.go for worked walkthroughs.
package tensor
