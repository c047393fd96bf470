// SPDX-License-Identifier: MIT
// Package tensor: contraction algebra over the symmetric store.
//
// Purpose:
//   - Contract: the (k−1)-mode contraction y = T·x^{k−1}, the direct
//     generalization of the matrix-vector product.
//   - ContractMatrix: the (k−2)-mode contraction A = T·x^{k−2}, the dense
//     symmetric matrix the dynamical-system solver re-decomposes each step.
//   - ContractSlices: the low-memory (k−1)-mode variant over raw parallel
//     arrays, bypassing the store entirely.
//   - ContractN: the tagged dispatcher; depths other than 1 and 2 report
//     ErrNotImplemented because they require intermediate symmetric tensors
//     the data model does not represent.
//
// Correctness note (pivot dedupe): distinct pivot positions of an edge with
// repeated values produce IDENTICAL sub-sequences; exactly one contribution
// per distinct sub-sequence is required, not one per position, or symmetric
// redundancy is double counted. Sorted tuples make duplicate pivots
// adjacent, so the dedupe is a single equality test against the previous
// position.

package tensor

import "gonum.org/v1/gonum/mat"

// ContractOp tags a contraction depth on the operation surface. Unsupported
// depths stay on the surface as explicit, documented variants instead of
// being silently omitted.
type ContractOp int

const (
	// OpToVector contracts k−1 modes, producing a dense vector. Supported.
	OpToVector ContractOp = iota

	// OpToMatrix contracts k−2 modes, producing a dense symmetric matrix.
	// Supported.
	OpToMatrix

	// OpGeneral contracts an arbitrary number of modes. Not implemented:
	// the result is a (k−j)-order symmetric tensor the store cannot hold.
	OpGeneral
)

// Supported reports whether the tagged depth has a production-quality kernel.
func (op ContractOp) Supported() bool { return op == OpToVector || op == OpToMatrix }

// Contract computes the (k−1)-mode contraction of the tensor with x:
//
//	y[i] = Σ over stored edges with a slot on i of
//	       weight · multiplicity(sub) · ∏ x[sub],
//
// where sub is the edge's index tuple with one pivot slot deleted and
// multiplicity is the multinomial factor of §Multiplicity. For an order-2
// tensor this is exactly the symmetric matrix-vector product.
//
// Behavior highlights:
//   - One contribution per DISTINCT sub-sequence per edge (pivot dedupe).
//   - x is a read-only borrow; the result is freshly allocated, never
//     aliased with the tensor.
//   - Deterministic: edges are visited in canonical ascending-tuple order,
//     so float accumulation order is stable across runs.
//
// Inputs:
//   - x: dense vector of length Dim().
//
// Returns:
//   - []float64: fresh dense vector of length Dim().
//
// Errors:
//   - ErrNilTensor, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(nnz · k²), Space O(n) for the result plus O(k) scratch.
func (t *SymTensor) Contract(x []float64) ([]float64, error) {
	if t == nil {
		return nil, tensorErrorf(opContract, ErrNilTensor)
	}
	if err := validateVecLen(x, t.dim); err != nil {
		return nil, tensorErrorf(opContract, err)
	}

	y := make([]float64, t.dim)
	scratch := make([]int, 0, t.order) // sub-index workspace, reused per pivot
	for _, e := range t.Edges() {
		contractEdge(y, e.Index, e.Weight, x, scratch)
	}

	return y, nil
}

// ContractSlices performs the identical (k−1)-mode contraction directly over
// parallel index/value arrays without building a SymTensor — same numeric
// contract as Contract, lower memory overhead, intended for edge sets where
// the mapping overhead of the store is prohibitive.
//
// Row i of indices is the sorted ascending tuple of edge i with weight
// values[i]. Rows are validated lazily, in order, with the same rules the
// store enforces (uniform length, sorted, in [1, dim]).
//
// Errors:
//   - ErrEmptyTensor (no rows), ErrInvalidEdge (ragged/unsorted/out-of-range
//     rows, len(indices) != len(values)), ErrDimensionMismatch (x).
//
// Complexity: Time O(m·k²), Space O(n) — no map, no edge copies.
func ContractSlices(indices [][]int, values []float64, dim int, x []float64) ([]float64, error) {
	if len(indices) == 0 {
		return nil, tensorErrorf(opContract, ErrEmptyTensor)
	}
	if len(indices) != len(values) {
		return nil, tensorErrorf(opContract, ErrInvalidEdge)
	}
	if dim < 1 {
		return nil, tensorErrorf(opContract, ErrBadShape)
	}
	if err := validateVecLen(x, dim); err != nil {
		return nil, tensorErrorf(opContract, err)
	}

	order := len(indices[0])
	if order == 0 {
		return nil, tensorErrorf(opContract, ErrInvalidEdge)
	}

	var err error
	y := make([]float64, dim)
	scratch := make([]int, 0, order)
	for i, index := range indices {
		if err = validateIndexShape(index, order); err != nil {
			return nil, tensorErrorf(opContract, err)
		}
		if err = validateIndexSorted(index); err != nil {
			return nil, tensorErrorf(opContract, err)
		}
		if err = validateIndexRange(index, dim); err != nil {
			return nil, tensorErrorf(opContract, err)
		}
		contractEdge(y, index, values[i], x, scratch)
	}

	return y, nil
}

// contractEdge accumulates one edge's contributions into y.
// index must be sorted ascending; scratch must have capacity >= len(index).
func contractEdge(y []float64, index []int, w float64, x []float64, scratch []int) {
	k := len(index)
	if k == 1 {
		// Degenerate order-1 tensor: empty sub-index, factor 1, product 1.
		y[index[0]-1] += w

		return
	}

	var p, q int
	var prod float64
	for p = 0; p < k; p++ {
		if p > 0 && index[p] == index[p-1] {
			continue // duplicate pivot value ⇒ identical sub-sequence
		}
		sub := scratch[:0]
		prod = 1.0
		for q = 0; q < k; q++ {
			if q == p {
				continue
			}
			sub = append(sub, index[q])
			prod *= x[index[q]-1]
		}
		y[index[p]-1] += w * float64(Multiplicity(sub)) * prod
	}
}

// ContractMatrix computes the (k−2)-mode contraction of the tensor with x,
// the dense symmetric matrix
//
//	A[i,j] = Σ over stored edges with slots on i and j of
//	         weight · multiplicity(sub) · ∏ x[sub],
//
// with sub the tuple minus the two pivot slots. For an order-2 tensor this
// reproduces the matrix itself (zero modes contracted). The result feeds the
// per-step eigendecomposition of the dynamical-system solver.
//
// The same dedupe rule applies twice: one contribution per distinct
// (first pivot value, second pivot value, sub-multiset) combination.
//
// Errors:
//   - ErrNilTensor, ErrNotImplemented (order 1: no once-contracted matrix
//     exists), ErrDimensionMismatch.
//
// Complexity: Time O(nnz · k³), Space O(n²).
func (t *SymTensor) ContractMatrix(x []float64) (*mat.SymDense, error) {
	if t == nil {
		return nil, tensorErrorf(opContractMatrix, ErrNilTensor)
	}
	if t.order < 2 {
		return nil, tensorErrorf(opContractMatrix, ErrNotImplemented)
	}
	if err := validateVecLen(x, t.dim); err != nil {
		return nil, tensorErrorf(opContractMatrix, err)
	}

	n := t.dim
	data := make([]float64, n*n)
	scratch := make([]int, 0, t.order)
	for _, e := range t.Edges() {
		contractEdgeMatrix(data, n, e.Index, e.Weight, x, scratch)
	}

	return mat.NewSymDense(n, data), nil
}

// contractEdgeMatrix accumulates one edge's two-pivot contributions into the
// flat n×n buffer. index must be sorted ascending. Both (i,j) and (j,i)
// cells receive their term, so the buffer comes out exactly symmetric.
func contractEdgeMatrix(data []float64, n int, index []int, w float64, x []float64, scratch []int) {
	k := len(index)
	var p, q, r, prev int
	var prod float64
	for p = 0; p < k; p++ {
		if p > 0 && index[p] == index[p-1] {
			continue // duplicate first pivot
		}
		for q = 0; q < k; q++ {
			if q == p {
				continue
			}
			// Duplicate second pivot: an earlier non-p position with the
			// same value already produced this (p,q,sub) combination.
			prev = q - 1
			if prev == p {
				prev--
			}
			if prev >= 0 && index[prev] == index[q] {
				continue
			}
			sub := scratch[:0]
			prod = 1.0
			for r = 0; r < k; r++ {
				if r == p || r == q {
					continue
				}
				sub = append(sub, index[r])
				prod *= x[index[r]-1]
			}
			data[(index[p]-1)*n+(index[q]-1)] += w * float64(Multiplicity(sub)) * prod
		}
	}
}

// ContractN contracts all but keep modes of the tensor against x and returns
// the result through the slot matching the depth: (vec, nil, nil) for
// keep=1, (nil, m, nil-error) for keep=2. Any other depth is explicitly
// unsupported and reports ErrNotImplemented — generic partial contraction
// would materialize intermediate (k−j)-order symmetric tensors the data
// model does not represent.
func (t *SymTensor) ContractN(x []float64, keep int) (vec []float64, m *mat.SymDense, err error) {
	switch keep {
	case 1:
		vec, err = t.Contract(x)

		return vec, nil, err
	case 2:
		m, err = t.ContractMatrix(x)

		return nil, m, err
	default:
		return nil, nil, tensorErrorf(opContractN, ErrNotImplemented)
	}
}
