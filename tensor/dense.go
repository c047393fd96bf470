// SPDX-License-Identifier: MIT
// Package tensor: dense materialization.
//
// Dense is the thin same-interface contraction path for explicit cubical
// arrays: enough to materialize small tensors for testing and to run the
// reference contractions, with shape checks only — no construction or
// validation layer beyond that, and no symmetry bookkeeping (the dense form
// stores every permutation location redundantly).

package tensor

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// Dense is an explicit k-dimensional cubical array with a flat row-major
// backing slice: offset(i₁..i_k) = Σ (i_j − 1) · dim^(k−j) for 1-based
// indices.
type Dense struct {
	order int
	dim   int
	data  []float64
}

// NewDense allocates a zero dense tensor of the given order and cubical
// dimension. Returns ErrBadShape when order < 1 or dim < 1.
func NewDense(order, dim int) (*Dense, error) {
	if order < 1 || dim < 1 {
		return nil, tensorErrorf("NewDense", ErrBadShape)
	}
	size := 1
	for i := 0; i < order; i++ {
		size *= dim
	}

	return &Dense{order: order, dim: dim, data: make([]float64, size)}, nil
}

// Order returns the number of modes.
func (d *Dense) Order() int { return d.order }

// Dim returns the cubical dimension.
func (d *Dense) Dim() int { return d.dim }

// offset maps a 1-based multi-index to the flat position. The index must
// already be validated.
func (d *Dense) offset(index []int) int {
	off := 0
	for _, v := range index {
		off = off*d.dim + (v - 1)
	}

	return off
}

// validIndex checks length and 1-based bounds of a dense multi-index.
func (d *Dense) validIndex(index []int) error {
	if len(index) != d.order {
		return ErrOutOfRange
	}
	for _, v := range index {
		if v < 1 || v > d.dim {
			return ErrOutOfRange
		}
	}

	return nil
}

// At returns the entry at the 1-based multi-index.
// Errors: ErrOutOfRange.
func (d *Dense) At(index ...int) (float64, error) {
	if err := d.validIndex(index); err != nil {
		return 0, tensorErrorf("At", err)
	}

	return d.data[d.offset(index)], nil
}

// Set writes the entry at the 1-based multi-index. Note that Set touches one
// location only; symmetry of the array is the caller's concern.
// Errors: ErrOutOfRange.
func (d *Dense) Set(v float64, index ...int) error {
	if err := d.validIndex(index); err != nil {
		return tensorErrorf("Set", err)
	}
	d.data[d.offset(index)] = v

	return nil
}

// ToDense expands the symmetric store into an explicit dense array: for
// every stored canonical edge, the weight is written into EVERY permutation
// location — no scaling, the dense form carries the redundancy the sparse
// form collapses.
//
// Intended for small tensors and testing; the result has dim^order entries.
func (t *SymTensor) ToDense() (*Dense, error) {
	if t == nil {
		return nil, tensorErrorf(opToDense, ErrNilTensor)
	}
	d, err := NewDense(t.order, t.dim)
	if err != nil {
		return nil, tensorErrorf(opToDense, err)
	}

	// All k! orderings of the slot positions; permuting a tuple with
	// repeated values revisits locations, writing the same weight again.
	perms := combin.Permutations(t.order, t.order)
	permuted := make([]int, t.order)
	for _, e := range t.Edges() {
		for _, p := range perms {
			for i, slot := range p {
				permuted[i] = e.Index[slot]
			}
			d.data[d.offset(permuted)] = e.Weight
		}
	}

	return d, nil
}

// Contract computes the (k−1)-mode contraction of the dense array with x by
// direct summation over all dim^order entries:
//
//	y[i₁] = Σ over i₂..i_k of a[i₁,…,i_k] · x[i₂] · … · x[i_k].
//
// This is the reference loop the sparse kernel is tested against; it is
// O(dim^order) and meant for small arrays only.
//
// Errors: ErrNilTensor, ErrDimensionMismatch.
func (d *Dense) Contract(x []float64) ([]float64, error) {
	if d == nil {
		return nil, tensorErrorf(opContract, ErrNilTensor)
	}
	if err := validateVecLen(x, d.dim); err != nil {
		return nil, tensorErrorf(opContract, err)
	}

	y := make([]float64, d.dim)
	index := firstIndex(d.order)
	for _, a := range d.data {
		if a != 0 {
			prod := 1.0
			for j := 1; j < d.order; j++ {
				prod *= x[index[j]-1]
			}
			y[index[0]-1] += a * prod
		}
		d.nextIndex(index)
	}

	return y, nil
}

// ContractMatrix computes the (k−2)-mode contraction of the dense array
// with x, the matrix M[i₁,i₂] = Σ a[i₁,i₂,i₃..i_k] · x[i₃] · … · x[i_k].
// Reference loop, O(dim^order); requires order >= 2.
//
// Errors: ErrNilTensor, ErrNotImplemented (order 1), ErrDimensionMismatch.
func (d *Dense) ContractMatrix(x []float64) (*mat.SymDense, error) {
	if d == nil {
		return nil, tensorErrorf(opContractMatrix, ErrNilTensor)
	}
	if d.order < 2 {
		return nil, tensorErrorf(opContractMatrix, ErrNotImplemented)
	}
	if err := validateVecLen(x, d.dim); err != nil {
		return nil, tensorErrorf(opContractMatrix, err)
	}

	n := d.dim
	out := make([]float64, n*n)
	index := firstIndex(d.order)
	for _, a := range d.data {
		if a != 0 {
			prod := 1.0
			for j := 2; j < d.order; j++ {
				prod *= x[index[j]-1]
			}
			out[(index[0]-1)*n+(index[1]-1)] += a * prod
		}
		d.nextIndex(index)
	}

	return mat.NewSymDense(n, out), nil
}

// firstIndex returns the all-ones multi-index of the given length.
func firstIndex(order int) []int {
	index := make([]int, order)
	for i := range index {
		index[i] = 1
	}

	return index
}

// nextIndex advances a 1-based multi-index in row-major (odometer) order,
// matching the flat layout walked by range-over-data loops.
func (d *Dense) nextIndex(index []int) {
	for j := d.order - 1; j >= 0; j-- {
		if index[j] < d.dim {
			index[j]++

			return
		}
		index[j] = 1
	}
}
