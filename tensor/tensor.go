// SPDX-License-Identifier: MIT
// Package tensor: construction and mutation of the symmetric store.
//
// Purpose:
//   - New: eager, all-or-nothing validation of an edge list, with optional
//     dimension inference (max index across edges).
//   - Insert: merge additional edges into an existing store, sorting the
//     caller-supplied tuples in place first.
//
// Notes:
//   - New DEMANDS sorted tuples (fails on unsorted input); Insert sorts for
//     the caller. The asymmetry is deliberate: construction input is treated
//     as canonical data, insertion input as raw data.

package tensor

import (
	"math"
	"sort"
)

// Operation name constants for unified error wrapping.
const (
	opNew            = "New"
	opInsert         = "Insert"
	opContract       = "Contract"
	opContractMatrix = "ContractMatrix"
	opContractN      = "ContractN"
	opToDense        = "ToDense"
	opUnfold         = "Unfold"
)

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*consOptions)

type consOptions struct {
	dim int // 0 means "infer from edges"
}

// WithDim declares the cubical dimension n explicitly. Every edge index must
// then lie in [1, n]. Without this option the dimension is inferred as the
// maximum index across the supplied edges — inference only, no check that
// every value in [1, n] is actually used.
func WithDim(n int) Option {
	return func(o *consOptions) { o.dim = n }
}

// New builds a SymTensor from a list of (sorted index tuple, weight) pairs.
//
// Validation is eager and all-or-nothing: any unsorted tuple, non-positive
// index, index exceeding the declared dimension, order mismatch across
// edges, or non-finite weight fails the whole construction with
// ErrInvalidEdge (ErrEmptyTensor for an empty list). Edges sharing the same
// canonical tuple merge by weight summation.
//
// The supplied index slices are copied; the caller keeps ownership of its
// inputs.
//
// Errors: ErrEmptyTensor, ErrInvalidEdge.
// Complexity: O(m·k) validation + O(m) merge for m edges of order k.
func New(edges []Edge, opts ...Option) (*SymTensor, error) {
	var o consOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.dim < 0 {
		return nil, tensorErrorf(opNew, ErrBadShape)
	}
	if len(edges) == 0 {
		return nil, tensorErrorf(opNew, ErrEmptyTensor)
	}

	// Order is fixed by the first edge; a zero-length tuple is meaningless.
	order := len(edges[0].Index)
	if order == 0 {
		return nil, tensorErrorf(opNew, ErrInvalidEdge)
	}

	// Pass 1: validate every edge and track the maximum index.
	var err error
	maxIdx := 0
	for _, e := range edges {
		if err = validateIndexShape(e.Index, order); err != nil {
			return nil, tensorErrorf(opNew, err)
		}
		if err = validateIndexSorted(e.Index); err != nil {
			return nil, tensorErrorf(opNew, err)
		}
		if err = validateWeight(e.Weight); err != nil {
			return nil, tensorErrorf(opNew, err)
		}
		if last := e.Index[order-1]; last > maxIdx {
			maxIdx = last
		}
	}
	dim := o.dim
	if dim == 0 {
		dim = maxIdx // inferred; no coverage check
	}

	// Pass 2: range check against the (declared or inferred) dimension.
	for _, e := range edges {
		if err = validateIndexRange(e.Index, dim); err != nil {
			return nil, tensorErrorf(opNew, err)
		}
	}

	// Pass 3: merge into the canonical map.
	t := &SymTensor{
		order: order,
		dim:   dim,
		edges: make(map[string]Edge, len(edges)),
	}
	t.merge(edges)

	return t, nil
}

// Insert merges additional edges into the store.
//
// Each caller-supplied index tuple is sorted ASCENDING IN PLACE, then
// validated against the store's fixed order and dimension. Validation of the
// whole batch precedes any merge, so a failing batch leaves the store
// untouched (beyond the in-place sort of the caller's slices).
//
// Errors: ErrNilTensor, ErrInvalidEdge.
// Complexity: O(m·k log k) sort + O(m) merge.
func (t *SymTensor) Insert(edges ...Edge) error {
	if t == nil {
		return tensorErrorf(opInsert, ErrNilTensor)
	}

	var err error
	for _, e := range edges {
		sort.Ints(e.Index)
		if err = validateIndexShape(e.Index, t.order); err != nil {
			return tensorErrorf(opInsert, err)
		}
		if err = validateIndexSorted(e.Index); err != nil {
			return tensorErrorf(opInsert, err)
		}
		if err = validateIndexRange(e.Index, t.dim); err != nil {
			return tensorErrorf(opInsert, err)
		}
		if err = validateWeight(e.Weight); err != nil {
			return tensorErrorf(opInsert, err)
		}
	}
	t.merge(edges)

	return nil
}

// merge sums pre-validated edges into the canonical map, copying tuples so
// the store owns its keys exclusively.
func (t *SymTensor) merge(edges []Edge) {
	for _, e := range edges {
		k := edgeKey(e.Index)
		if prev, ok := t.edges[k]; ok {
			prev.Weight += e.Weight
			t.edges[k] = prev

			continue
		}
		t.edges[k] = Edge{Index: append([]int(nil), e.Index...), Weight: e.Weight}
	}
}

// Norm returns the Frobenius norm of the tensor over its implicit dense
// form: sqrt(Σ multiplicity(edge) · w²), where multiplicity counts the
// permutation locations each stored edge occupies. This is the norm the
// convergence-shift bound of the shifted power method is stated against.
func (t *SymTensor) Norm() float64 {
	sum := 0.0
	for _, e := range t.edges {
		sum += float64(Multiplicity(e.Index)) * e.Weight * e.Weight
	}

	return math.Sqrt(sum)
}
