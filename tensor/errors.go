// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with tensorErrorf(op, ErrX) at the
// facade — callers still match via errors.Is.

var (
	// ErrInvalidEdge is returned at construction/insertion when an index
	// tuple is unsorted, contains a non-positive index, exceeds the declared
	// dimension, disagrees on order with the rest of the store, or carries a
	// NaN/Inf weight. Always fatal to the call: no partial construction.
	ErrInvalidEdge = errors.New("tensor: invalid edge")

	// ErrEmptyTensor signals an operation that needs at least one stored
	// edge (construction with an empty list, order of an empty store).
	ErrEmptyTensor = errors.New("tensor: empty tensor")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// tensor's cubical dimension, or a requested component index outside it.
	// Checked eagerly, before any iteration starts.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNotImplemented marks an intentionally unsupported operation on the
	// contraction surface (contracting an arbitrary number of modes would
	// require materializing intermediate symmetric tensors the data model
	// does not represent). Explicit, never silently approximated.
	ErrNotImplemented = errors.New("tensor: operation not implemented")

	// ErrNilTensor indicates a nil *SymTensor or *Dense receiver/argument.
	ErrNilTensor = errors.New("tensor: nil receiver")

	// ErrBadShape is returned when a requested dense shape is invalid
	// (order < 1 or dimension < 1).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates a dense multi-index outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")
)
