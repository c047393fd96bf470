// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating tuple/shape checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly via tensorErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Tuple checks run O(k) over the index sequence.

package tensor

import (
	"fmt"
	"math"
)

// tensorErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep working. Call only with err != nil.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateIndexShape checks the tuple length against the fixed order.
// Returns ErrInvalidEdge on mismatch. Complexity: O(1).
func validateIndexShape(index []int, order int) error {
	if len(index) != order {
		return fmt.Errorf("len %d, want order %d: %w", len(index), order, ErrInvalidEdge)
	}

	return nil
}

// validateIndexSorted checks that the tuple is non-decreasing with every
// element >= 1. Dimension bounds are checked separately because the
// dimension may still be under inference at this point. Complexity: O(k).
func validateIndexSorted(index []int) error {
	for i, v := range index {
		if v < 1 {
			return fmt.Errorf("index[%d]=%d must be >= 1: %w", i, v, ErrInvalidEdge)
		}
		if i > 0 && index[i-1] > v {
			return fmt.Errorf("index not sorted at position %d: %w", i, ErrInvalidEdge)
		}
	}

	return nil
}

// validateIndexRange checks every element against the declared cubical
// dimension. Assumes validateIndexSorted already accepted the tuple, so only
// the last (largest) element needs the upper-bound check. Complexity: O(1).
func validateIndexRange(index []int, dim int) error {
	if len(index) > 0 && index[len(index)-1] > dim {
		return fmt.Errorf("index %d exceeds dimension %d: %w", index[len(index)-1], dim, ErrInvalidEdge)
	}

	return nil
}

// validateWeight rejects NaN and ±Inf weights at ingestion.
func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("weight must be finite: %w", ErrInvalidEdge)
	}

	return nil
}

// validateVecLen checks a vector argument against the cubical dimension.
// Returns ErrDimensionMismatch. Complexity: O(1).
func validateVecLen(x []float64, dim int) error {
	if len(x) != dim {
		return fmt.Errorf("vector len %d, want %d: %w", len(x), dim, ErrDimensionMismatch)
	}

	return nil
}
