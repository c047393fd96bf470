// SPDX-License-Identifier: MIT
// Package tensor: core types for the sparse super-symmetric store.

package tensor

import (
	"sort"
	"strconv"
	"strings"
)

// Edge is one symmetry class of tensor entries: a sorted index tuple plus
// the weight shared by every permutation of that tuple. Indices are 1-based
// and range over [1, dim].
//
// Example: for an order-3 tensor, Edge{Index: []int{1, 2, 3}, Weight: 2}
// stands for weight 2 on all six permutations of (1,2,3).
type Edge struct {
	Index  []int
	Weight float64
}

// SymTensor is the canonical sparse representation of a fully symmetric
// cubical tensor: a map from sorted ascending index tuples to weights.
// A single stored entry implicitly represents the weight on every
// permutation of its index sequence, so the combinatorial blow-up of the
// dense form is never materialized.
//
// Invariants (enforced at construction and insertion):
//   - every stored tuple is non-decreasing;
//   - every element lies in [1, dim];
//   - all tuples have identical length order;
//   - tuples are unique: colliding edges merge by weight summation.
//
// SymTensor is NOT safe for concurrent mutation: callers must not Insert
// concurrently with an in-flight contraction (single-writer discipline, no
// internal locking).
type SymTensor struct {
	order int
	dim   int
	edges map[string]Edge // canonical key -> canonical edge
}

// edgeKey encodes a sorted index tuple as the canonical map key.
// The format is the comma-joined decimal form, e.g. "1,2,3".
func edgeKey(index []int) string {
	var sb strings.Builder
	for i, v := range index {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// lessIndex reports whether tuple a orders before tuple b numerically,
// element by element. Used to fix a deterministic edge iteration order.
func lessIndex(a, b []int) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// Edges returns the stored symmetry classes in deterministic (numerically
// ascending tuple) order. The returned slice is fresh; the index slices are
// the canonical copies and must be treated as read-only.
func (t *SymTensor) Edges() []Edge {
	out := make([]Edge, 0, len(t.edges))
	for _, e := range t.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return lessIndex(out[i].Index, out[j].Index) })

	return out
}

// Order returns the number of modes k, fixed for the tensor's lifetime and
// inferred from the first edge at construction.
func (t *SymTensor) Order() int { return t.order }

// Dim returns the cubical dimension n: every mode ranges over [1, n].
func (t *SymTensor) Dim() int { return t.dim }

// NNZ returns the number of stored symmetry classes.
func (t *SymTensor) NNZ() int { return len(t.edges) }

// Weight returns the weight stored for the symmetry class of index, or 0
// when the class is absent. The argument need not be sorted; a sorted copy
// is used for the lookup and the caller's slice is left untouched.
func (t *SymTensor) Weight(index []int) float64 {
	canon := append([]int(nil), index...)
	sort.Ints(canon)

	return t.edges[edgeKey(canon)].Weight
}
