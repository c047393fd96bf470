// SPDX-License-Identifier: MIT
// Package tensor: mode-1 unfolding (flattening).

package tensor

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// Unfold returns the mode-1 unfolding of the tensor: the n × n^(k−1) matrix
// whose rows follow the first index and whose columns flatten the remaining
// k−1 indices little-endian,
//
//	col = Σ_{j=2..k} (i_j − 1) · n^(j−2).
//
// Every permutation location of every stored edge is populated, matching the
// dense form. The unfolding exists to feed the partial-SVD collaborator that
// seeds the eigensolvers; it is O(n^(k−1)) wide and meant for small tensors.
//
// Errors: ErrNilTensor.
func (t *SymTensor) Unfold() (*mat.Dense, error) {
	if t == nil {
		return nil, tensorErrorf(opUnfold, ErrNilTensor)
	}

	n, k := t.dim, t.order
	cols := 1
	for j := 1; j < k; j++ {
		cols *= n
	}
	out := mat.NewDense(n, cols, nil)

	perms := combin.Permutations(k, k)
	permuted := make([]int, k)
	var col, stride, j int
	for _, e := range t.Edges() {
		for _, p := range perms {
			for i, slot := range p {
				permuted[i] = e.Index[slot]
			}
			col, stride = 0, 1
			for j = 1; j < k; j++ {
				col += (permuted[j] - 1) * stride
				stride *= n
			}
			out.Set(permuted[0]-1, col, e.Weight)
		}
	}

	return out, nil
}
