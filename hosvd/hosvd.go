// Package hosvd seeds the eigensolvers with informed starting vectors via
// a partial SVD of the mode-1 unfolding — higher-order SVD restricted to
// the single mode a cubical symmetric tensor needs.
//
// It is a seeding utility, not an eigensolver: the top-k left singular
// vectors of the unfolding are returned unmodified, one candidate starting
// vector per column.
//
// ⚙️ Usage:
//
//	vecs, vals, err := hosvd.Seed(t, 2)
//	x0 := mat.Col(nil, 0, vecs) // best seed first
package hosvd

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symtensor/tensor"
)

var (
	// ErrRank indicates a requested rank outside [1, Dim()].
	ErrRank = errors.New("hosvd: requested rank out of range")

	// ErrSVDFailed indicates the SVD collaborator failed to converge.
	// Propagated as-is; no retry is performed here.
	ErrSVDFailed = errors.New("hosvd: singular value decomposition failed")
)

// opSeed tags error wrapping.
const opSeed = "Seed"

// hosvdErrorf wraps err with an operation tag, preserving errors.Is.
func hosvdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Seed flattens the tensor along mode 1 and returns the top-k left singular
// vectors (as the columns of an n×k matrix) together with the matching
// singular values, in descending value order, unmodified.
//
// Errors: tensor.ErrNilTensor, ErrRank, ErrSVDFailed.
// Complexity: the unfolding is n × n^(k−1); meant for small tensors.
func Seed(t *tensor.SymTensor, k int) (*mat.Dense, []float64, error) {
	if t == nil {
		return nil, nil, hosvdErrorf(opSeed, tensor.ErrNilTensor)
	}
	n := t.Dim()
	if k < 1 || k > n {
		return nil, nil, hosvdErrorf(opSeed, ErrRank)
	}

	a, err := t.Unfold()
	if err != nil {
		return nil, nil, hosvdErrorf(opSeed, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThinU); !ok {
		return nil, nil, hosvdErrorf(opSeed, ErrSVDFailed)
	}
	vals := svd.Values(nil) // descending
	var u mat.Dense
	svd.UTo(&u)

	out := mat.NewDense(n, k, nil)
	var i, j int
	for j = 0; j < k; j++ {
		for i = 0; i < n; i++ {
			out.Set(i, j, u.At(i, j))
		}
	}

	return out, vals[:k:k], nil
}
