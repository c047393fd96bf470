package dynsys

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrEigenFailed indicates the matrix-eigensolver collaborator failed to
// converge. It propagates as a solver-level failure: no automatic retry is
// performed here — retries (e.g. with a cheaper collaborator or a different
// starting vector) are a caller concern.
var ErrEigenFailed = errors.New("dynsys: eigen decomposition failed")

// Eigensolver is the pluggable collaborator supplying top-m eigenpairs of
// the once-contracted matrix at every integration step. Given a symmetric
// n×n matrix and a requested count m ≤ n it returns m eigenvalues and the
// matching eigenvector columns; ORDERING IS THE COLLABORATOR'S
// RESPONSIBILITY (the default orders by descending eigenvalue magnitude,
// but any convergence-order contract works — the solver only ever reads
// column m−1).
//
// The per-step full eigensolve is the main scalability bottleneck of the
// dynamical method; substituting a cheaper power-iteration-based extractor
// here changes nothing in the integration loop.
type Eigensolver interface {
	TopM(a *mat.SymDense, m int) (values []float64, vectors *mat.Dense, err error)
}

// SymEig is the default collaborator: a full symmetric eigendecomposition
// with eigenpairs reordered by descending |eigenvalue|, ties broken by the
// ascending-value order of the factorization for determinism.
type SymEig struct{}

// TopM implements Eigensolver.
//
// Errors: ErrEigenFailed when the factorization does not converge.
func (SymEig) TopM(a *mat.SymDense, m int) ([]float64, *mat.Dense, error) {
	n := a.SymmetricDim()
	if m < 1 || m > n {
		return nil, nil, ErrEigenFailed
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(a, true); !ok {
		return nil, nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Stable reorder by descending magnitude.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return math.Abs(vals[perm[i]]) > math.Abs(vals[perm[j]])
	})

	outVals := make([]float64, m)
	outVecs := mat.NewDense(n, m, nil)
	var i, j int
	for j = 0; j < m; j++ {
		outVals[j] = vals[perm[j]]
		for i = 0; i < n; i++ {
			outVecs.Set(i, j, vecs.At(i, perm[j]))
		}
	}

	return outVals, outVecs, nil
}
