package dynsys_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symtensor/dynsys"
)

// TestSymEig_TopM_MagnitudeOrder checks the descending-|λ| ordering on
// diag(1, −3, 2): magnitudes 3, 2, 1 regardless of sign.
func TestSymEig_TopM_MagnitudeOrder(t *testing.T) {
	a := mat.NewSymDense(3, []float64{
		1, 0, 0,
		0, -3, 0,
		0, 0, 2,
	})

	vals, vecs, err := dynsys.SymEig{}.TopM(a, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-3, 2, 1}, vals, 1e-12)

	// Each column is the unit eigenvector of its value, up to sign.
	axes := []int{1, 2, 0}
	for j, axis := range axes {
		col := mat.Col(nil, j, vecs)
		assert.InDelta(t, 1.0, math.Abs(col[axis]), 1e-12, "column %d axis", j)
		for i, v := range col {
			if i != axis {
				assert.InDelta(t, 0.0, v, 1e-12, "column %d off-axis", j)
			}
		}
	}
}

// TestSymEig_TopM_Truncation checks that m < n returns only the leading
// columns, in the same order as the full decomposition.
func TestSymEig_TopM_Truncation(t *testing.T) {
	a := mat.NewSymDense(3, []float64{
		1, 0, 0,
		0, -3, 0,
		0, 0, 2,
	})

	vals, vecs, err := dynsys.SymEig{}.TopM(a, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-3, 2}, vals, 1e-12)
	r, c := vecs.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
}

// TestSymEig_TopM_BadCount checks the m range guard.
func TestSymEig_TopM_BadCount(t *testing.T) {
	a := mat.NewSymDense(2, []float64{1, 0, 0, 1})

	_, _, err := dynsys.SymEig{}.TopM(a, 0)
	assert.ErrorIs(t, err, dynsys.ErrEigenFailed)
	_, _, err = dynsys.SymEig{}.TopM(a, 3)
	assert.ErrorIs(t, err, dynsys.ErrEigenFailed)
}
