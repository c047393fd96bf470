package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symtensor/tensor"
)

// TestNew_ValidationErrors drives every ErrInvalidEdge branch of eager
// construction: unsorted tuples, non-positive indices, out-of-range indices
// against a declared dimension, order mismatch, and non-finite weights.
func TestNew_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		edges []tensor.Edge
		opts  []tensor.Option
		want  error
	}{
		{
			name:  "unsorted tuple",
			edges: []tensor.Edge{{Index: []int{2, 1}, Weight: 1}},
			want:  tensor.ErrInvalidEdge,
		},
		{
			name:  "non-positive index",
			edges: []tensor.Edge{{Index: []int{0, 1}, Weight: 1}},
			want:  tensor.ErrInvalidEdge,
		},
		{
			name:  "index exceeds declared dimension",
			edges: []tensor.Edge{{Index: []int{1, 5}, Weight: 1}},
			opts:  []tensor.Option{tensor.WithDim(3)},
			want:  tensor.ErrInvalidEdge,
		},
		{
			name: "order mismatch across edges",
			edges: []tensor.Edge{
				{Index: []int{1, 2}, Weight: 1},
				{Index: []int{1, 2, 3}, Weight: 1},
			},
			want: tensor.ErrInvalidEdge,
		},
		{
			name:  "zero-length tuple",
			edges: []tensor.Edge{{Index: []int{}, Weight: 1}},
			want:  tensor.ErrInvalidEdge,
		},
		{
			name:  "NaN weight",
			edges: []tensor.Edge{{Index: []int{1, 2}, Weight: math.NaN()}},
			want:  tensor.ErrInvalidEdge,
		},
		{
			name:  "empty edge list",
			edges: nil,
			want:  tensor.ErrEmptyTensor,
		},
		{
			name:  "negative declared dimension",
			edges: []tensor.Edge{{Index: []int{1}, Weight: 1}},
			opts:  []tensor.Option{tensor.WithDim(-1)},
			want:  tensor.ErrBadShape,
		},
	}
	for _, tc := range cases {
		_, err := tensor.New(tc.edges, tc.opts...)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

// TestNew_DimensionInference checks that an omitted dimension is inferred
// as the max index, inference only — unused values below it are fine.
func TestNew_DimensionInference(t *testing.T) {
	st, err := tensor.New([]tensor.Edge{{Index: []int{1, 4}, Weight: 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, st.Order())
	assert.Equal(t, 4, st.Dim(), "dimension inferred from the max index")

	st, err = tensor.New(
		[]tensor.Edge{{Index: []int{1, 4}, Weight: 2}},
		tensor.WithDim(9),
	)
	require.NoError(t, err)
	assert.Equal(t, 9, st.Dim(), "declared dimension wins over inference")
}

// TestNew_MergesDuplicates checks that edges sharing a canonical tuple sum
// during construction.
func TestNew_MergesDuplicates(t *testing.T) {
	st, err := tensor.New([]tensor.Edge{
		{Index: []int{1, 2, 2}, Weight: 1.5},
		{Index: []int{1, 2, 2}, Weight: 0.5},
		{Index: []int{2, 2, 2}, Weight: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, st.NNZ())
	assert.Equal(t, 2.0, st.Weight([]int{1, 2, 2}))
	assert.Equal(t, 3.0, st.Weight([]int{2, 2, 2}))
}

// TestInsert_SortsAndMerges checks that insertion sorts caller tuples in
// place, validates against the fixed dimension, and merges by summation.
func TestInsert_SortsAndMerges(t *testing.T) {
	st, err := tensor.New(
		[]tensor.Edge{{Index: []int{1, 2}, Weight: 1}},
		tensor.WithDim(3),
	)
	require.NoError(t, err)

	raw := []int{2, 1} // unsorted on purpose: Insert canonicalizes
	require.NoError(t, st.Insert(tensor.Edge{Index: raw, Weight: 0.5}))
	assert.Equal(t, []int{1, 2}, raw, "caller tuple sorted in place")
	assert.Equal(t, 1.5, st.Weight([]int{1, 2}))

	// Out-of-range after sorting still fails, leaving the store unchanged.
	err = st.Insert(
		tensor.Edge{Index: []int{3, 3}, Weight: 1},
		tensor.Edge{Index: []int{4, 1}, Weight: 1},
	)
	assert.ErrorIs(t, err, tensor.ErrInvalidEdge)
	assert.Equal(t, 0.0, st.Weight([]int{3, 3}), "failed batch merges nothing")

	// Order mismatch is rejected too.
	err = st.Insert(tensor.Edge{Index: []int{1, 2, 3}, Weight: 1})
	assert.ErrorIs(t, err, tensor.ErrInvalidEdge)
}

// TestInsert_SplitWeightsEquivalence: constructing the same multiset of
// edges with weights split across multiple insertions yields an edge map
// identical to inserting them pre-summed.
func TestInsert_SplitWeightsEquivalence(t *testing.T) {
	split, err := tensor.New(
		[]tensor.Edge{{Index: []int{1, 1, 2}, Weight: 1}},
		tensor.WithDim(3),
	)
	require.NoError(t, err)
	require.NoError(t, split.Insert(tensor.Edge{Index: []int{1, 1, 2}, Weight: 2}))
	require.NoError(t, split.Insert(
		tensor.Edge{Index: []int{3, 2, 1}, Weight: -1},
		tensor.Edge{Index: []int{1, 1, 2}, Weight: 0.5},
	))

	summed, err := tensor.New([]tensor.Edge{
		{Index: []int{1, 1, 2}, Weight: 3.5},
		{Index: []int{1, 2, 3}, Weight: -1},
	}, tensor.WithDim(3))
	require.NoError(t, err)

	assert.Equal(t, summed.Edges(), split.Edges())
}

// TestEdges_DeterministicOrder checks the canonical ascending-tuple
// iteration order the contraction kernels rely on.
func TestEdges_DeterministicOrder(t *testing.T) {
	st, err := tensor.New([]tensor.Edge{
		{Index: []int{2, 3}, Weight: 1},
		{Index: []int{1, 3}, Weight: 1},
		{Index: []int{1, 2}, Weight: 1},
		{Index: []int{1, 1}, Weight: 1},
	})
	require.NoError(t, err)

	got := st.Edges()
	want := [][]int{{1, 1}, {1, 2}, {1, 3}, {2, 3}}
	require.Len(t, got, len(want))
	for i, e := range got {
		assert.Equal(t, want[i], e.Index)
	}
}

// TestWeight_UnsortedLookup checks that Weight canonicalizes a copy of the
// query tuple without touching the caller's slice.
func TestWeight_UnsortedLookup(t *testing.T) {
	st, err := tensor.New([]tensor.Edge{{Index: []int{1, 2, 3}, Weight: 7}})
	require.NoError(t, err)

	query := []int{3, 1, 2}
	assert.Equal(t, 7.0, st.Weight(query))
	assert.Equal(t, []int{3, 1, 2}, query, "query slice untouched")
	assert.Equal(t, 0.0, st.Weight([]int{1, 1, 1}), "absent class reads 0")
}

// TestNorm_MatchesDenseFrobenius compares the sparse Frobenius norm against
// a direct sum over every dense entry.
func TestNorm_MatchesDenseFrobenius(t *testing.T) {
	st, err := tensor.New([]tensor.Edge{
		{Index: []int{1, 2, 3}, Weight: 2},
		{Index: []int{1, 1, 2}, Weight: -1},
		{Index: []int{2, 2, 2}, Weight: 0.5},
	})
	require.NoError(t, err)

	d, err := st.ToDense()
	require.NoError(t, err)

	sum := 0.0
	for i := 1; i <= st.Dim(); i++ {
		for j := 1; j <= st.Dim(); j++ {
			for l := 1; l <= st.Dim(); l++ {
				v, aerr := d.At(i, j, l)
				require.NoError(t, aerr)
				sum += v * v
			}
		}
	}
	assert.InDelta(t, math.Sqrt(sum), st.Norm(), 1e-12)
}
