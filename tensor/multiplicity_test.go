package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/symtensor/tensor"
)

// TestMultiplicity_Table pins the documented reference values, including
// both degenerate cases (all-equal → 1, all-distinct → (k−1)!).
func TestMultiplicity_Table(t *testing.T) {
	cases := []struct {
		name string
		seq  []int
		want int
	}{
		{"empty (order-1 sub-index)", nil, 1},
		{"singleton", []int{4}, 1},
		{"one repeat", []int{1, 1, 2}, 3},
		{"all distinct", []int{1, 2, 3}, 6},
		{"all equal", []int{1, 1, 1}, 1},
		{"two pairs", []int{1, 1, 2, 2}, 6},
		{"triple plus single", []int{3, 3, 3, 7}, 4},
		{"four distinct", []int{2, 4, 6, 8}, 24},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tensor.Multiplicity(tc.seq), tc.name)
	}
}

// factorial is the plain reference used by the property test below.
func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}

// TestMultiplicity_FactorialProperty cross-checks the binomial-product
// against the textbook formula n! / ∏ cᵢ! on a spread of multisets.
func TestMultiplicity_FactorialProperty(t *testing.T) {
	multisets := [][]int{
		{1, 2},
		{5, 5},
		{1, 2, 2, 3},
		{1, 1, 1, 2, 2},
		{2, 2, 4, 4, 4, 9},
		{1, 3, 5, 7, 9, 11},
	}
	for _, seq := range multisets {
		counts := map[int]int{}
		for _, v := range seq {
			counts[v]++
		}
		want := factorial(len(seq))
		for _, c := range counts {
			want /= factorial(c)
		}
		assert.Equal(t, want, tensor.Multiplicity(seq), "multiset %v", seq)
	}
}
