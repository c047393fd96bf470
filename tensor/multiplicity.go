// SPDX-License-Identifier: MIT
// Package tensor: multiplicity engine.

package tensor

import "gonum.org/v1/gonum/stat/combin"

// Multiplicity returns the multinomial coefficient
//
//	len(seq)! / (c₁! · c₂! · … · c_m!)
//
// where cᵢ are the multiplicities of each distinct value in seq. This equals
// the number of DISTINCT orderings of the sequence — exactly the scale
// factor needed so that summing over only the unique sub-edges of a
// symmetric store reproduces the sum over all redundant permutations a
// naive non-symmetric representation would hold.
//
// Degenerate cases: an all-equal sequence yields 1, an all-distinct sequence
// yields len(seq)!, and the empty sequence (the order-1 tensor's sub-index)
// yields 1.
//
// The result is computed as a telescoping product of binomials,
//
//	∏ᵢ C(c₁+…+cᵢ, cᵢ),
//
// which stays in exact integer arithmetic (no factorial overflow for the
// small orders symmetric tensors occur at in practice).
//
// Complexity: O(len(seq)).
func Multiplicity(seq []int) int {
	if len(seq) == 0 {
		return 1
	}

	counts := make(map[int]int, len(seq))
	for _, v := range seq {
		counts[v]++
	}

	// The binomial product is order-independent, so ranging over the map is
	// still deterministic in value.
	total, coeff := 0, 1
	for _, c := range counts {
		total += c
		coeff *= combin.Binomial(total, c)
	}

	return coeff
}
