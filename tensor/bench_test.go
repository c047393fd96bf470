package tensor_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/symtensor/tensor"
)

// benchTensor builds a deterministic pseudo-random order-3 tensor with the
// given dimension and roughly nnz stored classes (duplicates merge).
func benchTensor(b *testing.B, dim, nnz int) *tensor.SymTensor {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	edges := make([]tensor.Edge, 0, nnz)
	for i := 0; i < nnz; i++ {
		index := []int{
			rng.Intn(dim) + 1,
			rng.Intn(dim) + 1,
			rng.Intn(dim) + 1,
		}
		sort.Ints(index)
		edges = append(edges, tensor.Edge{Index: index, Weight: rng.NormFloat64()})
	}
	st, err := tensor.New(edges, tensor.WithDim(dim))
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	return st
}

func benchVector(dim int) []float64 {
	rng := rand.New(rand.NewSource(7))
	x := make([]float64, dim)
	for i := range x {
		x[i] = rng.NormFloat64()
	}

	return x
}

func BenchmarkContract(b *testing.B) {
	st := benchTensor(b, 50, 2000)
	x := benchVector(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := st.Contract(x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkContractMatrix(b *testing.B) {
	st := benchTensor(b, 50, 2000)
	x := benchVector(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := st.ContractMatrix(x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkContractSlices(b *testing.B) {
	st := benchTensor(b, 50, 2000)
	x := benchVector(50)
	var indices [][]int
	var values []float64
	for _, e := range st.Edges() {
		indices = append(indices, e.Index)
		values = append(values, e.Weight)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tensor.ContractSlices(indices, values, st.Dim(), x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsert(b *testing.B) {
	edges := make([]tensor.Edge, 512)
	rng := rand.New(rand.NewSource(3))
	for i := range edges {
		edges[i] = tensor.Edge{
			Index:  []int{rng.Intn(30) + 1, rng.Intn(30) + 1, rng.Intn(30) + 1},
			Weight: rng.Float64(),
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st, err := tensor.New(
			[]tensor.Edge{{Index: []int{1, 1, 1}, Weight: 1}},
			tensor.WithDim(30),
		)
		if err != nil {
			b.Fatal(err)
		}
		if err = st.Insert(edges...); err != nil {
			b.Fatal(err)
		}
	}
}
