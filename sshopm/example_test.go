package sshopm_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/symtensor/sshopm"
	"github.com/katalvlaran/symtensor/tensor"
)

// ExampleSolve runs the shifted power method on the order-2 store of
// diag(2, 1). Starting from e₁, the dominant eigenvector, the residual is
// zero after the first iteration.
func ExampleSolve() {
	st, err := tensor.New([]tensor.Edge{
		{Index: []int{1, 1}, Weight: 2},
		{Index: []int{2, 2}, Weight: 1},
	})
	if err != nil {
		fmt.Println("New:", err)

		return
	}

	res, err := sshopm.Solve(context.Background(), st, []float64{1, 0}, nil)
	if err != nil {
		fmt.Println("Solve:", err)

		return
	}
	fmt.Printf("lambda=%.2f iters=%d converged=%t\n", res.Lambda, res.Iters, res.Converged)

	// Output:
	// lambda=2.00 iters=1 converged=true
}
