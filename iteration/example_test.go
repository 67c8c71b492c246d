package iteration_test

import (
	"fmt"

	"github.com/avdeitch/cmath/algebra"
	"github.com/avdeitch/cmath/iteration"
)

// ExampleSolve solves a small diagonally dominant system.
func ExampleSolve() {
	a, _ := algebra.FromRows([][]float64{
		{4, 1},
		{1, 3},
	}, 2, 2)

	res, err := iteration.Solve(a, []float64{1, 2}, iteration.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=[%.4f %.4f]\n", res.X[0], res.X[1])
	// Output:
	// x=[0.0909 0.6364]
}

// ExampleSolveAugmented feeds the same system as one augmented matrix.
func ExampleSolveAugmented() {
	aug, _ := algebra.FromRows([][]float64{
		{4, 1, 1},
		{1, 3, 2},
	}, 2, 3)

	res, err := iteration.SolveAugmented(aug, iteration.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=[%.4f %.4f]\n", res.X[0], res.X[1])
	// Output:
	// x=[0.0909 0.6364]
}
