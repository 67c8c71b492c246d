package algebra_test

import (
	"fmt"

	"github.com/avdeitch/cmath/algebra"
)

// ExampleMatrix_Mul multiplies two small matrices and prints the product.
func ExampleMatrix_Mul() {
	a, _ := algebra.FromRows([][]float64{{1, 2}, {3, 4}}, 2, 2)
	b, _ := algebra.FromRows([][]float64{{5, 6}, {7, 8}}, 2, 2)

	p, err := a.Mul(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(p)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMatrix_Norm shows the infinity norm (max absolute row-sum).
func ExampleMatrix_Norm() {
	a, _ := algebra.FromRows([][]float64{{1, -2}, {3, 4}}, 2, 2)

	fmt.Println(a.Norm())
	// Output:
	// 7
}

// ExampleMatrix_SubMatrix slices an inclusive block re-indexed from the origin.
func ExampleMatrix_SubMatrix() {
	a, _ := algebra.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, 3, 3)

	s, err := a.SubMatrix(1, 1, 2, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(s)
	// Output:
	// [5, 6]
	// [8, 9]
}

// ExampleIdentity builds an identity matrix.
func ExampleIdentity() {
	id, _ := algebra.Identity(2)

	fmt.Print(id)
	// Output:
	// [1, 0]
	// [0, 1]
}
