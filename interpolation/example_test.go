package interpolation_test

import (
	"fmt"

	"github.com/avdeitch/cmath/interpolation"
)

// ExampleBuilder_Build reconstructs f(x)=x²+1 from three samples and
// evaluates the interpolant between and at the nodes.
func ExampleBuilder_Build() {
	fn := func(x float64) float64 { return x*x + 1 }

	poly, err := interpolation.NewBuilder(fn).
		ExperimentalData(0, 1, 2).
		Build()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("degree=%d\n", poly.Degree())
	fmt.Printf("L(0)=%g L(1)=%g L(2)=%g\n", poly.Evaluate(0), poly.Evaluate(1), poly.Evaluate(2))
	fmt.Printf("L(0.5)=%g\n", poly.Evaluate(0.5))
	// Output:
	// degree=2
	// L(0)=1 L(1)=2 L(2)=5
	// L(0.5)=1.25
}

// ExampleFromSamples builds an interpolant from pre-measured pairs.
func ExampleFromSamples() {
	poly, err := interpolation.FromSamples(
		[]float64{-1, 0, 1},
		[]float64{1, 0, 1}, // y = x²
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("L(2)=%g\n", poly.Evaluate(2))
	// Output:
	// L(2)=4
}

// ExampleSample turns an interpolant into the (x, y) pairs a chart
// or report consumes.
func ExampleSample() {
	poly, _ := interpolation.FromSamples([]float64{0, 1, 2}, []float64{1, 2, 5})

	for _, n := range interpolation.Sample(poly.Evaluate, interpolation.Linspace(0, 2, 5)) {
		fmt.Printf("(%g, %g)\n", n.X, n.Y)
	}
	// Output:
	// (0, 1)
	// (0.5, 1.25)
	// (1, 2)
	// (1.5, 3.25)
	// (2, 5)
}
