// Package interpolation builds Lagrange interpolation polynomials from
// sampled functions and evaluates them at arbitrary points.
//
// 🚀 What is Lagrange interpolation?
//
//	Given n nodes with pairwise-distinct abscissae, there is exactly one
//	polynomial of degree ≤ n−1 passing through all of them:
//	  L(x) = Σ_i y_i · ℓ_i(x),  ℓ_i(x) = Π_{k≠i} (x − x_k)/(x_i − x_k)
//	It reconstructs a function from a handful of measurements and is the
//	backbone of charting, quadrature and finite-element pipelines.
//
// ✨ Key features:
//   - build once in O(n²), evaluate anywhere in O(n)
//   - exact at the nodes: Evaluate(x_i) returns y_i bit-for-bit
//   - a built Polynomial is immutable and safe for concurrent Evaluate
//   - explicit failures for duplicate, non-finite or unsampleable nodes
//   - Linspace/Sample helpers produce the (x, y) stream display code consumes
//
// ⚙️ Usage:
//
//	import "github.com/avdeitch/cmath/interpolation"
//
//	poly, err := interpolation.NewBuilder(math.Sin).
//		ExperimentalData(0, 0.5, 1, 1.5, 2).
//		Build()
//	if err != nil {
//		// handle ErrDuplicateNode / ErrUndefinedAtNode / ...
//	}
//	y := poly.Evaluate(0.75)
//
// Performance:
//
//   - Build:    O(n²) time, O(n) memory for the cached weights
//   - Evaluate: O(n) per call, zero allocations
//
// See examples in example_test.go.
package interpolation
