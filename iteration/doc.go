// Package iteration solves linear systems Ax = b by the simple
// (fixed-point) iteration method, with the convergence question settled
// before the first step instead of after a timeout.
//
// 🚀 What is simple iteration?
//
//	Rewrite Ax = b as x = Cx + d with C = I − D⁻¹A and d = D⁻¹b, where D
//	is the diagonal of A. When ‖C‖∞ < 1 the map is a contraction and the
//	sequence x_{k+1} = Cx_k + d converges to the unique solution from any
//	starting point, with the a-posteriori bound
//	  ‖x_k − x*‖ ≤ ‖x_{k+1} − x_k‖ · q/(1 − q),  q = ‖C‖∞.
//
// ✨ Key features:
//   - rows are re-selected toward diagonal dominance before giving up
//   - non-contracting systems fail fast with ErrNotConvergent
//   - a-posteriori error bound drives the stopping rule, not a fixed count
//   - accepts an explicit (A, b) pair or an n×(n+1) augmented matrix
//
// ⚙️ Usage:
//
//	import "github.com/avdeitch/cmath/iteration"
//
//	res, err := iteration.Solve(a, b, iteration.DefaultOptions())
//	if err != nil {
//		// handle ErrNotConvergent / ErrZeroDiagonal / ...
//	}
//	fmt.Println(res.X, res.Iterations)
//
// Performance:
//
//   - Setup: O(n²) for the reordering scan and iteration matrix
//   - Per step: O(n²) for the matrix-vector product
//
// Built on the dense primitives of github.com/avdeitch/cmath/algebra.
package iteration
