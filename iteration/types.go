// Package iteration defines options and results for the simple-iteration solver.
package iteration

// Options configures the simple-iteration solver.
//
// Fields:
//   - Epsilon       — target bound on the solution error, applied through
//     the a-posteriori estimate ‖x_{k+1}−x_k‖·q/(1−q) ≤ Epsilon.
//   - MaxIterations — hard cap on iteration steps; exceeding it yields
//     ErrIterationLimit even for contracting systems.
//
// Both fields must be strictly positive; Solve rejects anything else
// with ErrBadOptions.
type Options struct {
	Epsilon       float64
	MaxIterations int
}

// DefaultOptions returns the recommended solver configuration:
// Epsilon 1e-6, MaxIterations 1000.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-6, MaxIterations: 1000}
}

// Result carries the solver outcome.
//
// Fields:
//   - X          — the approximate solution vector, length n.
//   - Iterations — number of refinement steps performed.
//   - Norm       — q = ‖C‖∞ of the iteration matrix, the contraction
//     factor the convergence guarantee rests on (q < 1).
type Result struct {
	X          []float64
	Iterations int
	Norm       float64
}
