package iteration

import (
	"errors"
	"fmt"
	"math"

	"github.com/avdeitch/cmath/algebra"
)

// Simple iteration (fixed-point) solver for Ax = b.
//
// Algorithm Outline:
//  1. Validate options and system shape.
//  2. Select a row order that puts each column's largest pivot on the
//     diagonal (greedy, one pass per column); a column with no nonzero
//     pivot left means ErrZeroDiagonal.
//  3. Form the iteration system x = Cx + d with C = I − D⁻¹A, d = D⁻¹b.
//  4. Require q = ‖C‖∞ < 1 (contraction), else ErrNotConvergent.
//  5. Iterate x ← Cx + d until ‖Δx‖·q/(1−q) ≤ Epsilon, or fail with
//     ErrIterationLimit at MaxIterations.
//
// Errors:
//   - ErrBadOptions     — non-positive Epsilon or MaxIterations.
//   - ErrNilMatrix      — nil coefficient or augmented matrix.
//   - ErrNonSquare      — coefficient matrix is not square.
//   - ErrBadRHS         — right-hand side length differs from the order.
//   - ErrBadAugmented   — augmented matrix is not n×(n+1).
//   - ErrZeroDiagonal   — no row selection yields a nonzero diagonal.
//   - ErrNotConvergent  — iteration matrix norm ≥ 1, no guarantee.
//   - ErrIterationLimit — MaxIterations exhausted before the bound held.
var (
	// ErrBadOptions indicates a non-positive Epsilon or MaxIterations.
	ErrBadOptions = errors.New("iteration: options must be strictly positive")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("iteration: matrix is nil")

	// ErrNonSquare indicates the coefficient matrix is not square.
	ErrNonSquare = errors.New("iteration: coefficient matrix must be square")

	// ErrBadRHS indicates the right-hand side length differs from the system order.
	ErrBadRHS = errors.New("iteration: right-hand side length must match matrix order")

	// ErrBadAugmented indicates the augmented matrix is not n×(n+1).
	ErrBadAugmented = errors.New("iteration: augmented matrix must be n×(n+1)")

	// ErrZeroDiagonal indicates no row ordering produced a zero-free diagonal.
	ErrZeroDiagonal = errors.New("iteration: zero diagonal element after row selection")

	// ErrNotConvergent indicates the iteration matrix is not a
	// contraction (‖C‖∞ ≥ 1), so convergence cannot be guaranteed.
	ErrNotConvergent = errors.New("iteration: method does not converge, iteration matrix norm >= 1")

	// ErrIterationLimit indicates MaxIterations was reached before the
	// error bound dropped below Epsilon.
	ErrIterationLimit = errors.New("iteration: iteration limit reached")
)

// Solve approximates the solution of Ax = b by simple iteration.
//
// The returned Result holds the solution, the number of refinement
// steps, and the contraction factor q the stopping rule used. The
// operands are never mutated.
//
// Complexity: O(n²) setup plus O(n²) per iteration step.
func Solve(a *algebra.Matrix, b []float64, opts Options) (Result, error) {
	if opts.Epsilon <= 0 || opts.MaxIterations <= 0 {
		return Result{}, ErrBadOptions
	}
	if a == nil {
		return Result{}, ErrNilMatrix
	}
	n := a.Rows()
	if a.Cols() != n {
		return Result{}, fmt.Errorf("%dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}
	if len(b) != n {
		return Result{}, fmt.Errorf("len(b)=%d for order %d: %w", len(b), n, ErrBadRHS)
	}

	// Row selection toward diagonal dominance, then the shared kernel.
	perm, err := dominantRowOrder(a)
	if err != nil {
		return Result{}, err
	}
	sys, err := a.SubMatrixRows(perm, 0, n-1)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	rhs := make([][]float64, n)
	for i, ri := range perm {
		rhs[i] = []float64{b[ri]}
	}
	rhsCol, err := algebra.FromRows(rhs, n, 1)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	return iterate(sys, rhsCol, opts)
}

// SolveAugmented splits an n×(n+1) augmented matrix [A|b] and solves
// the system. Same contracts and errors as Solve, plus ErrBadAugmented
// for a malformed augmented shape.
func SolveAugmented(aug *algebra.Matrix, opts Options) (Result, error) {
	if aug == nil {
		return Result{}, ErrNilMatrix
	}
	n := aug.Rows()
	if aug.Cols() != n+1 {
		return Result{}, fmt.Errorf("%dx%d: %w", aug.Rows(), aug.Cols(), ErrBadAugmented)
	}

	a, err := aug.SubMatrix(0, 0, n-1, n-1)
	if err != nil {
		return Result{}, fmt.Errorf("SolveAugmented: %w", err)
	}
	bCol, err := aug.SubMatrix(0, n, n-1, n)
	if err != nil {
		return Result{}, fmt.Errorf("SolveAugmented: %w", err)
	}

	b := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := bCol.At(i, 0)
		if err != nil {
			return Result{}, fmt.Errorf("SolveAugmented: %w", err)
		}
		b[i] = v
	}

	return Solve(a, b, opts)
}

// dominantRowOrder greedily picks, per column, the unused row with the
// largest absolute pivot. Returns ErrZeroDiagonal when a column has no
// nonzero pivot among the remaining rows.
func dominantRowOrder(a *algebra.Matrix) ([]int, error) {
	n := a.Rows()
	perm := make([]int, n)
	used := make([]bool, n)

	for j := 0; j < n; j++ {
		best, bestAbs := -1, 0.0
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			v, err := a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("dominantRowOrder: %w", err)
			}
			if abs := math.Abs(v); abs > bestAbs {
				best, bestAbs = i, abs
			}
		}
		if best < 0 {
			return nil, fmt.Errorf("column %d: %w", j, ErrZeroDiagonal)
		}
		perm[j] = best
		used[best] = true
	}

	return perm, nil
}

// iterate runs the fixed-point refinement on a system whose diagonal is
// already zero-free.
func iterate(a, b *algebra.Matrix, opts Options) (Result, error) {
	n := a.Rows()
	diag := a.Diagonal()

	// C = I − D⁻¹A has zero diagonal; q < 1 ⇔ strict diagonal dominance.
	scaled, err := a.DivRows(diag)
	if err != nil {
		return Result{}, fmt.Errorf("iterate: %w", err)
	}
	id, err := algebra.Identity(n)
	if err != nil {
		return Result{}, fmt.Errorf("iterate: %w", err)
	}
	c, err := id.Sub(scaled)
	if err != nil {
		return Result{}, fmt.Errorf("iterate: %w", err)
	}

	q := c.Norm()
	if q >= 1 {
		return Result{}, fmt.Errorf("norm=%g: %w", q, ErrNotConvergent)
	}

	d, err := b.DivRows(diag)
	if err != nil {
		return Result{}, fmt.Errorf("iterate: %w", err)
	}

	// The a-posteriori bound ‖Δx‖·q/(1−q) ≤ ε; factor 0 when C = 0
	// (diagonal system, first step is exact).
	factor := q / (1 - q)

	x := d.Clone()
	for k := 1; k <= opts.MaxIterations; k++ {
		cx, err := c.Mul(x)
		if err != nil {
			return Result{}, fmt.Errorf("iterate: %w", err)
		}
		next, err := cx.Add(d)
		if err != nil {
			return Result{}, fmt.Errorf("iterate: %w", err)
		}
		delta, err := next.Sub(x)
		if err != nil {
			return Result{}, fmt.Errorf("iterate: %w", err)
		}
		x = next

		if delta.AbsMax()*factor <= opts.Epsilon {
			xs, err := columnOf(x)
			if err != nil {
				return Result{}, fmt.Errorf("iterate: %w", err)
			}

			return Result{X: xs, Iterations: k, Norm: q}, nil
		}
	}

	return Result{}, fmt.Errorf("after %d steps: %w", opts.MaxIterations, ErrIterationLimit)
}

// columnOf flattens an n×1 matrix into a plain slice.
func columnOf(m *algebra.Matrix) ([]float64, error) {
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, 0)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
