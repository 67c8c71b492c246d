// SPDX-License-Identifier: MIT

// Package algebra provides dense linear-algebra primitives for
// array-based numeric computations.
//
// The algebra package provides:
//
//   - Matrix, a row-major dense container of float64 values with fixed
//     shape, bounds-checked element access and a fmt.Stringer view.
//   - Algebraic operations (Add, Sub, Mul, Scale, DivRows) that always
//     allocate a fresh result and never mutate their operands.
//   - Structural queries (Norm, AbsMax, Diagonal) and slicing
//     (SubMatrix, SubMatrixRows) re-indexed from the origin.
//   - Identity construction.
//
// Numeric semantics follow IEEE-754 double precision exactly: the
// primitives apply no tolerance or epsilon of their own, and division
// by zero yields ±Inf or NaN rather than an error. Callers that need
// approximate comparison bring their own tolerance.
//
// All failures are sentinel errors matched via errors.Is; see errors.go.
package algebra
