// Package cmath is a small computational-mathematics toolkit: dense
// matrix algebra, Lagrange polynomial interpolation, and an iterative
// linear-system solver built on top of them.
//
// 🚀 What is cmath?
//
//	A deterministic, pure-Go numeric library that brings together:
//		• Dense matrices: construction, submatrices, products, norms, identity
//		• Lagrange interpolation: build once in O(n²), evaluate anywhere in O(n)
//		• Simple iteration: solve Ax=b with the convergence check done up front
//
// ✨ Why choose cmath?
//
//   - Predictable numerics – strict IEEE-754 semantics, no hidden epsilons
//   - Fail-fast contracts – sentinel errors, checked with errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Immutable results – operations allocate, operands are never touched
//
// Everything is organized under three subpackages:
//
//	algebra/       — dense Matrix type and linear-algebra primitives
//	interpolation/ — Lagrange polynomial builder and evaluator
//	iteration/     — simple-iteration (fixed-point) linear solver
//
// The packages are layered: interpolation and iteration consume plain
// float64 slices and hand back plain float64 results, so downstream
// rendering or reporting code never needs to know the internal
// representations.
//
//	go get github.com/avdeitch/cmath
package cmath
