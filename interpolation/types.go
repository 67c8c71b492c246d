// Package interpolation defines the collaborator-facing value types.
package interpolation

// Function is any evaluable mapping from x to y. It may be partial:
// returning NaN or ±Inf marks the point as outside the function's
// domain. A built *Polynomial satisfies this shape via Evaluate, so
// interpolants compose with the same machinery that consumed the
// source function.
type Function func(x float64) float64

// Node is one (x, y) sample pair anchoring the interpolant.
//
// A node set is well-posed only when all X values are finite and
// pairwise distinct: two equal abscissae zero a Lagrange basis
// denominator (ErrDuplicateNode at build time), and NaN/±Inf abscissae
// cannot anchor a polynomial at all (ErrNonFiniteNode).
type Node struct {
	X, Y float64
}
