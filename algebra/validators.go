// SPDX-License-Identifier: MIT
// Package algebra: canonical validation helpers and operation tags.
// Validators return plain sentinels so call sites can wrap uniformly
// with opErrorf. All checks are pure, deterministic and allocate
// nothing on the success path.

package algebra

import "fmt"

// Operation name constants for unified error wrapping; no magic strings
// at call sites.
const (
	opNew           = "New"
	opFromRows      = "FromRows"
	opIdentity      = "Identity"
	opAt            = "At"
	opSet           = "Set"
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opDivRows       = "DivRows"
	opSubMatrix     = "SubMatrix"
	opSubMatrixRows = "SubMatrixRows"
)

// opErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape ensures a requested shape is strictly positive.
// Returns ErrInvalidDimensions otherwise.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil. Returns ErrDimensionMismatch otherwise.
func validateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// validateColRange ensures j0..j1 is a well-formed inclusive column
// range inside m. Returns ErrOutOfRange otherwise.
func (m *Matrix) validateColRange(j0, j1 int) error {
	if j0 < 0 || j1 >= m.cols || j0 > j1 {
		return fmt.Errorf("columns %d..%d outside 0..%d: %w", j0, j1, m.cols-1, ErrOutOfRange)
	}

	return nil
}
