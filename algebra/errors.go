// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// algebra package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions.

package algebra

import "errors"

// Every message is prefixed with "algebra: ..." for consistency and easy
// grepping across logs. Call sites that need context wrap with
// fmt.Errorf("Op: %w", ErrX) so errors.Is still matches.

var (
	// ErrInvalidDimensions indicates a requested shape with a
	// non-positive row or column count (construction, Identity).
	ErrInvalidDimensions = errors.New("algebra: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: ragged or mis-declared source data in FromRows,
	// Add/Sub with different shapes, Mul where a.Cols != b.Rows, or
	// DivRows with a divisor slice shorter or longer than the row count.
	ErrDimensionMismatch = errors.New("algebra: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside the valid
	// bounds of the receiver (At, Set, SubMatrix, SubMatrixRows).
	ErrOutOfRange = errors.New("algebra: index out of range")
)
