// SPDX-License-Identifier: MIT

// Package algebra: the Matrix type.
// Matrix is a concrete, row-major dense container storing elements in a
// flat slice for cache friendliness. Shape is fixed at construction;
// element writes go through bounds-checked Set; algebraic operations
// live in ops.go and always return fresh instances.

package algebra

import (
	"fmt"
	"strings"
)

// Matrix is a row-major dense matrix of float64 values.
// rows and cols are fixed at construction; data holds rows*cols
// elements in row-major order and is owned exclusively by the instance.
type Matrix struct {
	rows, cols int       // shape, immutable after construction
	data       []float64 // flat backing storage, length == rows*cols
}

// New creates a rows×cols Matrix initialized to zeros.
// Returns ErrInvalidDimensions when rows <= 0 or cols <= 0.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf(opNew, err)
	}

	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Matrix from a caller-supplied two-dimensional slice
// with declared dimensions. The data is copied; the caller keeps
// ownership of its slice and later writes to it do not affect the
// Matrix.
//
// Errors:
//   - ErrInvalidDimensions — rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch — len(data) != rows, or any row whose length
//     differs from cols (ragged input).
//
// Complexity: O(rows*cols).
func FromRows(data [][]float64, rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf(opFromRows, err)
	}
	if len(data) != rows {
		return nil, opErrorf(opFromRows, fmt.Errorf("got %d rows, declared %d: %w", len(data), rows, ErrDimensionMismatch))
	}
	for i := 0; i < rows; i++ {
		if len(data[i]) != cols {
			return nil, opErrorf(opFromRows, fmt.Errorf("row %d has %d columns, declared %d: %w", i, len(data[i]), cols, ErrDimensionMismatch))
		}
	}

	m := &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], data[i])
	}

	return m, nil
}

// Identity returns the size×size identity matrix: 1.0 on the main
// diagonal, 0.0 elsewhere.
// Returns ErrInvalidDimensions when size <= 0.
// Complexity: O(size²).
func Identity(size int) (*Matrix, error) {
	m, err := New(size, size)
	if err != nil {
		return nil, opErrorf(opIdentity, ErrInvalidDimensions)
	}
	for i := 0; i < size; i++ {
		m.data[i*size+i] = 1.0
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// indexOf computes the flat index for (i, j) or returns ErrOutOfRange.
func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("(%d,%d) outside %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return i*m.cols + j, nil
}

// At retrieves the element at (i, j), zero-based.
// Returns ErrOutOfRange when either index is outside the shape.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, opErrorf(opAt, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (i, j), zero-based. The shape never changes; Set is
// the only write path into an existing Matrix and is meant for filling
// during construction.
// Returns ErrOutOfRange when either index is outside the shape.
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return opErrorf(opSet, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy with identical shape and contents.
// Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// String implements fmt.Stringer for easy debugging: one bracketed row
// per line. Complexity: O(rows*cols).
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
