// SPDX-License-Identifier: MIT

// Package algebra: algebraic operations on Matrix.
// Every operation here performs strict fail-fast validation, allocates
// a fresh result, and leaves its operands untouched. Loop orders are
// fixed (flat 0..n-1 or i→k→j) so results are bit-for-bit deterministic.

package algebra

import (
	"fmt"
	"math"
)

// addSub computes elementwise out = m + sign*other for sign ∈ {+1, -1}.
// Shared validation and loop for Add/Sub.
func (m *Matrix) addSub(other *Matrix, sign float64, tag string) (*Matrix, error) {
	if err := validateSameShape(m, other); err != nil {
		return nil, opErrorf(tag, err)
	}

	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	for idx := range m.data {
		out.data[idx] = m.data[idx] + sign*other.data[idx]
	}

	return out, nil
}

// Add returns the element-wise sum C = M + other as a fresh Matrix.
// Returns ErrDimensionMismatch when shapes differ.
// Complexity: O(rows*cols).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) { return m.addSub(other, +1, opAdd) }

// Sub returns the element-wise difference C = M − other as a fresh Matrix.
// Returns ErrDimensionMismatch when shapes differ.
// Complexity: O(rows*cols).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) { return m.addSub(other, -1, opSub) }

// Mul returns the standard matrix product C = M × other:
// C[i][j] = Σ_k M[i][k]·other[k][j].
// Returns ErrDimensionMismatch when m.Cols() != other.Rows().
// Complexity: O(rows*K*cols) time with the i→k→j loop order, which
// walks both backing slices sequentially.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, opErrorf(opMul, fmt.Errorf("inner dimensions %d vs %d: %w", m.cols, other.rows, ErrDimensionMismatch))
	}

	out := &Matrix{rows: m.rows, cols: other.cols, data: make([]float64, m.rows*other.cols)}
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			// Every term is accumulated, including zero ones: 0·Inf is
			// NaN under IEEE-754 and must reach the sum, since DivRows
			// by zero legitimately feeds infinities into products.
			mik := m.data[i*m.cols+k]
			for j := 0; j < other.cols; j++ {
				out.data[i*out.cols+j] += mik * other.data[k*other.cols+j]
			}
		}
	}

	return out, nil
}

// Scale returns a fresh Matrix with every element multiplied by lambda.
// Always succeeds. Complexity: O(rows*cols).
func (m *Matrix) Scale(lambda float64) *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	for idx := range m.data {
		out.data[idx] = lambda * m.data[idx]
	}

	return out
}

// Norm returns the infinity norm: the maximum over rows of the sum of
// absolute values in that row. Returns 0 for an all-zero matrix.
// Complexity: O(rows*cols).
func (m *Matrix) Norm() float64 {
	var norm float64
	for i := 0; i < m.rows; i++ {
		var rowSum float64
		for j := 0; j < m.cols; j++ {
			rowSum += math.Abs(m.data[i*m.cols+j])
		}
		if rowSum > norm {
			norm = rowSum
		}
	}

	return norm
}

// AbsMax returns the largest absolute value among all elements, 0 for
// an all-zero matrix. Complexity: O(rows*cols).
func (m *Matrix) AbsMax() float64 {
	var peak float64
	for _, v := range m.data {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}

// Diagonal returns the min(rows, cols) main-diagonal elements, the
// i-th being element (i, i). The slice is freshly allocated.
// Complexity: O(min(rows, cols)).
func (m *Matrix) Diagonal() []float64 {
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	diag := make([]float64, n)
	for i := 0; i < n; i++ {
		diag[i] = m.data[i*m.cols+i]
	}

	return diag
}

// DivRows returns a fresh Matrix where row i is divided element-wise by
// divisors[i]. Division by zero follows IEEE-754 and yields ±Inf or
// NaN; it is never reported as an error.
// Returns ErrDimensionMismatch when len(divisors) != Rows().
// Complexity: O(rows*cols).
func (m *Matrix) DivRows(divisors []float64) (*Matrix, error) {
	if len(divisors) != m.rows {
		return nil, opErrorf(opDivRows, fmt.Errorf("%d divisors for %d rows: %w", len(divisors), m.rows, ErrDimensionMismatch))
	}

	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	for i := 0; i < m.rows; i++ {
		d := divisors[i]
		for j := 0; j < m.cols; j++ {
			out.data[i*m.cols+j] = m.data[i*m.cols+j] / d
		}
	}

	return out, nil
}

// SubMatrix returns the inclusive slice M(i0:i1, j0:j1) as a fresh
// Matrix re-indexed from (0,0).
// Returns ErrOutOfRange when any bound falls outside the receiver or a
// range is empty (i0 > i1, j0 > j1).
// Complexity: O((i1-i0+1)*(j1-j0+1)).
func (m *Matrix) SubMatrix(i0, j0, i1, j1 int) (*Matrix, error) {
	if i0 < 0 || i1 >= m.rows || i0 > i1 {
		return nil, opErrorf(opSubMatrix, fmt.Errorf("rows %d..%d outside 0..%d: %w", i0, i1, m.rows-1, ErrOutOfRange))
	}
	if err := m.validateColRange(j0, j1); err != nil {
		return nil, opErrorf(opSubMatrix, err)
	}

	out := &Matrix{rows: i1 - i0 + 1, cols: j1 - j0 + 1, data: make([]float64, (i1-i0+1)*(j1-j0+1))}
	for i := i0; i <= i1; i++ {
		copy(out.data[(i-i0)*out.cols:(i-i0+1)*out.cols], m.data[i*m.cols+j0:i*m.cols+j1+1])
	}

	return out, nil
}

// SubMatrixRows returns the slice M(rowIdx[:], j0:j1) as a fresh
// Matrix: an explicit, possibly reordered or repeated selection of
// rows, with the inclusive column range, re-indexed from (0,0).
// Returns ErrOutOfRange on any invalid row index or column bound, and
// ErrInvalidDimensions when rowIdx is empty.
// Complexity: O(len(rowIdx)*(j1-j0+1)).
func (m *Matrix) SubMatrixRows(rowIdx []int, j0, j1 int) (*Matrix, error) {
	if len(rowIdx) == 0 {
		return nil, opErrorf(opSubMatrixRows, ErrInvalidDimensions)
	}
	if err := m.validateColRange(j0, j1); err != nil {
		return nil, opErrorf(opSubMatrixRows, err)
	}
	for k, ri := range rowIdx {
		if ri < 0 || ri >= m.rows {
			return nil, opErrorf(opSubMatrixRows, fmt.Errorf("rowIdx[%d]=%d outside 0..%d: %w", k, ri, m.rows-1, ErrOutOfRange))
		}
	}

	out := &Matrix{rows: len(rowIdx), cols: j1 - j0 + 1, data: make([]float64, len(rowIdx)*(j1-j0+1))}
	for k, ri := range rowIdx {
		copy(out.data[k*out.cols:(k+1)*out.cols], m.data[ri*m.cols+j0:ri*m.cols+j1+1])
	}

	return out, nil
}
