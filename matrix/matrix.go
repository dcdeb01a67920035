// SPDX-License-Identifier: MIT

// Package matrix - upper-triangular Matrix built from Vector rows.
//
// What & Why:
//
//	A Matrix of size n stores only the cells with column >= row. Row i is a
//	Vector of length n-i whose start index is i, so the row's own bounds
//	check enforces the triangular shape: m.Row(i).At(j) fails for j < i.
//	The lower triangle is never allocated (n(n+1)/2 cells instead of n²).
//
// Complexity:
//
//	Size() is O(1). Row/At/Set are O(1) with bounds checks on both levels.
//	Clone, Assign and Equal are O(n²/2).
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a square upper-triangular matrix.
//   - rows[i] has length len(rows)-i and start index i.
//   - validateNaNInf is the numeric policy propagated into every row.
type Matrix[T Number] struct {
	rows           []*Vector[T]
	validateNaNInf bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// NewMatrix creates a zero-filled size×size upper-triangular matrix.
// WithStartIndex is ignored; WithValidateNaNInf applies to every row.
//
// Errors:
//   - ErrInvalidArgument if size < 0 or size > MaxMatrixSize.
//
// Complexity: O(size²/2) time and memory.
func NewMatrix[T Number](size int, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if err := validateSize(size, MaxMatrixSize); err != nil {
		return nil, matrixErrorf(fmt.Sprintf("Matrix.%s(%d)", opNewMatrix, size), err)
	}
	m := &Matrix[T]{rows: make([]*Vector[T], size), validateNaNInf: o.validateNaNInf}
	for i := range m.rows {
		m.rows[i] = &Vector[T]{start: i, data: make([]T, size-i), validateNaNInf: o.validateNaNInf}
	}

	return m, nil
}

// NewMatrixFrom builds a matrix from its upper-triangular rows: rows[i] must
// hold exactly len(rows)-i values, for columns i..len(rows)-1.
//
// Errors:
//   - ErrInvalidArgument on a size violation or a ragged row.
//   - ErrNaNInf if the numeric policy is enabled and a value is not finite.
func NewMatrixFrom[T Number](rows [][]T, opts ...Option) (*Matrix[T], error) {
	n := len(rows)
	m, err := NewMatrix[T](n, opts...)
	if err != nil {
		return nil, err
	}
	for i, vals := range rows {
		if len(vals) != n-i {
			return nil, matrixErrorf(fmt.Sprintf("Matrix.%s: row %d has %d values, want %d", opFromValues, i, len(vals), n-i), ErrInvalidArgument)
		}
		for j, x := range vals {
			if err = m.rows[i].Set(i+j, x); err != nil {
				return nil, matrixErrorf(fmt.Sprintf("Matrix.%s: row %d", opFromValues, i), err)
			}
		}
	}

	return m, nil
}

// Size returns the matrix dimension.
func (m *Matrix[T]) Size() int {
	return len(m.rows)
}

// Row returns row i itself (not a copy); writes through it modify m.
// Valid column indices of the returned row are [i, Size()).
//
// Errors:
//   - ErrOutOfRange if i is outside [0, Size()).
func (m *Matrix[T]) Row(i int) (*Vector[T], error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", opRow, i, ErrOutOfRange)
	}

	return m.rows[i], nil
}

// At returns the cell (i, j); j must be in [i, Size()).
func (m *Matrix[T]) At(i, j int) (T, error) {
	row, err := m.Row(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return row.At(j)
}

// Set writes the cell (i, j); j must be in [i, Size()).
func (m *Matrix[T]) Set(i, j int, x T) error {
	row, err := m.Row(i)
	if err != nil {
		return err
	}

	return row.Set(j, x)
}

// Clone returns a deep copy; every row owns fresh storage.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{rows: make([]*Vector[T], len(m.rows)), validateNaNInf: m.validateNaNInf}
	for i, r := range m.rows {
		out.rows[i] = r.Clone()
	}

	return out
}

// Assign makes m a deep copy of src, taking its size and row shape.
// Assigning a matrix to itself is a no-op. Row pointers previously obtained
// from m keep referring to the old rows.
//
// Errors:
//   - ErrNilMatrix if src is nil; m is left unchanged.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if src == nil {
		return ErrNilMatrix
	}
	if m == src {
		return nil
	}
	c := src.Clone()
	m.rows = c.rows
	m.validateNaNInf = c.validateNaNInf

	return nil
}

// Equal reports whether both matrices have the same size and equal rows.
// Two nil matrices are equal.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil || len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(other *Matrix[T]) bool {
	return !m.Equal(other)
}

// Dense expands m into a full Size()×Size() slice, with zeros below the diagonal.
func (m *Matrix[T]) Dense() [][]T {
	n := len(m.rows)
	out := make([][]T, n)
	for i, r := range m.rows {
		out[i] = make([]T, n)
		copy(out[i][i:], r.data)
	}

	return out
}

// String implements fmt.Stringer: one "[...]" line per row of the dense
// expansion, lower part printed as zeros.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i, row := range m.Dense() {
		if i > 0 {
			sb.WriteString(_fmtLineSep)
		}
		sb.WriteString(_fmtRowOpen)
		for j, x := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, x)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
