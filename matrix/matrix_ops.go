// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Arithmetic on upper-triangular Matrix: Add, Sub (row-wise through
//     Vector), Mul (triangular product) and MulVector.
//   - Every operation allocates a fresh result; operands are never mutated.
//
// Determinism:
//   - Fixed loop orders (i→j→k); no map iteration.

package matrix

// zipRows combines a and b row by row with the given Vector operation.
func (m *Matrix[T]) zipRows(op string, other *Matrix[T], f func(a, b *Vector[T]) (*Vector[T], error)) (*Matrix[T], error) {
	if err := validateSameMatrix(m, other); err != nil {
		return nil, matrixErrorf("Matrix."+op, err)
	}
	out := &Matrix[T]{rows: make([]*Vector[T], len(m.rows)), validateNaNInf: m.validateNaNInf}
	for i := range m.rows {
		r, err := f(m.rows[i], other.rows[i])
		if err != nil {
			// unreachable for well-formed matrices: row i has the same length in both
			return nil, matrixErrorf("Matrix."+op, err)
		}
		out.rows[i] = r
	}

	return out, nil
}

// Add returns the element-wise sum m + other.
//
// Errors:
//   - ErrNilMatrix if other is nil.
//   - ErrSizeMismatch if sizes differ.
//
// Complexity: O(n²/2).
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return m.zipRows(opAdd, other, (*Vector[T]).Add)
}

// Sub returns the element-wise difference m - other. Errors as for Add.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return m.zipRows(opSub, other, (*Vector[T]).Sub)
}

// Mul returns the matrix product m·other.
// The product of two upper-triangular matrices is upper-triangular, and for
// j >= i only k in [i, j] contributes:
//
//	C[i][j] = Σ_{k=i..j} A[i][k]·B[k][j]
//
// Errors:
//   - ErrNilMatrix if other is nil.
//   - ErrSizeMismatch if sizes differ.
//
// Complexity: O(n³/6).
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if err := validateSameMatrix(m, other); err != nil {
		return nil, matrixErrorf("Matrix."+opMul, err)
	}
	n := len(m.rows)
	out := &Matrix[T]{rows: make([]*Vector[T], n), validateNaNInf: m.validateNaNInf}
	for i := 0; i < n; i++ {
		a := m.rows[i].data // a[k-i] = A[i][k]
		c := make([]T, n-i) // c[j-i] = C[i][j]
		for k := i; k < n; k++ {
			aik := a[k-i]
			b := other.rows[k].data // b[j-k] = B[k][j]
			for j := k; j < n; j++ {
				c[j-i] += aik * b[j-k]
			}
		}
		out.rows[i] = &Vector[T]{start: i, data: c, validateNaNInf: m.validateNaNInf}
	}

	return out, nil
}

// MulVector returns y = m·x, treating x positionally (x[0] pairs with column 0).
// The result has x's start index.
//
// Errors:
//   - ErrNilVector if x is nil.
//   - ErrSizeMismatch if x.Size() != m.Size().
//
// Complexity: O(n²/2).
func (m *Matrix[T]) MulVector(x *Vector[T]) (*Vector[T], error) {
	if x == nil {
		return nil, matrixErrorf("Matrix."+opMulVector, ErrNilVector)
	}
	n := len(m.rows)
	if len(x.data) != n {
		return nil, matrixErrorf("Matrix."+opMulVector, ErrSizeMismatch)
	}
	y := &Vector[T]{start: x.start, data: make([]T, n), validateNaNInf: x.validateNaNInf}
	for i := 0; i < n; i++ {
		var sum T
		for j, a := range m.rows[i].data {
			sum += a * x.data[i+j]
		}
		y.data[i] = sum
	}

	return y, nil
}
