// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Arithmetic on Vector: scalar broadcast (AddScalar, SubScalar, Scale),
//     element-wise combination (Add, Sub) and the dot product.
//   - Every operation allocates a fresh result; operands are never mutated.
//
// Alignment:
//   - Binary ops combine elements by physical position, not by logical index.
//     Operands must have equal sizes; their start indices may differ and the
//     result keeps the receiver's start index.

package matrix

// mapScalar returns a new vector with out[i] = f(v[i], k).
func (v *Vector[T]) mapScalar(k T, f func(a, b T) T) *Vector[T] {
	out := &Vector[T]{start: v.start, data: make([]T, len(v.data)), validateNaNInf: v.validateNaNInf}
	for i, x := range v.data {
		out.data[i] = f(x, k)
	}

	return out
}

// AddScalar returns v + k element-wise.
// Complexity: O(n).
func (v *Vector[T]) AddScalar(k T) *Vector[T] {
	return v.mapScalar(k, func(a, b T) T { return a + b })
}

// SubScalar returns v - k element-wise.
func (v *Vector[T]) SubScalar(k T) *Vector[T] {
	return v.mapScalar(k, func(a, b T) T { return a - b })
}

// Scale returns v * k element-wise.
func (v *Vector[T]) Scale(k T) *Vector[T] {
	return v.mapScalar(k, func(a, b T) T { return a * b })
}

// zip returns a new vector with out[i] = f(v[i], other[i]) after the shape guard.
func (v *Vector[T]) zip(op string, other *Vector[T], f func(a, b T) T) (*Vector[T], error) {
	if err := validateSameVector(v, other); err != nil {
		return nil, matrixErrorf("Vector."+op, err)
	}
	out := &Vector[T]{start: v.start, data: make([]T, len(v.data)), validateNaNInf: v.validateNaNInf}
	for i := range v.data {
		out.data[i] = f(v.data[i], other.data[i])
	}

	return out, nil
}

// Add returns the element-wise sum v + other.
//
// Errors:
//   - ErrNilVector if other is nil.
//   - ErrSizeMismatch if sizes differ.
//
// Complexity: O(n).
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	return v.zip(opAdd, other, func(a, b T) T { return a + b })
}

// Sub returns the element-wise difference v - other.
// Errors as for Add.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	return v.zip(opSub, other, func(a, b T) T { return a - b })
}

// Dot returns Σ v[i]*other[i]. The dot product of two empty vectors is 0.
//
// Errors:
//   - ErrNilVector if other is nil.
//   - ErrSizeMismatch if sizes differ.
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	var sum T
	if err := validateSameVector(v, other); err != nil {
		return sum, matrixErrorf("Vector."+opDot, err)
	}
	for i := range v.data {
		sum += v.data[i] * other.data[i]
	}

	return sum, nil
}
