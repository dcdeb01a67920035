// SPDX-License-Identifier: MIT

// Package matrix - Vector storage & bounds-checked accessors.
//
// Purpose:
//   - Own a contiguous buffer of Size() elements addressed by logical indices
//     [StartIndex, StartIndex+Size). Physical offset = index - StartIndex.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead
//     of panicking; there is no unchecked accessor.
//   - Value semantics: Clone and Assign always deep-copy, never alias.
//
// Complexity quicksheet:
//   - NewVector: O(n) zero-init; At/Set/Ref: O(1); Clone/Assign/Equal: O(n).

package matrix

import (
	"fmt"
	"strings"
)

// vectorErrorf wraps a sentinel with Vector method context and the offending index.
func vectorErrorf(method string, index int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, index, err)
}

// Vector is a bounds-checked sequence of numbers with a configurable first
// logical index.
//   - start is the first logical index (>= 0).
//   - data is the owned physical storage; len(data) is the vector size.
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Vector[T Number] struct {
	start          int
	data           []T
	validateNaNInf bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// NewVector creates a zero-filled vector of the given size.
// The start index defaults to 0 and can be changed with WithStartIndex.
//
// Errors:
//   - ErrInvalidArgument if size < 0, size > MaxVectorSize, start index < 0,
//     or start+size overflows int.
//
// Complexity: O(size) time and memory.
func NewVector[T Number](size int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if err := validateSize(size, MaxVectorSize); err != nil {
		return nil, vectorErrorf(opNewVector, size, err)
	}
	if err := validateStartIndex(o.startIndex, size); err != nil {
		return nil, vectorErrorf(opNewVector, size, err)
	}

	return &Vector[T]{
		start:          o.startIndex,
		data:           make([]T, size),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewVectorFrom creates a vector holding a copy of values.
// The caller's slice is never retained.
//
// Errors:
//   - ErrInvalidArgument as for NewVector.
//   - ErrNaNInf if the numeric policy is enabled and a value is not finite.
func NewVectorFrom[T Number](values []T, opts ...Option) (*Vector[T], error) {
	v, err := NewVector[T](len(values), opts...)
	if err != nil {
		return nil, err
	}
	if v.validateNaNInf {
		for i, x := range values {
			if err = validateFinite(x); err != nil {
				return nil, vectorErrorf(opFromValues, v.start+i, err)
			}
		}
	}
	copy(v.data, values)

	return v, nil
}

// Size returns the number of elements.
func (v *Vector[T]) Size() int {
	return len(v.data)
}

// StartIndex returns the first valid logical index.
func (v *Vector[T]) StartIndex() int {
	return v.start
}

// offset maps a logical index onto the physical buffer or fails with ErrOutOfRange.
func (v *Vector[T]) offset(method string, index int) (int, error) {
	if index < v.start || index-v.start >= len(v.data) {
		return 0, vectorErrorf(method, index, ErrOutOfRange)
	}

	return index - v.start, nil
}

// At returns the element at the logical index.
// Complexity: O(1).
func (v *Vector[T]) At(index int) (T, error) {
	off, err := v.offset(opAt, index)
	if err != nil {
		var zero T
		return zero, err
	}

	return v.data[off], nil
}

// Set writes x at the logical index.
// On error the vector is left unchanged.
func (v *Vector[T]) Set(index int, x T) error {
	off, err := v.offset(opSet, index)
	if err != nil {
		return err
	}
	if v.validateNaNInf {
		if err = validateFinite(x); err != nil {
			return vectorErrorf(opSet, index, err)
		}
	}
	v.data[off] = x

	return nil
}

// Ref returns a pointer to the element at the logical index, for in-place
// updates such as *p += 1. The pointer is invalidated by Assign.
// Writes through Ref bypass the NaN/Inf policy.
func (v *Vector[T]) Ref(index int) (*T, error) {
	off, err := v.offset(opRef, index)
	if err != nil {
		return nil, err
	}

	return &v.data[off], nil
}

// Values returns a copy of the elements in physical order.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy with independent storage.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{start: v.start, data: data, validateNaNInf: v.validateNaNInf}
}

// Assign makes v a deep copy of src: size, start index, policy and values.
// Assigning a vector to itself is a no-op. The buffer is reallocated only when
// the sizes differ.
//
// Errors:
//   - ErrNilVector if src is nil; v is left unchanged.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == nil {
		return ErrNilVector
	}
	if v == src {
		return nil
	}
	if len(v.data) != len(src.data) {
		v.data = make([]T, len(src.data))
	}
	copy(v.data, src.data)
	v.start = src.start
	v.validateNaNInf = src.validateNaNInf

	return nil
}

// Equal reports whether v and other have the same size, the same start index
// and pairwise equal elements. Two nil vectors are equal.
// Float NaN elements never compare equal.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	if v.start != other.start || len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(other *Vector[T]) bool {
	return !v.Equal(other)
}

// String implements fmt.Stringer: "[a, b, c]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteString(_fmtRowClose)

	return sb.String()
}
