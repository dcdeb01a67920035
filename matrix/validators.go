// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the guard checks shared by Vector
//    and Matrix (sizes, start indices, operand shape, numeric policy).
//  - Return sentinel errors, tagged via matrixErrorf where the offending values
//    help; callers add method context on top.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validateSize ensures 0 <= size <= limit.
func validateSize(size, limit int) error {
	if size < 0 || size > limit {
		return matrixErrorf(fmt.Sprintf("size %d not in [0,%d]", size, limit), ErrInvalidArgument)
	}

	return nil
}

// validateStartIndex ensures the first logical index is non-negative and that
// the exclusive end start+size is representable as an int.
// Assumes size has already passed validateSize.
func validateStartIndex(start, size int) error {
	if start < 0 || start > math.MaxInt-size {
		return matrixErrorf(fmt.Sprintf("start index %d for size %d", start, size), ErrInvalidArgument)
	}

	return nil
}

// validateFinite rejects NaN and ±Inf. Integer values always pass.
func validateFinite[T Number](v T) error {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNaNInf
	}

	return nil
}

// validateSameVector checks both operands are non-nil and have equal sizes.
// Start indices are not compared: binary ops combine by position.
func validateSameVector[T Number](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return matrixErrorf(fmt.Sprintf("sizes %d and %d", len(a.data), len(b.data)), ErrSizeMismatch)
	}

	return nil
}

// validateSameMatrix checks both operands are non-nil and have equal sizes.
func validateSameMatrix[T Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if len(a.rows) != len(b.rows) {
		return matrixErrorf(fmt.Sprintf("sizes %d and %d", len(a.rows), len(b.rows)), ErrSizeMismatch)
	}

	return nil
}
