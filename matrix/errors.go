// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinel errors and matrixErrorf, the
// single wrapper that attaches call-site context to them. Every public
// operation returns these sentinels (possibly wrapped with call-site context)
// and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with fmt.Errorf("Vector.At(%d): %w", ...) so callers still match with
// errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> invalid argument -> size mismatch -> index -> numeric policy.

var (
	// ErrInvalidArgument is returned by constructors when the requested size is
	// negative or above the package maximum, or when the start index is negative
	// or too large for start+size to fit in an int.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that a logical index (element or row) is outside
	// the valid range of the container.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates incompatible operand sizes in a binary operation
	// (Add, Sub, Dot, Mul, MulVector).
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written into a container whose
	// numeric policy requires finite values (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf wraps a sentinel with a call-site tag, e.g. "Vector.Add".
// Shared by validators and by Vector/Matrix operations.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
