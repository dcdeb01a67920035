// SPDX-License-Identifier: MIT

// Package matrix offers two generic, bounds-checked value containers.
//
// The matrix package provides:
//
//   - Vector[T]: a 1-D sequence with a configurable first logical index
//     (WithStartIndex). Valid indices are [StartIndex, StartIndex+Size).
//   - Matrix[T]: a square upper-triangular matrix stored as Size() row
//     vectors of decreasing length; row i starts at column i.
//
// Both types own their storage. Clone and Assign deep-copy; nothing returned
// by an arithmetic operation aliases an operand. Accessors return
// ErrOutOfRange instead of panicking, constructors return ErrInvalidArgument
// for sizes outside [0, MaxVectorSize] / [0, MaxMatrixSize], and binary
// operations return ErrSizeMismatch on incompatible shapes.
//
// Element types are any built-in integer or float (see Number). Values are
// not safe for concurrent mutation; share them read-only or give each
// goroutine its own Clone.
package matrix
