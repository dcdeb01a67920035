// SPDX-License-Identifier: MIT

// Package matrix: domain types and limits shared by Vector and Matrix.
package matrix

import "golang.org/x/exp/constraints"

// Size limits enforced at construction time.
const (
	// MaxVectorSize is the largest element count a Vector may hold.
	MaxVectorSize = 100_000_000

	// MaxMatrixSize is the largest dimension of a Matrix. Storage is
	// MaxMatrixSize*(MaxMatrixSize+1)/2 cells at most.
	MaxMatrixSize = 10_000
)

// Number is the element constraint for both containers: any built-in
// integer or floating-point type. Arithmetic wraps or rounds exactly as the
// underlying Go type does.
type Number interface {
	constraints.Integer | constraints.Float
}

// Operation name constants for unified error wrapping.
const (
	opNewVector  = "NewVector"
	opNewMatrix  = "NewMatrix"
	opAt         = "At"
	opSet        = "Set"
	opRef        = "Ref"
	opRow        = "Row"
	opAdd        = "Add"
	opSub        = "Sub"
	opDot        = "Dot"
	opMul        = "Mul"
	opMulVector  = "MulVector"
	opFromValues = "From"
)
