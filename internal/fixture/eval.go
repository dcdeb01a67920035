// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/utmatrix/matrix"
)

// Result is the outcome of Eval. Exactly one of Vector, Matrix, Scalar or
// Equal is set.
type Result struct {
	Op     string `yaml:"op"`
	Vector any    `yaml:"vector,omitempty"`
	Start  int    `yaml:"start,omitempty"`
	Matrix any    `yaml:"matrix,omitempty"`
	Scalar any    `yaml:"scalar,omitempty"`
	Equal  *bool  `yaml:"equal,omitempty"`

	text string
}

// String renders the result the way the matrix package prints containers.
func (r *Result) String() string { return r.text }

// Eval runs the document's operation. opts apply to every constructed
// operand (numeric policy).
func Eval(doc *Document, opts ...matrix.Option) (*Result, error) {
	if doc.Type == TypeInt {
		return eval[int](doc, opts)
	}

	return eval[float64](doc, opts)
}

// operands holds decoded values of one element type.
type operands[T matrix.Number] struct {
	vectors  []*matrix.Vector[T]
	matrices []*matrix.Matrix[T]
}

func decode[T matrix.Number](doc *Document, opts []matrix.Option) (*operands[T], error) {
	ops := &operands[T]{}
	for i, o := range doc.Operands {
		if o.IsVector() {
			var vals []T
			if err := o.Vector.Decode(&vals); err != nil {
				return nil, fmt.Errorf("%w: operand %d: %v", ErrBadDocument, i, err)
			}
			v, err := matrix.NewVectorFrom(vals, append(slices.Clip(opts), matrix.WithStartIndex(o.Start))...)
			if err != nil {
				return nil, fmt.Errorf("operand %d: %w", i, err)
			}
			ops.vectors = append(ops.vectors, v)
			continue
		}
		var rows [][]T
		if err := o.Matrix.Decode(&rows); err != nil {
			return nil, fmt.Errorf("%w: operand %d: %v", ErrBadDocument, i, err)
		}
		m, err := matrix.NewMatrixFrom(rows, opts...)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
		ops.matrices = append(ops.matrices, m)
	}

	return ops, nil
}

func eval[T matrix.Number](doc *Document, opts []matrix.Option) (*Result, error) {
	ops, err := decode[T](doc, opts)
	if err != nil {
		return nil, err
	}
	nv, nm := len(ops.vectors), len(ops.matrices)
	res := &Result{Op: doc.Op}

	switch doc.Op {
	case OpAdd, OpSub, OpEqual:
		switch {
		case nv == 2 && nm == 0:
			a, b := ops.vectors[0], ops.vectors[1]
			if doc.Op == OpEqual {
				return res.setEqual(a.Equal(b)), nil
			}
			f := a.Add
			if doc.Op == OpSub {
				f = a.Sub
			}
			out, err := f(b)
			if err != nil {
				return nil, err
			}
			return setVector(res, out), nil
		case nm == 2 && nv == 0:
			a, b := ops.matrices[0], ops.matrices[1]
			if doc.Op == OpEqual {
				return res.setEqual(a.Equal(b)), nil
			}
			f := a.Add
			if doc.Op == OpSub {
				f = a.Sub
			}
			out, err := f(b)
			if err != nil {
				return nil, err
			}
			return setMatrix(res, out), nil
		}

	case OpMul:
		switch {
		case nm == 2 && nv == 0:
			out, err := ops.matrices[0].Mul(ops.matrices[1])
			if err != nil {
				return nil, err
			}
			return setMatrix(res, out), nil
		case nm == 1 && nv == 1 && doc.Operands[0].IsMatrix():
			out, err := ops.matrices[0].MulVector(ops.vectors[0])
			if err != nil {
				return nil, err
			}
			return setVector(res, out), nil
		case nv == 2 && nm == 0:
			return dot(res, ops.vectors[0], ops.vectors[1])
		}

	case OpDot:
		if nv == 2 && nm == 0 {
			return dot(res, ops.vectors[0], ops.vectors[1])
		}

	case OpScale, OpAddScalar, OpSubScalar:
		if nv == 1 && nm == 0 && !doc.Scalar.IsZero() {
			var k T
			if err := doc.Scalar.Decode(&k); err != nil {
				return nil, fmt.Errorf("%w: scalar: %v", ErrBadDocument, err)
			}
			v := ops.vectors[0]
			switch doc.Op {
			case OpScale:
				return setVector(res, v.Scale(k)), nil
			case OpAddScalar:
				return setVector(res, v.AddScalar(k)), nil
			default:
				return setVector(res, v.SubScalar(k)), nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %s with %d vector(s) and %d matrix(es)", ErrBadOperands, doc.Op, nv, nm)
}

func dot[T matrix.Number](res *Result, a, b *matrix.Vector[T]) (*Result, error) {
	d, err := a.Dot(b)
	if err != nil {
		return nil, err
	}
	res.Scalar = d
	res.text = fmt.Sprint(d)

	return res, nil
}

func setVector[T matrix.Number](res *Result, v *matrix.Vector[T]) *Result {
	res.Vector = v.Values()
	res.Start = v.StartIndex()
	res.text = v.String()

	return res
}

func setMatrix[T matrix.Number](res *Result, m *matrix.Matrix[T]) *Result {
	rows := make([][]T, m.Size())
	for i, full := range m.Dense() {
		rows[i] = full[i:]
	}
	res.Matrix = rows
	res.text = m.String()

	return res
}

func (r *Result) setEqual(eq bool) *Result {
	r.Equal = &eq
	r.text = fmt.Sprint(eq)

	return r
}
