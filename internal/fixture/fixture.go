// SPDX-License-Identifier: MIT

// Package fixture reads YAML operation documents for the utmatrix CLI and
// evaluates them with the matrix package.
//
// A document names one operation and its operands:
//
//	op: mul
//	type: int
//	operands:
//	  - matrix: [[1, 2, 3], [4, 5], [6]]
//	  - vector: [1, 1, 2]
//
// Matrices are written as their upper-triangular rows (row i holds n-i
// values). Vectors may carry a start index.
package fixture

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported operations.
const (
	OpAdd       = "add"
	OpSub       = "sub"
	OpMul       = "mul"
	OpDot       = "dot"
	OpEqual     = "equal"
	OpScale     = "scale"
	OpAddScalar = "add_scalar"
	OpSubScalar = "sub_scalar"
)

// Element types.
const (
	TypeInt   = "int"
	TypeFloat = "float"
)

var (
	// ErrBadDocument is returned for structurally invalid documents.
	ErrBadDocument = errors.New("fixture: invalid document")

	// ErrBadOperands is returned when the operand kinds or count do not fit the operation.
	ErrBadOperands = errors.New("fixture: operands do not fit operation")
)

// Document is one operation with its operands.
type Document struct {
	Op       string    `yaml:"op"`
	Type     string    `yaml:"type,omitempty"`
	Scalar   yaml.Node `yaml:"scalar,omitempty"`
	Operands []Operand `yaml:"operands"`
}

// Operand is either a vector or a matrix. Values stay as raw nodes until the
// element type is known.
type Operand struct {
	Vector yaml.Node `yaml:"vector,omitempty"`
	Start  int       `yaml:"start,omitempty"`
	Matrix yaml.Node `yaml:"matrix,omitempty"`
}

// IsVector reports whether the operand carries vector values.
func (o Operand) IsVector() bool { return !o.Vector.IsZero() }

// IsMatrix reports whether the operand carries matrix rows.
func (o Operand) IsMatrix() bool { return !o.Matrix.IsZero() }

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks the operation name, the element type and that every
// operand is exactly one of vector or matrix.
func (d *Document) Validate() error {
	switch d.Op {
	case OpAdd, OpSub, OpMul, OpDot, OpEqual, OpScale, OpAddScalar, OpSubScalar:
	default:
		return fmt.Errorf("%w: unknown op %q", ErrBadDocument, d.Op)
	}
	switch d.Type {
	case "":
		d.Type = TypeFloat
	case TypeInt, TypeFloat:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrBadDocument, d.Type)
	}
	for i, o := range d.Operands {
		if o.IsVector() == o.IsMatrix() {
			return fmt.Errorf("%w: operand %d must be a vector or a matrix", ErrBadDocument, i)
		}
	}

	return nil
}
