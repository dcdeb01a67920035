// SPDX-License-Identifier: MIT

// Package utmatrix is an in-memory library of generic, bounds-checked
// containers: a Vector with a configurable first index and an
// upper-triangular Matrix built from shrinking Vector rows.
//
// Under the hood, everything is organized under:
//
//	matrix/           — Vector[T], Matrix[T], errors, options
//	internal/config/  — CLI configuration (viper)
//	internal/fixture/ — YAML operation documents
//	internal/cli/     — cobra command tree
//	cmd/utmatrix/     — CLI entry point
//
// Quick example:
//
//	m, _ := matrix.NewMatrix[int](3)
//	_ = m.Set(0, 2, 7) // upper triangle only
//	_, err := m.At(2, 0) // errors.Is(err, matrix.ErrOutOfRange)
//
//	go get github.com/katalvlaran/utmatrix
package utmatrix
