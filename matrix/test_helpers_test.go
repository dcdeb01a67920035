// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for Vector and Matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// mustVector builds a Vector from values or fails the test.
func mustVector[T matrix.Number](tb testing.TB, values []T, opts ...matrix.Option) *matrix.Vector[T] {
	tb.Helper()
	v, err := matrix.NewVectorFrom(values, opts...)
	require.NoError(tb, err)

	return v
}

// mustMatrix builds an n×n Matrix with every upper cell (i, j) set to f(i, j).
func mustMatrix[T matrix.Number](tb testing.TB, n int, f func(i, j int) T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.NewMatrix[T](n)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			require.NoError(tb, m.Set(i, j, f(i, j)))
		}
	}

	return m
}

// constant returns a cell function yielding c everywhere.
func constant[T matrix.Number](c T) func(i, j int) T {
	return func(int, int) T { return c }
}

// mustAt reads the cell (i, j) or fails the test.
func mustAt[T matrix.Number](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	x, err := m.At(i, j)
	require.NoError(tb, err)

	return x
}
