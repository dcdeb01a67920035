// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for Vector and Matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/utmatrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkF float64
	sinkB bool
)

// fillRand fills the upper triangle of m from a seeded source.
func fillRand(b *testing.B, m *matrix.Matrix[float64], seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err := m.Set(i, j, rng.Float64()); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// newRand allocates an n×n matrix and fills it.
func newRand(b *testing.B, n int, seed int64) *matrix.Matrix[float64] {
	b.Helper()
	m, err := matrix.NewMatrix[float64](n)
	if err != nil {
		b.Fatal(err)
	}
	fillRand(b, m, seed)

	return m
}

func BenchmarkMatrixAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := newRand(b, n, 1337)
			B := newRand(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Add(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatrixMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := newRand(b, n, 11)
			B := newRand(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Mul(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatrixCloneEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := newRand(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = A.Clone().Equal(A)
			}
		})
	}
}

func BenchmarkVectorDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{1 << 10, 1 << 14} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(99))
			x := make([]float64, n)
			for i := range x {
				x[i] = rng.Float64()
			}
			v, err := matrix.NewVectorFrom(x)
			if err != nil {
				b.Fatal(err)
			}
			w := v.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := v.Dot(w)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
