// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chroma/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense from row-major data or fails the test.
func MustDense(t testing.TB, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	if len(data) == 0 {
		data = make([]float64, r*c)
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomFill fills m with deterministic pseudo-random values in [-1, 1).
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
}

// CompareClose asserts element-wise closeness of m against want.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols())
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, m, i, j), delta, "cell [%d,%d]", i, j)
		}
	}
}
