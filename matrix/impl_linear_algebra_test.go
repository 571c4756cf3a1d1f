// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/chroma/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 3)
	b := MustDense(t, 3, 3)
	RandomFill(t, a, 1337)
	RandomFill(t, b, 4242)

	sum1, err := matrix.Add(a, b)
	require.NoError(t, err)
	sum2, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	assert.Equal(t, sum1.RawData(), sum2.RawData())

	diff, err := matrix.Sub(sum1, b)
	require.NoError(t, err)
	ok, err := matrix.AllClose(diff, a, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_KnownProduct(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 2, 2, 0, 1, 2)
	want := [][]float64{{4, 4}, {10, 8}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareClose(t, want, fast, 0)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, want, slow, 0)

	_, err = matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_PropagatesNaNThroughZero(t *testing.T) {
	a := MustDense(t, 1, 2, 0, 1)
	b := MustDense(t, 2, 1, math.NaN(), 1)
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(MustAt(t, c, 0, 0)))
}

func TestTransposeAndScale(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr, 0)

	tr2, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	assert.Equal(t, tr.RawData(), tr2.RawData())

	s, err := matrix.Scale(m, -2)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, s, 0)
}

func TestMatVec(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	y, err := matrix.MatVec(m, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	y2, err := matrix.MatVec(hide{m}, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, y, y2)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDiag(t *testing.T) {
	d, err := matrix.Diag([]float64{1, 2, 3})
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, d, 0)

	_, err = matrix.Diag(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLU_ReconstructsPermutedInput(t *testing.T) {
	t.Parallel()

	// Leading zero forces a row swap.
	a := MustDense(t, 3, 3,
		0, 2, 1,
		1, 1, 1,
		4, 3, 2,
	)
	L, U, perm, err := matrix.LU(a)
	require.NoError(t, err)

	lu, err := matrix.Mul(L, U)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, MustAt(t, a, perm[i], j), MustAt(t, lu, i, j), 1e-12)
		}
		assert.Equal(t, 1.0, MustAt(t, L, i, i))
	}
	assert.Equal(t, 2, perm[0], "largest |a[i,0]| must be pivoted first")
}

func TestInverse_RoundTrip(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 3,
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	ok, err := matrix.AllClose(prod, I, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	// Known Bradford inverse.
	CompareClose(t, [][]float64{
		{0.9869929, -0.1470543, 0.1599627},
		{0.4323053, 0.5183603, 0.0492912},
		{-0.0085287, 0.0400428, 0.9684867},
	}, inv, 1e-6)
}

func TestInverse_NeedsPivoting(t *testing.T) {
	a := MustDense(t, 2, 2, 0, 1, 1, 0)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0, 1}, {1, 0}}, inv, 0)
}

func TestInverse_Errors(t *testing.T) {
	_, err := matrix.Inverse(MustDense(t, 2, 2, 1, 2, 2, 4))
	assert.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Inverse(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestChainAndApplyRows(t *testing.T) {
	a := matrix.Mat3([3][3]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}})
	b := matrix.Mat3([3][3]float64{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}})
	c, err := matrix.Chain(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{2, 2, 0}, {0, 3, 0}, {0, 0, 4}}, c, 0)

	X := MustDense(t, 2, 3, 1, 1, 1, 1, 2, 3)
	Y, err := matrix.ApplyRows(X, c)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{4, 3, 4}, {6, 6, 12}}, Y, 0)

	_, err = matrix.Chain()
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m3, err := matrix.ToMat3(c)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{2, 2, 0}, m3[0])
	_, err = matrix.ToMat3(X)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAllClose_NaNNeverClose(t *testing.T) {
	a := MustDense(t, 1, 1, math.NaN())
	ok, err := matrix.AllClose(a, a, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}
