// SPDX-License-Identifier: MIT

package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma"
	"github.com/katalvlaran/chroma/spectral"
)

// spragueData is a uniform 340..490 nm grid at 10 nm.
var spragueData = []float64{
	9.3700, 12.3200, 12.4600, 9.5100, 5.9200, 4.3300, 4.2900, 3.8800,
	4.5100, 10.9200, 27.5000, 49.6700, 69.5900, 81.7300, 88.1900, 86.0500,
}

func spragueGrid() []float64 {
	x := make([]float64, len(spragueData))
	for i := range x {
		x[i] = 340 + 10*float64(i)
	}

	return x
}

func TestLinear(t *testing.T) {
	li, err := spectral.NewLinear([]float64{0, 1, 3}, []float64{0, 2, 6})
	require.NoError(t, err)

	v, err := li.Evaluate(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)
	v, err = li.Evaluate(2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v, 1e-12)

	_, err = li.Evaluate(3.5)
	assert.ErrorIs(t, err, spectral.ErrOutOfDomain)
	assert.ErrorIs(t, err, chroma.ErrDomain)

	v, err = li.Evaluate(math.NaN())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	single, err := spectral.NewLinear([]float64{5}, []float64{7})
	require.NoError(t, err)
	v, err = single.Evaluate(5)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestNewSamples_Errors(t *testing.T) {
	_, err := spectral.NewLinear([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, spectral.ErrLengthMismatch)
	_, err = spectral.NewLinear(nil, nil)
	assert.ErrorIs(t, err, spectral.ErrInsufficientSamples)
	_, err = spectral.NewLinear([]float64{2, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, spectral.ErrUnsorted)
	_, err = spectral.NewCubicSpline([]float64{1, 2}, []float64{1, 1})
	assert.ErrorIs(t, err, spectral.ErrInsufficientSamples)
	_, err = spectral.NewSprague([]float64{1, 2, 3, 4, 5}, []float64{1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, spectral.ErrInsufficientSamples)
	_, err = spectral.NewSprague([]float64{1, 2, 3, 4, 5, 7}, []float64{1, 1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, spectral.ErrNotUniform)
}

func TestCubicSpline_Natural(t *testing.T) {
	x := []float64{1, 2, 4, 7, 8}
	y := []float64{1, 3, 2, 5, 4}
	cs, err := spectral.NewCubicSpline(x, y)
	require.NoError(t, err)

	want := map[float64]float64{
		1.5: 2.2032043147208125,
		3:   2.7493654822335025,
		5.5: 3.5513959390862944,
		7.5: 4.646573604060913,
	}
	for q, w := range want {
		v, err := cs.Evaluate(q)
		require.NoError(t, err)
		assert.InDelta(t, w, v, 1e-9, "x=%v", q)
	}
	for i := range x {
		v, err := cs.Evaluate(x[i])
		require.NoError(t, err)
		assert.Equal(t, y[i], v)
	}
}

func TestSprague_Reference(t *testing.T) {
	sp, err := spectral.NewSprague(spragueGrid(), spragueData)
	require.NoError(t, err)

	want := map[float64]float64{
		341:   9.720750726076554,
		345:   11.060226525119615,
		415:   3.8036718749999996,
		485:   87.88846516148327,
		489.5: 86.25592081747166,
	}
	for q, w := range want {
		v, err := sp.Evaluate(q)
		require.NoError(t, err)
		assert.InDelta(t, w, v, 1e-9, "x=%v", q)
	}
	v, err := sp.Evaluate(460)
	require.NoError(t, err)
	assert.Equal(t, 69.59, v)

	assert.Len(t, sp.Extended(), len(spragueData)+4)
}

func TestSprague_ReproducesLinearData(t *testing.T) {
	x := []float64{0, 5, 10, 15, 20, 25, 30}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3*v + 2
	}
	sp, err := spectral.NewSprague(x, y)
	require.NoError(t, err)
	for _, q := range []float64{0.5, 7.25, 18, 29.9} {
		v, err := sp.Evaluate(q)
		require.NoError(t, err)
		assert.InDelta(t, 3*q+2, v, 1e-9)
	}
	ext := sp.Extended()
	assert.InDelta(t, 3*(-10.0)+2, ext[0], 1e-9)
	assert.InDelta(t, 3*40.0+2, ext[len(ext)-1], 1e-9)
}

func TestNull(t *testing.T) {
	nu, err := spectral.NewNull([]float64{1, 2, 3}, []float64{4, 5, 6}, 0.01, -1)
	require.NoError(t, err)
	v, err := nu.Evaluate(2.005)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	v, err = nu.Evaluate(2.5)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)
	_, err = nu.Evaluate(0)
	assert.ErrorIs(t, err, spectral.ErrOutOfDomain)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, spectral.KindSprague, spectral.SelectKind(6, true))
	assert.Equal(t, spectral.KindCubicSpline, spectral.SelectKind(5, true))
	assert.Equal(t, spectral.KindCubicSpline, spectral.SelectKind(10, false))
	assert.Equal(t, spectral.KindLinear, spectral.SelectKind(2, true))

	k, err := spectral.ParseKind(" Cubic Spline ")
	require.NoError(t, err)
	assert.Equal(t, spectral.KindCubicSpline, k)
	_, err = spectral.ParseKind("akima")
	assert.ErrorIs(t, err, chroma.ErrConfig)
	assert.Contains(t, err.Error(), "auto, cubic spline, linear, null, sprague")

	in, err := spectral.NewInterpolator(spectral.KindAuto, spragueGrid(), spragueData, 0)
	require.NoError(t, err)
	assert.IsType(t, &spectral.Sprague{}, in)
	lo, hi := in.Domain()
	assert.Equal(t, 340.0, lo)
	assert.Equal(t, 490.0, hi)
	assert.Equal(t, "sprague", spectral.KindSprague.String())
}
