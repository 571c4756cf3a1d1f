// SPDX-License-Identifier: MIT

package spectral_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma"
	"github.com/katalvlaran/chroma/spectral"
)

func sampleSPD() *spectral.SPD {
	return spectral.NewSPD("sample", map[float64]float64{
		510: 49.67, 520: 69.59, 530: 81.73, 540: 88.19,
	})
}

func TestSPD_ExactSampleIsVerbatim(t *testing.T) {
	s := sampleSPD()
	v, err := s.Evaluate(520)
	require.NoError(t, err)
	assert.Equal(t, []float64{69.59}, v)

	got, err := s.Get(520)
	require.NoError(t, err)
	assert.Equal(t, 69.59, got[0])
}

func TestSPD_Queries(t *testing.T) {
	s := sampleSPD()
	assert.Equal(t, []float64{510, 520, 530, 540}, s.Wavelengths())
	assert.Equal(t, []float64{49.67, 69.59, 81.73, 88.19}, s.Values())
	assert.Equal(t, [2]float64{530, 81.73}, s.Items()[2])
	assert.True(t, s.Shape().Equal(spectral.MustSpectralShape(510, 540, 10)))
	assert.True(t, s.IsUniform())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, "sample", s.Name())

	irr := spectral.NewSPD("irr", map[float64]float64{500: 1, 505: 2, 520: 3})
	assert.False(t, irr.IsUniform())
	assert.Equal(t, 5.0, irr.Shape().Step())

	assert.Equal(t, 0, spectral.NewSPD("empty", nil).Shape().Len())
}

func TestSPD_IndexAsymmetry(t *testing.T) {
	s := sampleSPD()

	_, err := s.Get(525)
	assert.ErrorIs(t, err, spectral.ErrMissingWavelength)
	assert.ErrorIs(t, err, chroma.ErrKeyNotFound)
	_, err = s.At(525)
	assert.ErrorIs(t, err, chroma.ErrKeyNotFound)

	assert.Equal(t, []float64{69.59, -1}, s.GetOr(-1, 520, 525))
	assert.True(t, s.Contains(510, 540))
	assert.False(t, s.Contains(510, 541))

	assert.Equal(t, []float64{69.59, 81.73}, s.Slice(1, 3))
	assert.Equal(t, []float64{88.19}, s.Slice(3, 99))
	assert.Empty(t, s.Slice(3, 1))
}

func TestSPD_SetRepeatsCyclically(t *testing.T) {
	s := sampleSPD()
	require.NoError(t, s.Set([]float64{600, 610, 620}, []float64{1, 2}))
	got, err := s.Get(600, 610, 620)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1}, got)

	assert.ErrorIs(t, s.Set([]float64{700}, nil), spectral.ErrLengthMismatch)

	s.SetScalar(0, 510, 520)
	got, err = s.Get(510, 520)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, got)

	require.NoError(t, s.SetSlice(0, 2, []float64{9}))
	assert.Equal(t, []float64{9, 9}, s.Slice(0, 2))

	require.NoError(t, s.SetShape(spectral.MustSpectralShape(800, 820, 10), []float64{5}))
	assert.True(t, s.Contains(800, 810, 820))
}

func TestSPD_SetInvalidatesEvaluator(t *testing.T) {
	s := spectral.NewSPD("lin", map[float64]float64{0: 0, 10: 10})
	v, err := s.Evaluate(5)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v[0], 1e-12)

	require.NoError(t, s.Set([]float64{10}, []float64{20}))
	v, err = s.Evaluate(5)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, v[0], 1e-12)
}

func TestSPD_EvaluateSelection(t *testing.T) {
	uniform, err := spectral.NewSPDFromSeries("u", spragueGrid(), spragueData)
	require.NoError(t, err)
	v, err := uniform.Evaluate(345)
	require.NoError(t, err)
	assert.InDelta(t, 11.060226525119615, v[0], 1e-9)

	forced, err := spectral.NewSPDFromSeries("f", spragueGrid(), spragueData,
		spectral.WithInterpolator(spectral.KindLinear))
	require.NoError(t, err)
	v, err = forced.Evaluate(345)
	require.NoError(t, err)
	assert.InDelta(t, (9.37+12.32)/2, v[0], 1e-12)

	irr := spectral.NewSPD("irr", map[float64]float64{1: 1, 2: 3, 4: 2, 7: 5, 8: 4, 9: 1},
		spectral.WithInterpolator(spectral.KindSprague))
	_, err = irr.Evaluate(3)
	assert.ErrorIs(t, err, spectral.ErrNotUniform)

	_, err = spectral.NewSPD("empty", nil).Evaluate(500)
	assert.ErrorIs(t, err, spectral.ErrInsufficientSamples)

	_, err = spectral.NewSPDFromSeries("bad", []float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, spectral.ErrLengthMismatch)
}

func TestSPD_AlignDoesNotMutate(t *testing.T) {
	s := sampleSPD()
	before := s.Values()

	a, err := s.Align(spectral.MustSpectralShape(500, 550, 5))
	require.NoError(t, err)
	assert.Equal(t, before, s.Values())
	assert.Equal(t, 11, a.Len())

	got, err := a.Get(500, 520, 550)
	require.NoError(t, err)
	assert.Equal(t, []float64{49.67, 69.59, 88.19}, got)

	lin, err := spectral.NewSPD("lin", map[float64]float64{510: 1, 520: 2, 530: 3},
		spectral.WithExtrapolatorMethod(spectral.MethodLinear)).Align(spectral.MustSpectralShape(500, 540, 10))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]float64{0, 1, 2, 3, 4}, lin.Values(), cmpopts.EquateApprox(0, 1e-12)))
}

func TestSPD_InterpolateExtrapolateTrimZeros(t *testing.T) {
	s := sampleSPD()

	in, err := s.Interpolate(spectral.MustSpectralShape(500, 550, 5))
	require.NoError(t, err)
	assert.Equal(t, []float64{510, 515, 520, 525, 530, 535, 540}, in.Wavelengths())

	ex, err := s.Extrapolate(spectral.MustSpectralShape(500, 550, 5))
	require.NoError(t, err)
	assert.Equal(t, []float64{500, 505, 510, 520, 530, 540, 545, 550}, ex.Wavelengths())
	got, err := ex.Get(500, 550)
	require.NoError(t, err)
	assert.Equal(t, []float64{49.67, 88.19}, got)

	tr := s.Trim(spectral.MustSpectralShape(515, 535, 1))
	assert.Equal(t, []float64{520, 530}, tr.Wavelengths())

	z := s.Zeros(spectral.MustSpectralShape(500, 520, 10))
	assert.Equal(t, []float64{0, 49.67, 69.59}, z.Values())
	assert.Equal(t, 4, s.Len())
}

func TestSPD_Arithmetic(t *testing.T) {
	a := spectral.NewSPD("a", map[float64]float64{500: 1, 510: 2})
	b := spectral.NewSPD("b", map[float64]float64{500: 4, 510: 8})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 10}, sum.Values())
	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, diff.Values())
	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 16}, prod.Values())
	quot, err := b.Div(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4}, quot.Values())

	_, err = a.Add(spectral.NewSPD("c", map[float64]float64{500: 1}))
	assert.ErrorIs(t, err, spectral.ErrWavelengthMismatch)
	assert.ErrorIs(t, err, chroma.ErrShape)

	assert.Equal(t, []float64{2, 3}, a.AddScalar(1).Values())
	assert.Equal(t, []float64{0, 1}, a.SubScalar(1).Values())
	assert.Equal(t, []float64{3, 6}, a.MulScalar(3).Values())
	assert.Equal(t, []float64{0.5, 1}, a.DivScalar(2).Values())
	assert.Equal(t, []float64{50, 100}, a.Normalise(100).Values())

	zero := spectral.NewSPD("z", map[float64]float64{500: 0})
	assert.True(t, math.IsNaN(zero.Normalise(1).Values()[0]))
}

func TestSPD_CloneIsIndependent(t *testing.T) {
	s := sampleSPD()
	c := s.Clone()
	c.SetScalar(0, 510)
	got, err := s.Get(510)
	require.NoError(t, err)
	assert.Equal(t, 49.67, got[0])
}
