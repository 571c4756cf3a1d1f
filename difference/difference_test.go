// SPDX-License-Identifier: MIT

package difference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma"
	"github.com/katalvlaran/chroma/difference"
	"github.com/katalvlaran/chroma/ndarray"
)

var (
	lab1 = ndarray.Vector(100, 21.57210357, 272.22819350)
	lab2 = ndarray.Vector(100, 426.67945353, 72.39590835)
	lab3 = ndarray.Vector(50, 426.67945353, 72.39590835)
)

func item(t *testing.T, a *ndarray.Array, err error) float64 {
	t.Helper()
	require.NoError(t, err)
	v, err := a.Item()
	require.NoError(t, err)

	return v
}

func TestKnownValues(t *testing.T) {
	cases := []struct {
		name string
		f    difference.Func
		b    *ndarray.Array
		opts []difference.Option
		want float64
	}{
		{"CIE1976", difference.DeltaECIE1976, lab2, nil, 451.7133019},
		{"CIE1994", difference.DeltaECIE1994, lab2, nil, 83.7792255},
		{"CIE1994/textiles", difference.DeltaECIE1994, lab2, []difference.Option{difference.WithTextiles()}, 88.3355530},
		{"CIE2000", difference.DeltaECIE2000, lab2, nil, 94.0356490},
		{"CIE2000/L50", difference.DeltaECIE2000, lab3, nil, 100.8779470},
		{"CIE2000/L50/textiles", difference.DeltaECIE2000, lab3, []difference.Option{difference.WithTextiles()}, 95.7920535},
		{"CMC", difference.DeltaECMC, lab2, nil, 172.7047712},
		{"CMC/L50", difference.DeltaECMC, lab3, nil, 173.5267598},
		{"CMC/L50/1:1", difference.DeltaECMC, lab3, []difference.Option{difference.WithCMCWeights(1, 1)}, 175.9696888},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.f(lab1, tc.b, tc.opts...)
			assert.InDelta(t, tc.want, item(t, got, err), 1e-7)
		})
	}
}

func TestDeltaE_Dispatch(t *testing.T) {
	got, err := difference.DeltaE(lab1, lab2, "")
	assert.InDelta(t, 172.7047712, item(t, got, err), 1e-7)

	for _, name := range []string{"CIE 1976", "cie1976", " Cie 1976 "} {
		got, err = difference.DeltaE(lab1, lab2, name)
		assert.InDelta(t, 451.7133019, item(t, got, err), 1e-7, name)
	}

	got, err = difference.DeltaE(lab1, lab2, "cie1994", difference.WithTextiles())
	assert.InDelta(t, 88.3355530, item(t, got, err), 1e-7)

	_, err = difference.DeltaE(lab1, lab2, "DIN99")
	require.Error(t, err)
	assert.ErrorIs(t, err, difference.ErrUnknownMethod)
	assert.ErrorIs(t, err, chroma.ErrConfig)
	assert.Contains(t, err.Error(), "CIE 1976, CIE 1994, CIE 2000, CMC")
	assert.Equal(t, []string{"CIE 1976", "CIE 1994", "CIE 2000", "CMC"}, difference.Methods())
}

func TestBroadcastAndShape(t *testing.T) {
	batch, err := ndarray.New([]float64{
		100, 426.67945353, 72.39590835,
		100, 21.57210357, 272.22819350,
		100, 426.67945353, 72.39590835,
		100, 21.57210357, 272.22819350,
	}, 2, 2, 3)
	require.NoError(t, err)

	for _, f := range []difference.Func{difference.DeltaECIE1976, difference.DeltaECIE1994, difference.DeltaECIE2000, difference.DeltaECMC} {
		got, err := f(lab1, batch)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 2}, got.Shape())
		v := got.Values()
		assert.InDelta(t, 0, v[1], 1e-9)
		assert.InDelta(t, v[0], v[2], 1e-12)
	}

	pair, _ := ndarray.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	triple, _ := ndarray.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	_, err = difference.DeltaECIE1976(pair, triple)
	assert.ErrorIs(t, err, ndarray.ErrBroadcast)

	_, err = difference.DeltaECMC(ndarray.Vector(1, 2), lab1)
	assert.ErrorIs(t, err, ndarray.ErrChannels)
}

func TestWithCMCWeights_Panics(t *testing.T) {
	assert.Panics(t, func() { difference.WithCMCWeights(0, 1) })
	assert.Panics(t, func() { difference.WithCMCWeights(1, -1) })
	assert.NotPanics(t, func() { difference.WithCMCWeights(1, 1) })
}

func TestEmptyBatch(t *testing.T) {
	empty, err := ndarray.Zeros(0, 3)
	require.NoError(t, err)
	for _, f := range []difference.Func{difference.DeltaECIE1976, difference.DeltaECIE1994, difference.DeltaECIE2000, difference.DeltaECMC} {
		got, err := f(empty, ndarray.Vector(50, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, []int{0}, got.Shape())

		got, err = f(lab1, empty)
		require.NoError(t, err)
		assert.Zero(t, got.Size())
	}
}
