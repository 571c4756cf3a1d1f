// SPDX-License-Identifier: MIT

package adaptation_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma"
	"github.com/katalvlaran/chroma/adaptation"
	"github.com/katalvlaran/chroma/dataset"
	"github.com/katalvlaran/chroma/matrix"
	"github.com/katalvlaran/chroma/ndarray"
)

var (
	whiteA   = [3]float64{1.09846607, 1, 0.3558228}
	whiteD65 = [3]float64{0.95042855, 1, 1.08890037}
)

func TestMatrixVonKries_CAT02(t *testing.T) {
	A, err := adaptation.MatrixVonKries(whiteA, whiteD65, "CAT02")
	require.NoError(t, err)
	got, err := matrix.ToMat3(A)
	require.NoError(t, err)
	want := [3][3]float64{
		{0.868765369409725, -0.1416539340085692, 0.38719610694134854},
		{-0.10300724450244468, 1.0584014243647497, 0.15386461656020872},
		{0.007816740663311908, 0.02678749917620251, 2.960817705968139},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("CAT02 matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrixVonKries_IdentityForSameWhite(t *testing.T) {
	for _, name := range adaptation.Transforms() {
		A, err := adaptation.MatrixVonKries(whiteD65, whiteD65, name)
		require.NoError(t, err, name)
		I, _ := matrix.NewIdentity(3)
		ok, err := matrix.AllClose(A, I, 0, 1e-9)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

func TestMatrixVonKries_CaseInsensitiveAndUnknown(t *testing.T) {
	_, err := adaptation.MatrixVonKries(whiteA, whiteD65, "bradford")
	require.NoError(t, err)

	_, err = adaptation.MatrixVonKries(whiteA, whiteD65, "Hunt")
	require.Error(t, err)
	assert.ErrorIs(t, err, chroma.ErrConfig)
	assert.ErrorIs(t, err, dataset.ErrUnknownName)
	assert.Contains(t, err.Error(), "Bradford")
}

func TestMatrixVonKries_ZeroSourceResponse(t *testing.T) {
	A, err := adaptation.MatrixVonKries([3]float64{0, 0, 0}, whiteD65, "Von Kries")
	require.NoError(t, err)
	v, _ := A.At(0, 0)
	assert.True(t, math.IsNaN(v) || math.IsInf(v, 0))
}

func TestMatrixVonKriesXY(t *testing.T) {
	xyA := [2]float64{whiteA[0] / (whiteA[0] + 1 + whiteA[2]), 1 / (whiteA[0] + 1 + whiteA[2])}
	xyD65 := [2]float64{whiteD65[0] / (whiteD65[0] + 1 + whiteD65[2]), 1 / (whiteD65[0] + 1 + whiteD65[2])}
	byXY, err := adaptation.MatrixVonKriesXY(xyA, xyD65, "CAT02")
	require.NoError(t, err)
	byXYZ, err := adaptation.MatrixVonKries(whiteA, whiteD65, "CAT02")
	require.NoError(t, err)
	ok, err := matrix.AllClose(byXY, byXYZ, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVonKries_Shapes(t *testing.T) {
	XYZ := ndarray.Vector(0.07049534, 0.1008, 0.09558313)
	w, wr := ndarray.Vector(whiteA[:]...), ndarray.Vector(whiteD65[:]...)
	want := []float64{0.08397460937396922, 0.11413219449937839, 0.2862554474035676}

	got, err := adaptation.VonKries(XYZ, w, wr, "CAT02")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got.Shape())
	assert.InDeltaSlice(t, want, got.Values(), 1e-9)

	img := ndarray.Tile(XYZ.Values(), 6)
	img, err = img.Reshape(2, 3, 3)
	require.NoError(t, err)
	got, err = adaptation.VonKries(img, w, wr, "CAT02")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 3}, got.Shape())
	assert.InDeltaSlice(t, want, got.Values()[15:18], 1e-9)

	// Whitepoints given per row.
	ws := ndarray.Tile(whiteA[:], 6)
	got, err = adaptation.VonKries(ndarray.Tile(XYZ.Values(), 6), ws, wr, "CAT02")
	require.NoError(t, err)
	assert.Equal(t, []int{6, 3}, got.Shape())
	assert.InDeltaSlice(t, want, got.Values()[3:6], 1e-9)

	_, err = adaptation.VonKries(ndarray.Tile(XYZ.Values(), 6), ndarray.Tile(whiteA[:], 4), wr, "CAT02")
	assert.ErrorIs(t, err, ndarray.ErrBroadcast)
}

func TestVonKries_EmptyBatch(t *testing.T) {
	empty, err := ndarray.Zeros(0, 3)
	require.NoError(t, err)
	w, wr := ndarray.Vector(whiteA[:]...), ndarray.Vector(whiteD65[:]...)

	got, err := adaptation.VonKries(empty, w, wr, "CAT02")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, got.Shape())

	got, err = adaptation.VonKries(empty, empty, wr, "Bradford")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, got.Shape())

	_, err = adaptation.VonKries(empty, ndarray.Tile(whiteA[:], 2), wr, "CAT02")
	assert.ErrorIs(t, err, ndarray.ErrBroadcast)
}
