// SPDX-License-Identifier: MIT

package dataset_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/chroma"
	"github.com/katalvlaran/chroma/dataset"
)

func TestCMFs(t *testing.T) {
	cmfs, err := dataset.CMFs(dataset.DefaultCMFs)
	require.NoError(t, err)
	assert.Equal(t, 41, cmfs.Len())
	assert.True(t, cmfs.IsUniform())
	assert.Equal(t, [3]string{"x_bar", "y_bar", "z_bar"}, cmfs.Labels())

	v, err := cmfs.Get(560)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5945, 0.995, 0.0039}, v)

	alias, err := dataset.CMFs("CIE_2_1931")
	require.NoError(t, err)
	require.NoError(t, alias.Set([]float64{560}, []float64{0, 0, 0}))

	again, err := dataset.CMFs(dataset.DefaultCMFs)
	require.NoError(t, err)
	v, err = again.Get(560)
	require.NoError(t, err)
	assert.Equal(t, 0.995, v[1])

	_, err = dataset.CMFs("CIE 2006")
	assert.ErrorIs(t, err, dataset.ErrUnknownName)
	assert.ErrorIs(t, err, chroma.ErrConfig)
	assert.Equal(t, []string{dataset.DefaultCMFs}, dataset.CMFNames())
}

func TestIlluminantSPD(t *testing.T) {
	d65, err := dataset.IlluminantSPD("d65")
	require.NoError(t, err)
	assert.Equal(t, 107, d65.Len())
	v, err := d65.Get(560, 300, 830)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 0.0341, 60.3125}, v)

	e, err := dataset.IlluminantSPD("E")
	require.NoError(t, err)
	assert.Equal(t, 471, e.Len())
	assert.Equal(t, []float64{100, 100}, e.GetOr(0, 360, 830))

	assert.Equal(t, []string{"D65", "E"}, dataset.IlluminantSPDNames())
	_, err = dataset.IlluminantSPD("F2")
	assert.ErrorIs(t, err, chroma.ErrConfig)
}

func TestIlluminantXY(t *testing.T) {
	xy, err := dataset.IlluminantXY(dataset.DefaultObserver, "d65")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0.3127, 0.329}, xy)

	xy, err = dataset.IlluminantXY("cie_10_1964", "D65")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0.31382, 0.331}, xy)

	e, err := dataset.IlluminantXY("2", "E")
	require.NoError(t, err)
	assert.Equal(t, 1.0/3, e[0])

	all, err := dataset.Illuminants(dataset.DefaultObserver)
	require.NoError(t, err)
	assert.Len(t, all, 12)
	delete(all, "A")
	_, err = dataset.IlluminantXY(dataset.DefaultObserver, "A")
	require.NoError(t, err)

	names, err := dataset.IlluminantNames("10")
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(names))
	assert.Len(t, dataset.Observers(), 2)

	_, err = dataset.IlluminantXY("CIE 2015", "D65")
	assert.ErrorIs(t, err, chroma.ErrConfig)
	_, err = dataset.IlluminantXY(dataset.DefaultObserver, "D93")
	assert.ErrorIs(t, err, chroma.ErrConfig)
	assert.Contains(t, err.Error(), "A, B, C, D50")
}

func TestCAT(t *testing.T) {
	m, err := dataset.CAT("bradford")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.8951, 0.2664, -0.1614}, m[0])

	names := dataset.CATNames()
	assert.Len(t, names, 11)
	assert.True(t, slices.IsSorted(names))
	assert.True(t, slices.Contains(names, dataset.DefaultCAT))

	_, err = dataset.CAT("Hunt")
	assert.ErrorIs(t, err, chroma.ErrConfig)
	assert.Contains(t, err.Error(), "Bianco, Bianco PC, Bradford")
}

func TestRGBColourspace(t *testing.T) {
	cs, err := dataset.RGBColourspace("srgb")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0.64, 0.33}, cs.Primaries[0])
	assert.Equal(t, "D65", cs.Illuminant)
	assert.Equal(t, "sRGB", cs.Encoding)
	assert.False(t, cs.HasMatrix)

	aces, err := dataset.RGBColourspace("AP0")
	require.NoError(t, err)
	assert.True(t, aces.HasMatrix)
	assert.Equal(t, 1.0088251844, aces.RGBToXYZ[2][2])
	assert.True(t, aces.HasInverse)
	assert.Equal(t, 0.9912520182, aces.XYZToRGB[2][2])
	assert.False(t, cs.HasInverse)

	assert.Len(t, dataset.RGBColourspaceNames(), 19)
	_, err = dataset.RGBColourspace("CIE RGB")
	assert.ErrorIs(t, err, dataset.ErrUnknownName)
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := dataset.CAT("CAT02")
			assert.NoError(t, err)
			_, err = dataset.IlluminantXY(dataset.DefaultObserver, dataset.DefaultIlluminant)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
