// SPDX-License-Identifier: MIT

package coordinates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/coordinates"
	"github.com/katalvlaran/chroma/ndarray"
)

func TestSpherical(t *testing.T) {
	s, err := coordinates.CartesianToSpherical(ndarray.Vector(3, 1, 6))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{6.78232998, 1.08574654, 0.32175055}, s.Values(), 1e-8)

	c, err := coordinates.SphericalToCartesian(s)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 1, 6}, c.Values(), 1e-12)
}

func TestCylindrical(t *testing.T) {
	c, err := coordinates.CartesianToCylindrical(ndarray.Vector(3, 1, 6))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{6, 0.32175055, 3.16227766}, c.Values(), 1e-8)

	back, err := coordinates.CylindricalToCartesian(c)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 1, 6}, back.Values(), 1e-12)
}

func TestShapesAndErrors(t *testing.T) {
	a := ndarray.Tile([]float64{3, 1, 6}, 6)
	a, err := a.Reshape(2, 3, 3)
	require.NoError(t, err)
	for _, f := range []func(*ndarray.Array) (*ndarray.Array, error){
		coordinates.CartesianToSpherical, coordinates.SphericalToCartesian,
		coordinates.CartesianToCylindrical, coordinates.CylindricalToCartesian,
	} {
		out, err := f(a)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 3}, out.Shape())

		_, err = f(ndarray.Vector(1, 2))
		assert.ErrorIs(t, err, ndarray.ErrChannels)
	}
}
