// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/matrix"
	"github.com/katalvlaran/chroma/ndarray"
)

func sum(src []float64) float64 {
	s := 0.0
	for _, v := range src {
		s += v
	}

	return s
}

func TestMapKeepsShape(t *testing.T) {
	for _, shape := range [][]int{{3}, {2, 3}, {2, 1, 3}} {
		a, err := ndarray.Full(2, shape...)
		require.NoError(t, err)
		out := ndarray.Map(a, func(v float64) float64 { return v * v })
		assert.Equal(t, shape, out.Shape())
		assert.Equal(t, 4.0, out.Data()[0])
	}
}

func TestMap2Broadcast(t *testing.T) {
	a := ndarray.Vector(1, 2, 3)
	out, err := ndarray.Map2(a, ndarray.Scalar(10), func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 13}, out.Values())
	assert.Equal(t, []int{3}, out.Shape())

	out, err = ndarray.Map2(ndarray.Scalar(1), a, func(x, y float64) float64 { return x - y })
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, -2}, out.Values())

	_, err = ndarray.Map2(a, ndarray.Vector(1, 2), func(x, y float64) float64 { return x })
	assert.ErrorIs(t, err, ndarray.ErrBroadcast)
}

func TestMapVecShapes(t *testing.T) {
	a, err := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, 2, 1, 3)
	require.NoError(t, err)
	out, err := ndarray.MapVec(a, 3, 2, func(dst, src []float64) {
		dst[0], dst[1] = src[0], src[2]
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 2}, out.Shape())
	assert.Equal(t, []float64{1, 3, 4, 6}, out.Values())

	_, err = ndarray.MapVec(a, 4, 2, func(dst, src []float64) {})
	assert.ErrorIs(t, err, ndarray.ErrChannels)
	_, err = ndarray.MapVec(ndarray.Scalar(1), 3, 3, func(dst, src []float64) {})
	assert.ErrorIs(t, err, ndarray.ErrChannels)
}

func TestMapVec2Broadcast(t *testing.T) {
	batch := ndarray.Tile([]float64{1, 2, 3}, 4)
	single := ndarray.Vector(1, 1, 1)
	add := func(dst, x, y []float64) {
		for i := range dst {
			dst[i] = x[i] + y[i]
		}
	}

	out, err := ndarray.MapVec2(batch, single, 3, 3, 3, add)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, out.Shape())
	assert.Equal(t, []float64{2, 3, 4}, out.Values()[9:])

	out, err = ndarray.MapVec2(single, batch, 3, 3, 3, add)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, out.Shape())

	_, err = ndarray.MapVec2(batch, ndarray.Tile([]float64{1, 1, 1}, 3), 3, 3, 3, add)
	assert.ErrorIs(t, err, ndarray.ErrBroadcast)
}

func TestReduceDropsChannel(t *testing.T) {
	a, err := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	out, err := ndarray.Reduce(a, 3, sum)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, out.Shape())
	assert.Equal(t, []float64{6, 15}, out.Values())

	one, err := ndarray.Reduce(ndarray.Vector(1, 2, 3), 3, sum)
	require.NoError(t, err)
	assert.Equal(t, 0, one.Ndim())

	d, err := ndarray.Reduce2(a, ndarray.Vector(1, 1, 1), 3, 3, func(x, y []float64) float64 {
		return sum(x) - sum(y)
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 12}, d.Values())
}

func TestApply(t *testing.T) {
	M := matrix.Mat3([3][3]float64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}})
	a, err := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, 2, 1, 3)
	require.NoError(t, err)
	out, err := ndarray.Apply(a, M)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, out.Shape())
	assert.Equal(t, []float64{3, 2, 1, 6, 5, 4}, out.Values())

	nan := ndarray.Vector(math.NaN(), 0, 0)
	out, err = ndarray.Apply(nan, M)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out.Data()[2]))

	_, err = ndarray.Apply(ndarray.Vector(1, 2), M)
	assert.ErrorIs(t, err, ndarray.ErrChannels)
	_, err = ndarray.Apply(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestStackChannelRoundTrip(t *testing.T) {
	x := ndarray.Vector(1, 2)
	y := ndarray.Vector(3, 4)
	s, err := ndarray.Stack(x, y, ndarray.Scalar(9))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, s.Shape())
	assert.Equal(t, []float64{1, 3, 9, 2, 4, 9}, s.Values())

	c, err := ndarray.Channel(s, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, y.Values(), c.Values())

	_, err = ndarray.Channel(s, 3, 3)
	assert.ErrorIs(t, err, ndarray.ErrIndex)
	_, err = ndarray.Stack()
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
	_, err = ndarray.Stack(x, ndarray.Vector(1, 2, 3))
	assert.ErrorIs(t, err, ndarray.ErrBroadcast)
}

func TestEmptyBatchBroadcast(t *testing.T) {
	empty, err := ndarray.Zeros(0, 3)
	require.NoError(t, err)
	white := ndarray.Vector(0.95047, 1, 1.08883)
	pair := func(dst, x, y []float64) { dst[0] = x[0] * y[0] }
	dot := func(x, y []float64) float64 { return x[0] * y[0] }

	out, err := ndarray.MapVec2(empty, white, 3, 3, 1, pair)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, out.Shape())
	assert.Zero(t, out.Size())

	out, err = ndarray.MapVec2(white, empty, 3, 3, 2, pair)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, out.Shape())

	out, err = ndarray.Reduce2(empty, white, 3, 3, dot)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, out.Shape())

	out, err = ndarray.Map2(empty, ndarray.Scalar(2), func(x, y float64) float64 { return x * y })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, out.Shape())

	out, err = ndarray.Map2(ndarray.Scalar(2), empty, func(x, y float64) float64 { return x * y })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, out.Shape())

	out, err = ndarray.Stack(ndarray.Scalar(1), ndarray.Vector())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, out.Shape())

	// An empty batch cannot broadcast against more than one vector.
	_, err = ndarray.MapVec2(empty, ndarray.Tile([]float64{1, 1, 1}, 2), 3, 3, 1, pair)
	assert.ErrorIs(t, err, ndarray.ErrBroadcast)
	_, err = ndarray.Map2(ndarray.Vector(), ndarray.Vector(1, 2), func(x, y float64) float64 { return x })
	assert.ErrorIs(t, err, ndarray.ErrBroadcast)
	_, err = ndarray.Stack(ndarray.Vector(1, 2), ndarray.Vector())
	assert.ErrorIs(t, err, ndarray.ErrBroadcast)
}
