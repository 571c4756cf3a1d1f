// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma"
	"github.com/katalvlaran/chroma/ndarray"
)

func TestNew_CopiesAndValidates(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	a, err := ndarray.New(src, 2, 3)
	require.NoError(t, err)
	src[0] = 99
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, 1.0, a.Data()[0])
	assert.Equal(t, 6, a.Size())
	assert.Equal(t, 2, a.Ndim())

	_, err = ndarray.New(src, 4, 2)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
	assert.ErrorIs(t, err, chroma.ErrShape)

	_, err = ndarray.New(nil, -1)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestScalarVectorTile(t *testing.T) {
	s := ndarray.Scalar(0.5)
	assert.Equal(t, 0, s.Ndim())
	assert.Equal(t, 1, s.Channels())
	v, err := s.Item()
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	vec := ndarray.Vector(1, 2, 3)
	assert.Equal(t, []int{3}, vec.Shape())
	assert.Equal(t, []int{}, vec.Leading())

	tl := ndarray.Tile([]float64{1, 2, 3}, 2)
	assert.Equal(t, []int{2, 3}, tl.Shape())
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, tl.Values())

	_, err = tl.Item()
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestZerosFullFromRows(t *testing.T) {
	z, err := ndarray.Zeros(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Values())

	f, err := ndarray.Full(7, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7, 7}, f.Values())

	_, err = ndarray.Zeros(-2)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)

	r, err := ndarray.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, r.Shape())

	_, err = ndarray.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestReshape(t *testing.T) {
	a, err := ndarray.New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, 12)
	require.NoError(t, err)

	b, err := a.Reshape(2, -1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 3}, b.Shape())

	x, err := b.At(1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, x)

	_, err = a.Reshape(5, -1)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
	_, err = a.Reshape(-1, -1)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
	_, err = a.Reshape(3, 3)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestAtAndVec(t *testing.T) {
	a, err := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, ndarray.ErrIndex)
	_, err = a.At(0)
	assert.ErrorIs(t, err, ndarray.ErrIndex)

	v, err := a.Vec(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, v)
	v[0] = 0
	assert.Equal(t, 4.0, a.Data()[3])

	_, err = a.Vec(0, 2)
	assert.ErrorIs(t, err, ndarray.ErrChannels)
	_, err = a.Vec(5, 3)
	assert.ErrorIs(t, err, ndarray.ErrIndex)
}

func TestAsRowsSharesStorage(t *testing.T) {
	a, err := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, 1, 2, 3)
	require.NoError(t, err)
	d, err := a.AsRows(3)
	require.NoError(t, err)
	r, c := d.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	require.NoError(t, d.Set(0, 0, 10))
	assert.Equal(t, 10.0, a.Data()[0])

	back, err := ndarray.FromDense(d, a.Leading())
	require.NoError(t, err)
	assert.Equal(t, a.Shape(), back.Shape())

	_, err = ndarray.FromDense(d, []int{3})
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestString(t *testing.T) {
	a, err := ndarray.New([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "(2, 2)[1 2 3 4]", a.String())
	assert.Equal(t, "()[5]", ndarray.Scalar(5).String())
}
