// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chroma/matrix"
)

// Array is an N-D float64 array stored in row-major (C) order.
// A rank-0 array (empty shape) holds exactly one value.
type Array struct {
	shape []int
	data  []float64
}

// sizeOf returns the element count of shape, or -1 for a negative dimension.
func sizeOf(shape []int) int {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return -1
		}
		n *= d
	}

	return n
}

// New returns an array of the given shape holding a copy of data.
//
// Errors: ErrBadShape when a dimension is negative or len(data) does not
// equal the product of shape.
func New(data []float64, shape ...int) (*Array, error) {
	n := sizeOf(shape)
	if n < 0 || n != len(data) {
		return nil, ndarrayErrorf(opNew, fmt.Errorf("shape %v for %d values: %w", shape, len(data), ErrBadShape))
	}
	out := &Array{shape: append([]int(nil), shape...), data: make([]float64, n)}
	copy(out.data, data)

	return out, nil
}

// wrap builds an array that takes ownership of data. Internal only.
func wrap(data []float64, shape ...int) *Array {
	return &Array{shape: append([]int(nil), shape...), data: data}
}

// Scalar returns a rank-0 array.
func Scalar(v float64) *Array {
	return &Array{shape: []int{}, data: []float64{v}}
}

// Vector returns a rank-1 array holding a copy of vs.
func Vector(vs ...float64) *Array {
	return wrap(append([]float64(nil), vs...), len(vs))
}

// Zeros returns a zero-filled array.
//
// Errors: ErrBadShape for a negative dimension.
func Zeros(shape ...int) (*Array, error) {
	n := sizeOf(shape)
	if n < 0 {
		return nil, ndarrayErrorf(opNew, ErrBadShape)
	}

	return wrap(make([]float64, n), shape...), nil
}

// Full returns an array of the given shape filled with v.
//
// Errors: ErrBadShape for a negative dimension.
func Full(v float64, shape ...int) (*Array, error) {
	a, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = v
	}

	return a, nil
}

// Tile repeats vec n times along a new leading axis: shape (n, len(vec)).
func Tile(vec []float64, n int) *Array {
	if n < 0 {
		n = 0
	}
	k := len(vec)
	data := make([]float64, n*k)
	for i := 0; i < n; i++ {
		copy(data[i*k:(i+1)*k], vec)
	}

	return wrap(data, n, k)
}

// FromRows builds an (N, k) array from a rectangular slice of rows.
//
// Errors: ErrBadShape for ragged rows.
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return wrap([]float64{}, 0, 0), nil
	}
	k := len(rows[0])
	data := make([]float64, 0, len(rows)*k)
	for _, r := range rows {
		if len(r) != k {
			return nil, ndarrayErrorf(opNew, ErrBadShape)
		}
		data = append(data, r...)
	}

	return wrap(data, len(rows), k), nil
}

// FromDense converts an N×k matrix back to an array whose leading shape is
// leading. The product of leading must equal N.
//
// Errors: ErrBadShape.
func FromDense(d *matrix.Dense, leading []int) (*Array, error) {
	r, c := d.Shape()
	if sizeOf(leading) != r {
		return nil, ndarrayErrorf(opFrom, ErrBadShape)
	}
	shape := append(append([]int(nil), leading...), c)
	data := make([]float64, r*c)
	copy(data, d.RawData())

	return wrap(data, shape...), nil
}

// Shape returns a copy of the dimensions.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Ndim returns the rank.
func (a *Array) Ndim() int { return len(a.shape) }

// Size returns the number of elements.
func (a *Array) Size() int { return len(a.data) }

// Data returns the backing buffer (no copy). Writes are visible to a.
func (a *Array) Data() []float64 { return a.data }

// Values returns a copy of the flat data.
func (a *Array) Values() []float64 { return append([]float64(nil), a.data...) }

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return wrap(a.Values(), a.shape...)
}

// Channels returns the trailing dimension, or 1 for a rank-0 array.
func (a *Array) Channels() int {
	if len(a.shape) == 0 {
		return 1
	}

	return a.shape[len(a.shape)-1]
}

// Leading returns the shape without its trailing dimension.
func (a *Array) Leading() []int {
	if len(a.shape) == 0 {
		return []int{}
	}

	return append([]int(nil), a.shape[:len(a.shape)-1]...)
}

// Reshape returns a copy with a new shape of the same size. One dimension
// may be -1 and is inferred.
//
// Errors: ErrBadShape.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	shape = append([]int(nil), shape...)
	infer, known := -1, 1
	for i, d := range shape {
		switch {
		case d == -1 && infer < 0:
			infer = i
		case d < 0:
			return nil, ndarrayErrorf(opReshape, ErrBadShape)
		default:
			known *= d
		}
	}
	if infer >= 0 {
		if known == 0 || len(a.data)%known != 0 {
			return nil, ndarrayErrorf(opReshape, ErrBadShape)
		}
		shape[infer] = len(a.data) / known
	}
	if sizeOf(shape) != len(a.data) {
		return nil, ndarrayErrorf(opReshape, ErrBadShape)
	}

	return wrap(a.Values(), shape...), nil
}

// At returns the element at the multi-index idx.
//
// Errors: ErrIndex.
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, ndarrayErrorf(opAt, ErrIndex)
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			return 0, ndarrayErrorf(opAt, ErrIndex)
		}
		off = off*a.shape[i] + v
	}

	return a.data[off], nil
}

// Item returns the single value of a size-1 array.
//
// Errors: ErrBadShape when Size() != 1.
func (a *Array) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, ndarrayErrorf(opItem, ErrBadShape)
	}

	return a.data[0], nil
}

// Vec returns row i of the (-1, k) view as a copy.
//
// Errors: ErrChannels, ErrIndex.
func (a *Array) Vec(i, k int) ([]float64, error) {
	n, err := a.rows(k)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= n {
		return nil, ErrIndex
	}

	return append([]float64(nil), a.data[i*k:(i+1)*k]...), nil
}

// rows validates the trailing dimension and returns N for the (-1, k) view.
func (a *Array) rows(k int) (int, error) {
	if k <= 0 || len(a.shape) == 0 || a.shape[len(a.shape)-1] != k {
		return 0, fmt.Errorf("want trailing %d, got shape %v: %w", k, a.shape, ErrChannels)
	}

	return len(a.data) / k, nil
}

// AsRows views the array as an N×k matrix sharing storage with a.
//
// Errors: ErrChannels when the trailing dimension is not k, ErrBadShape for
// an empty array.
func (a *Array) AsRows(k int) (*matrix.Dense, error) {
	n, err := a.rows(k)
	if err != nil {
		return nil, ndarrayErrorf(opRows, err)
	}
	d, err := matrix.WrapDense(n, k, a.data)
	if err != nil {
		return nil, ndarrayErrorf(opRows, fmt.Errorf("%v: %w", err, ErrBadShape))
	}

	return d, nil
}

// String renders shape and flat data, e.g. "(2, 3)[1 2 3 4 5 6]".
func (a *Array) String() string {
	dims := make([]string, len(a.shape))
	for i, d := range a.shape {
		dims[i] = fmt.Sprint(d)
	}

	return fmt.Sprintf("(%s)%v", strings.Join(dims, ", "), a.data)
}
