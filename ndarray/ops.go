// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/chroma/matrix"
)

// Map applies f element-wise and returns an array of the same shape.
func Map(a *Array, f func(float64) float64) *Array {
	out := make([]float64, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}

	return wrap(out, a.shape...)
}

// Map2 applies f element-wise over two arrays. Either operand may hold a
// single element, which is broadcast; otherwise both must have the same
// size and the result takes a's shape.
//
// Errors: ErrBroadcast.
func Map2(a, b *Array, f func(x, y float64) float64) (*Array, error) {
	na, nb := len(a.data), len(b.data)
	shape := a.shape
	switch {
	case na == nb:
	case nb == 1:
	case na == 1:
		shape = b.shape
	default:
		return nil, ndarrayErrorf(opMap2, fmt.Errorf("sizes %d and %d: %w", na, nb, ErrBroadcast))
	}
	n := broadcastLen(na, nb)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = f(a.data[i%na], b.data[i%nb])
	}

	return wrap(out, shape...), nil
}

// broadcastLen is the length of a resolved broadcast. An empty operand
// always yields an empty result, even against a single broadcast value.
func broadcastLen(na, nb int) int {
	if na == 0 || nb == 0 {
		return 0
	}

	return max(na, nb)
}

// MapVec applies f to every trailing k-vector and returns an array of shape
// (..., kOut). dst has length kOut and starts zeroed.
//
// Errors: ErrChannels.
func MapVec(a *Array, k, kOut int, f func(dst, src []float64)) (*Array, error) {
	n, err := a.rows(k)
	if err != nil {
		return nil, ndarrayErrorf(opMapVec, err)
	}
	out := make([]float64, n*kOut)
	for i := 0; i < n; i++ {
		f(out[i*kOut:(i+1)*kOut], a.data[i*k:(i+1)*k])
	}

	return wrap(out, append(a.Leading(), kOut)...), nil
}

// pairRows resolves the broadcast of two (-1, k) views.
func pairRows(a, b *Array, ka, kb int) (na, nb int, leading []int, err error) {
	if na, err = a.rows(ka); err != nil {
		return 0, 0, nil, err
	}
	if nb, err = b.rows(kb); err != nil {
		return 0, 0, nil, err
	}
	switch {
	case na == nb:
		leading = a.Leading()
	case nb == 1:
		leading = a.Leading()
	case na == 1:
		leading = b.Leading()
	default:
		return 0, 0, nil, fmt.Errorf("%d and %d vectors: %w", na, nb, ErrBroadcast)
	}

	return na, nb, leading, nil
}

// MapVec2 applies f to paired trailing vectors of a (width ka) and b (width
// kb). An operand holding a single vector is broadcast against the other.
//
// Errors: ErrChannels, ErrBroadcast.
func MapVec2(a, b *Array, ka, kb, kOut int, f func(dst, x, y []float64)) (*Array, error) {
	na, nb, leading, err := pairRows(a, b, ka, kb)
	if err != nil {
		return nil, ndarrayErrorf(opMapVec, err)
	}
	n := broadcastLen(na, nb)
	out := make([]float64, n*kOut)
	var ia, ib int
	for i := 0; i < n; i++ {
		ia, ib = i%na, i%nb
		f(out[i*kOut:(i+1)*kOut], a.data[ia*ka:(ia+1)*ka], b.data[ib*kb:(ib+1)*kb])
	}

	return wrap(out, append(leading, kOut)...), nil
}

// Reduce maps every trailing k-vector to a scalar. The result has the
// leading shape of a (rank 0 for a single vector).
//
// Errors: ErrChannels.
func Reduce(a *Array, k int, f func(src []float64) float64) (*Array, error) {
	n, err := a.rows(k)
	if err != nil {
		return nil, ndarrayErrorf(opReduce, err)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = f(a.data[i*k : (i+1)*k])
	}

	return wrap(out, a.Leading()...), nil
}

// Reduce2 is Reduce over paired, broadcastable vectors.
//
// Errors: ErrChannels, ErrBroadcast.
func Reduce2(a, b *Array, ka, kb int, f func(x, y []float64) float64) (*Array, error) {
	na, nb, leading, err := pairRows(a, b, ka, kb)
	if err != nil {
		return nil, ndarrayErrorf(opReduce, err)
	}
	n := broadcastLen(na, nb)
	out := make([]float64, n)
	var ia, ib int
	for i := 0; i < n; i++ {
		ia, ib = i%na, i%nb
		out[i] = f(a.data[ia*ka:(ia+1)*ka], b.data[ib*kb:(ib+1)*kb])
	}

	return wrap(out, leading...), nil
}

// Apply projects every trailing vector of a through M (row i of the result
// is M·xᵢ). The trailing dimension must equal M.Cols(); the result has M.Rows()
// channels.
//
// Errors: ErrChannels, matrix errors.
func Apply(a *Array, M matrix.Matrix) (*Array, error) {
	if err := matrix.ValidateNotNil(M); err != nil {
		return nil, ndarrayErrorf(opApply, err)
	}
	n, err := a.rows(M.Cols())
	if err != nil {
		return nil, ndarrayErrorf(opApply, err)
	}
	if n == 0 {
		return wrap([]float64{}, append(a.Leading(), M.Rows())...), nil
	}
	X, err := a.AsRows(M.Cols())
	if err != nil {
		return nil, ndarrayErrorf(opApply, err)
	}
	Y, err := matrix.ApplyRows(X, M)
	if err != nil {
		return nil, ndarrayErrorf(opApply, err)
	}

	return FromDense(Y, a.Leading())
}

// Stack combines equally-shaped arrays into a new trailing channel axis:
// shape (..., len(arrays)). It is the inverse of Channel.
//
// Errors: ErrBadShape for no operands, ErrBroadcast for size mismatches.
// Single-element operands are broadcast.
func Stack(arrays ...*Array) (*Array, error) {
	if len(arrays) == 0 {
		return nil, ndarrayErrorf(opStack, ErrBadShape)
	}
	ref := arrays[0]
	for _, a := range arrays {
		if len(a.data) == 0 {
			ref = a
			break
		}
		if len(a.data) > len(ref.data) {
			ref = a
		}
	}
	n, k := len(ref.data), len(arrays)
	for _, a := range arrays {
		if len(a.data) != n && len(a.data) != 1 {
			return nil, ndarrayErrorf(opStack, ErrBroadcast)
		}
	}
	out := make([]float64, n*k)
	for j, a := range arrays {
		for i := 0; i < n; i++ {
			out[i*k+j] = a.data[i%len(a.data)]
		}
	}

	return wrap(out, append(append([]int(nil), ref.shape...), k)...), nil
}

// Channel extracts channel c of the trailing k-vectors; the result has the
// leading shape of a.
//
// Errors: ErrChannels, ErrIndex.
func Channel(a *Array, k, c int) (*Array, error) {
	if c < 0 || c >= k {
		return nil, ndarrayErrorf(opChannel, ErrIndex)
	}

	return Reduce(a, k, func(src []float64) float64 { return src[c] })
}
