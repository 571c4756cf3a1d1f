// SPDX-License-Identifier: MIT

package models

import "github.com/katalvlaran/chroma/ndarray"

// XYZToxyY converts XYZ (..., 3) to xyY. Black (X = Y = Z = 0) takes the
// chromaticity of the reference illuminant.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func XYZToxyY(XYZ *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	out, err := ndarray.MapVec2(XYZ, o.illum, 3, 2, 3, func(dst, v, w []float64) {
		dst[0], dst[1], dst[2] = xyYOf(v, w)
	})
	if err != nil {
		return nil, modelsErrorf(opXYZToxyY, err)
	}

	return out, nil
}

func xyYOf(v, w []float64) (x, y, Y float64) {
	if v[0] == 0 && v[1] == 0 && v[2] == 0 {
		return w[0], w[1], 0
	}
	s := v[0] + v[1] + v[2]

	return v[0] / s, v[1] / s, v[1]
}

// XyYToXYZ converts xyY (..., 3) to XYZ; y = 0 gives [0, 0, 0].
//
// Errors: ndarray.ErrChannels.
func XyYToXYZ(xyY *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(xyY, 3, 3, func(dst, v []float64) {
		dst[0], dst[1], dst[2] = xyYToXYZ(v[0], v[1], v[2])
	})
	if err != nil {
		return nil, modelsErrorf(opXyYToXYZ, err)
	}

	return out, nil
}

func xyYToXYZ(x, y, Y float64) (X, Yo, Z float64) {
	if y == 0 {
		return 0, 0, 0
	}

	return x * Y / y, Y, (1 - x - y) * Y / y
}

// xyToXYZ3 lifts a chromaticity to XYZ at Y = 1.
func xyToXYZ3(xy []float64) [3]float64 {
	X, Y, Z := xyYToXYZ(xy[0], xy[1], 1)

	return [3]float64{X, Y, Z}
}

// XyToXYZ converts chromaticities (..., 2) to XYZ at Y = 1.
//
// Errors: ndarray.ErrChannels.
func XyToXYZ(xy *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(xy, 2, 3, func(dst, v []float64) {
		dst[0], dst[1], dst[2] = xyYToXYZ(v[0], v[1], 1)
	})
	if err != nil {
		return nil, modelsErrorf(opXyYToXYZ, err)
	}

	return out, nil
}

// XYZToxy returns the chromaticities (..., 2) of XYZ (..., 3), with the
// illuminant chromaticity for black.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func XYZToxy(XYZ *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	out, err := ndarray.MapVec2(XYZ, o.illum, 3, 2, 2, func(dst, v, w []float64) {
		dst[0], dst[1], _ = xyYOf(v, w)
	})
	if err != nil {
		return nil, modelsErrorf(opXYZToxyY, err)
	}

	return out, nil
}

// XyToxyY appends Y = 1 to chromaticities: (..., 2) → (..., 3).
//
// Errors: ndarray.ErrChannels.
func XyToxyY(xy *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec(xy, 2, 3, func(dst, v []float64) {
		dst[0], dst[1], dst[2] = v[0], v[1], 1
	})
}

// XyYToxy drops Y: (..., 3) → (..., 2).
//
// Errors: ndarray.ErrChannels.
func XyYToxy(xyY *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec(xyY, 3, 2, func(dst, v []float64) {
		dst[0], dst[1] = v[0], v[1]
	})
}
