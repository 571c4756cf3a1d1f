// SPDX-License-Identifier: MIT

package models

import (
	"math"

	"github.com/katalvlaran/chroma/ndarray"
)

// uvPrime returns the CIE 1976 u', v' of an XYZ triple.
func uvPrime(X, Y, Z float64) (u, v float64) {
	d := X + 15*Y + 3*Z

	return 4 * X / d, 9 * Y / d
}

// XYZToLuv converts XYZ (..., 3) to CIE L*u*v*.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func XYZToLuv(XYZ *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	out, err := ndarray.MapVec2(XYZ, o.illum, 3, 2, 3, func(dst, v, w []float64) {
		r := xyToXYZ3(w)
		yr := v[1] / r[1]
		L := cieK * yr
		if yr > cieE {
			L = 116*math.Cbrt(yr) - 16
		}
		u, vv := uvPrime(v[0], v[1], v[2])
		ur, vr := uvPrime(r[0], r[1], r[2])
		dst[0], dst[1], dst[2] = L, 13*L*(u-ur), 13*L*(vv-vr)
	})
	if err != nil {
		return nil, modelsErrorf(opLuv, err)
	}

	return out, nil
}

// LuvToXYZ is the inverse of XYZToLuv.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func LuvToXYZ(Luv *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	out, err := ndarray.MapVec2(Luv, o.illum, 3, 2, 3, func(dst, v, w []float64) {
		dst[0], dst[1], dst[2] = luvToXYZ(v, xyToXYZ3(w))
	})
	if err != nil {
		return nil, modelsErrorf(opLuv, err)
	}

	return out, nil
}

func luvToXYZ(v []float64, r [3]float64) (X, Y, Z float64) {
	L, u, vv := v[0], v[1], v[2]
	if L > cieE*cieK {
		f := (L + 16) / 116
		Y = f * f * f
	} else {
		Y = L / cieK
	}
	ur, vr := uvPrime(r[0], r[1], r[2])
	a := (52*L/(u+13*L*ur) - 1) / 3
	b := -5 * Y
	c := -1.0 / 3
	d := Y * (39*L/(vv+13*L*vr) - 5)
	X = (d - b) / (a - c)
	Z = X*a + b

	return X, Y, Z
}

// LuvTouv returns the u', v' chromaticity coordinates (..., 2) of Luv.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func LuvTouv(Luv *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	out, err := ndarray.MapVec2(Luv, o.illum, 3, 2, 2, func(dst, v, w []float64) {
		X, Y, Z := luvToXYZ(v, xyToXYZ3(w))
		dst[0], dst[1] = uvPrime(X, Y, Z)
	})
	if err != nil {
		return nil, modelsErrorf(opLuv, err)
	}

	return out, nil
}

// LuvUVToxy converts u', v' (..., 2) to xy.
//
// Errors: ndarray.ErrChannels.
func LuvUVToxy(uv *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec(uv, 2, 2, func(dst, v []float64) {
		d := 6*v[0] - 16*v[1] + 12
		dst[0], dst[1] = 9*v[0]/d, 4*v[1]/d
	})
}

// LuvToLCHuv converts Luv to cylindrical LCHuv (hue in degrees).
//
// Errors: ndarray.ErrChannels.
func LuvToLCHuv(Luv *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec(Luv, 3, 3, toLCH)
}

// LCHuvToLuv is the inverse of LuvToLCHuv.
//
// Errors: ndarray.ErrChannels.
func LCHuvToLuv(LCHuv *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec(LCHuv, 3, 3, fromLCH)
}
