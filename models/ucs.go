// SPDX-License-Identifier: MIT

package models

import (
	"math"

	"github.com/katalvlaran/chroma/ndarray"
)

// XYZToUCS converts XYZ to CIE 1960 UCS (U, V, W).
//
// Errors: ndarray.ErrChannels.
func XYZToUCS(XYZ *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(XYZ, 3, 3, func(dst, v []float64) {
		dst[0], dst[1], dst[2] = ucsOf(v[0], v[1], v[2])
	})
	if err != nil {
		return nil, modelsErrorf(opUCS, err)
	}

	return out, nil
}

func ucsOf(X, Y, Z float64) (U, V, W float64) {
	return 2 * X / 3, Y, (-X + 3*Y + Z) / 2
}

func ucsUV(X, Y, Z float64) (u, v float64) {
	U, V, W := ucsOf(X, Y, Z)
	s := U + V + W

	return U / s, V / s
}

// UCSToXYZ is the inverse of XYZToUCS.
//
// Errors: ndarray.ErrChannels.
func UCSToXYZ(UVW *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(UVW, 3, 3, func(dst, v []float64) {
		dst[0] = 1.5 * v[0]
		dst[1] = v[1]
		dst[2] = 1.5*v[0] - 3*v[1] + 2*v[2]
	})
	if err != nil {
		return nil, modelsErrorf(opUCS, err)
	}

	return out, nil
}

// UCSTouv returns the uv chromaticity coordinates (..., 2) of UCS values.
//
// Errors: ndarray.ErrChannels.
func UCSTouv(UVW *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec(UVW, 3, 2, func(dst, v []float64) {
		s := v[0] + v[1] + v[2]
		dst[0], dst[1] = v[0]/s, v[1]/s
	})
}

// UCSUVToxy converts UCS uv (..., 2) to xy.
//
// Errors: ndarray.ErrChannels.
func UCSUVToxy(uv *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec(uv, 2, 2, func(dst, v []float64) {
		d := 2*v[0] - 8*v[1] + 4
		dst[0], dst[1] = 3*v[0]/d, 2*v[1]/d
	})
}

// XYZToUVW converts XYZ (Y in [0, 100]) to CIE 1964 U*V*W* relative to the
// reference illuminant.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func XYZToUVW(XYZ *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	out, err := ndarray.MapVec2(XYZ, o.illum, 3, 2, 3, func(dst, v, w []float64) {
		r := xyToXYZ3(w)
		u, vv := ucsUV(v[0], v[1], v[2])
		u0, v0 := ucsUV(r[0], r[1], r[2])
		W := 25*math.Cbrt(v[1]) - 17
		dst[0], dst[1], dst[2] = 13*W*(u-u0), 13*W*(vv-v0), W
	})
	if err != nil {
		return nil, modelsErrorf(opUCS, err)
	}

	return out, nil
}
