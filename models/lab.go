// SPDX-License-Identifier: MIT

package models

import (
	"math"

	"github.com/katalvlaran/chroma/ndarray"
)

// CIE constants ε and κ.
const (
	cieE = 216.0 / 24389.0
	cieK = 24389.0 / 27.0
)

func labF(t float64) float64 {
	if t > cieE {
		return math.Cbrt(t)
	}

	return (cieK*t + 16) / 116
}

// XYZToLab converts XYZ (..., 3) to CIE L*a*b* relative to the reference
// illuminant (Y of the white is 1).
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func XYZToLab(XYZ *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	out, err := ndarray.MapVec2(XYZ, o.illum, 3, 2, 3, func(dst, v, w []float64) {
		r := xyToXYZ3(w)
		fx, fy, fz := labF(v[0]/r[0]), labF(v[1]/r[1]), labF(v[2]/r[2])
		dst[0] = 116*fy - 16
		dst[1] = 500 * (fx - fy)
		dst[2] = 200 * (fy - fz)
	})
	if err != nil {
		return nil, modelsErrorf(opLab, err)
	}

	return out, nil
}

// LabToXYZ is the inverse of XYZToLab.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func LabToXYZ(Lab *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	out, err := ndarray.MapVec2(Lab, o.illum, 3, 2, 3, func(dst, v, w []float64) {
		r := xyToXYZ3(w)
		L := v[0]
		fy := (L + 16) / 116
		fx := v[1]/500 + fy
		fz := fy - v[2]/200
		xr := fx * fx * fx
		if xr <= cieE {
			xr = (116*fx - 16) / cieK
		}
		yr := fy * fy * fy
		if L <= cieK*cieE {
			yr = L / cieK
		}
		zr := fz * fz * fz
		if zr <= cieE {
			zr = (116*fz - 16) / cieK
		}
		dst[0], dst[1], dst[2] = xr*r[0], yr*r[1], zr*r[2]
	})
	if err != nil {
		return nil, modelsErrorf(opLab, err)
	}

	return out, nil
}

// toLCH maps (L, a, b) to (L, C, h°) with h in [0, 360).
func toLCH(dst, v []float64) {
	h := 180 * math.Atan2(v[2], v[1]) / math.Pi
	if h < 0 {
		h += 360
	}
	dst[0], dst[1], dst[2] = v[0], math.Hypot(v[1], v[2]), h
}

func fromLCH(dst, v []float64) {
	s, c := math.Sincos(v[2] * math.Pi / 180)
	dst[0], dst[1], dst[2] = v[0], v[1]*c, v[1]*s
}

// LabToLCHab converts Lab to cylindrical LCHab (hue in degrees).
//
// Errors: ndarray.ErrChannels.
func LabToLCHab(Lab *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec(Lab, 3, 3, toLCH)
}

// LCHabToLab is the inverse of LabToLCHab.
//
// Errors: ndarray.ErrChannels.
func LCHabToLab(LCHab *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec(LCHab, 3, 3, fromLCH)
}
