// SPDX-License-Identifier: MIT

package colorimetry

import (
	"math"
	"strings"

	"github.com/katalvlaran/chroma/ndarray"
)

// Whiteness method names.
const (
	WhitenessMethodBerger1959  = "Berger 1959"
	WhitenessMethodTaube1960   = "Taube 1960"
	WhitenessMethodStensby1968 = "Stensby 1968"
	WhitenessMethodASTME313    = "ASTM E313"
	WhitenessMethodGanz1979    = "Ganz 1979"
	WhitenessMethodCIE2004     = "CIE 2004"
	DefaultWhitenessMethod     = WhitenessMethodCIE2004
)

// observer1931 selects the CIE 2004 tint coefficient 1000; other observers
// use 900.
const observer1931 = "CIE 1931 2 Degree Standard Observer"

// WhitenessBerger1959 returns WI = 0.333·Y + 125·Z/Z0 − 125·X/X0 for XYZ of
// the sample and XYZ0 of the reference white, both on the 0..100 scale.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func WhitenessBerger1959(XYZ, XYZ0 *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.Reduce2(XYZ, XYZ0, 3, 3, func(s, w []float64) float64 {
		return 0.333*s[1] + 125*(s[2]/w[2]) - 125*(s[0]/w[0])
	})
}

// WhitenessTaube1960 returns WI = 400·Z/Z0 − 3·Y.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func WhitenessTaube1960(XYZ, XYZ0 *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.Reduce2(XYZ, XYZ0, 3, 3, func(s, w []float64) float64 {
		return 400*(s[2]/w[2]) - 3*s[1]
	})
}

// WhitenessStensby1968 returns WI = L − 3·b + 3·a from CIE Lab.
//
// Errors: ndarray.ErrChannels.
func WhitenessStensby1968(Lab *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.Reduce(Lab, 3, func(v []float64) float64 { return v[0] - 3*v[2] + 3*v[1] })
}

// WhitenessASTME313 returns WI = 3.388·Z − 3·Y.
//
// Errors: ndarray.ErrChannels.
func WhitenessASTME313(XYZ *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.Reduce(XYZ, 3, func(v []float64) float64 { return 3.388*v[2] - 3*v[1] })
}

// WhitenessGanz1979 returns the whiteness W and tint T of chromaticities xy
// (..., 2) with luminance Y (...). The result has shape (..., 2).
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func WhitenessGanz1979(xy, Y *ndarray.Array) (*ndarray.Array, error) {
	Yc, err := Y.Reshape(append(Y.Shape(), 1)...)
	if err != nil {
		return nil, colorimetryErrorf(opWhiteness, err)
	}

	return ndarray.MapVec2(xy, Yc, 2, 1, 2, func(dst, c, y []float64) {
		x, yy := c[0], c[1]
		dst[0] = y[0] - 1868.322*x - 3695.690*yy + 1809.441
		dst[1] = -1001.223*x + 748.366*yy + 68.261
	})
}

// WhitenessCIE2004 returns the whiteness W and tint T of chromaticities xy
// (..., 2) with luminance Y (...) against the white chromaticity xyn. The
// tint coefficient is 1000 for the CIE 1931 observer and 900 otherwise.
// The result has shape (..., 2).
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func WhitenessCIE2004(xy, Y, xyn *ndarray.Array, observer string) (*ndarray.Array, error) {
	Yc, err := Y.Reshape(append(Y.Shape(), 1)...)
	if err != nil {
		return nil, colorimetryErrorf(opWhiteness, err)
	}
	xyY, err := ndarray.MapVec2(xy, Yc, 2, 1, 3, func(dst, c, y []float64) {
		dst[0], dst[1], dst[2] = c[0], c[1], y[0]
	})
	if err != nil {
		return nil, colorimetryErrorf(opWhiteness, err)
	}
	k := 900.0
	if observer == "" || strings.EqualFold(observer, observer1931) {
		k = 1000
	}

	return ndarray.MapVec2(xyY, xyn, 3, 2, 2, func(dst, s, n []float64) {
		dst[0] = s[2] + 800*(n[0]-s[0]) + 1700*(n[1]-s[1])
		dst[1] = k*(n[0]-s[0]) - 650*(n[1]-s[1])
	})
}

// xyOf returns the chromaticity of an XYZ triple.
func xyOf(v []float64) (x, y float64) {
	s := v[0] + v[1] + v[2]

	return v[0] / s, v[1] / s
}

// labOf returns CIE Lab of v relative to the white w on the same scale.
func labOf(v, w []float64) (L, a, b float64) {
	f := func(t float64) float64 {
		if t > CIEE {
			return math.Cbrt(t)
		}

		return (CIEK*t + 16) / 116
	}
	fx, fy, fz := f(v[0]/w[0]), f(v[1]/w[1]), f(v[2]/w[2])

	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

type whitenessFunc func(XYZ, XYZ0 *ndarray.Array) (*ndarray.Array, error)

func stensbyXYZ(XYZ, XYZ0 *ndarray.Array) (*ndarray.Array, error) {
	Lab, err := ndarray.MapVec2(XYZ, XYZ0, 3, 3, 3, func(dst, s, w []float64) {
		dst[0], dst[1], dst[2] = labOf(s, w)
	})
	if err != nil {
		return nil, err
	}

	return WhitenessStensby1968(Lab)
}

func astmXYZ(XYZ, _ *ndarray.Array) (*ndarray.Array, error) { return WhitenessASTME313(XYZ) }

func ganzXYZ(XYZ, _ *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec(XYZ, 3, 2, func(dst, s []float64) {
		x, y := xyOf(s)
		dst[0] = s[1] - 1868.322*x - 3695.690*y + 1809.441
		dst[1] = -1001.223*x + 748.366*y + 68.261
	})
}

func cie2004XYZ(XYZ, XYZ0 *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MapVec2(XYZ, XYZ0, 3, 3, 2, func(dst, s, w []float64) {
		x, y := xyOf(s)
		xn, yn := xyOf(w)
		dst[0] = s[1] + 800*(xn-x) + 1700*(yn-y)
		dst[1] = 1000*(xn-x) - 650*(yn-y)
	})
}

var whitenessMethods = newMethodTable(map[string]whitenessFunc{
	WhitenessMethodBerger1959:  WhitenessBerger1959,
	WhitenessMethodTaube1960:   WhitenessTaube1960,
	WhitenessMethodStensby1968: stensbyXYZ,
	WhitenessMethodASTME313:    astmXYZ,
	WhitenessMethodGanz1979:    ganzXYZ,
	WhitenessMethodCIE2004:     cie2004XYZ,
})

// WhitenessMethods lists the names accepted by Whiteness.
func WhitenessMethods() []string { return whitenessMethods.Names() }

// Whiteness dispatches to the named whiteness index from sample XYZ and
// reference white XYZ0, both on the 0..100 scale. Chromaticity methods
// (Ganz 1979, CIE 2004) derive xy from XYZ and return (..., 2); CIE 2004
// assumes the CIE 1931 observer. Stensby 1968 derives Lab relative to XYZ0.
//
// Errors: ErrUnknownMethod, ndarray.ErrChannels, ndarray.ErrBroadcast.
func Whiteness(method string, XYZ, XYZ0 *ndarray.Array) (*ndarray.Array, error) {
	f, err := whitenessMethods.lookup(opWhiteness, method)
	if err != nil {
		return nil, err
	}
	out, err := f(XYZ, XYZ0)
	if err != nil {
		return nil, colorimetryErrorf(opWhiteness, err)
	}

	return out, nil
}
