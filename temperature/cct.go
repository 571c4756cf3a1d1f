// SPDX-License-Identifier: MIT

package temperature

import (
	"fmt"
	"math"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"

	"github.com/katalvlaran/chroma"
	"github.com/katalvlaran/chroma/ndarray"
)

// Method names.
const (
	MethodMcCamy1992     = "McCamy 1992"
	MethodHernandez1999  = "Hernandez 1999"
	MethodKang2002       = "Kang 2002"
	MethodCIEIlluminantD = "CIE Illuminant D Series"

	DefaultXyToCCTMethod = MethodMcCamy1992
	DefaultCCTToXyMethod = MethodKang2002
)

// Recommended domains of the CCT→xy polynomials, kelvin.
const (
	Kang2002Min = 1667.0
	Kang2002Max = 25000.0
	CIEDMin     = 4000.0
	CIEDMax     = 25000.0
)

// XyToCCTMcCamy1992 returns the CCT of chromaticities (..., 2) by McCamy's
// cubic in n = (x − 0.3320)/(y − 0.1858).
//
// Errors: ndarray.ErrChannels.
func XyToCCTMcCamy1992(xy *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.Reduce(xy, 2, func(v []float64) float64 {
		n := (v[0] - 0.3320) / (v[1] - 0.1858)

		return -449*n*n*n + 3525*n*n - 6823.3*n + 5520.33
	})
	if err != nil {
		return nil, temperatureErrorf(opMcCamy, err)
	}

	return out, nil
}

// XyToCCTHernandez1999 returns the CCT of chromaticities (..., 2) by the
// Hernández-Andrés exponential series, switching to the high-temperature
// coefficients above 50000 K.
//
// Errors: ndarray.ErrChannels.
func XyToCCTHernandez1999(xy *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.Reduce(xy, 2, func(v []float64) float64 {
		x, y := v[0], v[1]
		n := (x - 0.3366) / (y - 0.1735)
		cct := -949.86315 +
			6253.80338*math.Exp(-n/0.92159) +
			28.70599*math.Exp(-n/0.20039) +
			0.00004*math.Exp(-n/0.07125)
		if cct > 50000 {
			n = (x - 0.3356) / (y - 0.1691)
			cct = 36284.48953 +
				0.00228*math.Exp(-n/0.07861) +
				5.4535e-36*math.Exp(-n/0.01543)
		}

		return cct
	})
	if err != nil {
		return nil, temperatureErrorf(opHernandez, err)
	}

	return out, nil
}

// warnOutside logs once per call when some CCT lies outside [lo, hi].
func warnOutside(method string, CCT *ndarray.Array, lo, hi float64) {
	for _, t := range CCT.Data() {
		if t < lo || t > hi {
			chroma.LoggerFor(chroma.LogClsTemperature).WithFields(
				l.StringField("method", method),
				l.StringField("CCT", cast.ToString(t)),
				l.StringField("domain", fmt.Sprintf("[%g, %g]", lo, hi)),
			).Warn("correlated colour temperature outside recommended domain, results may be unpredictable")

			return
		}
	}
}

// stackXY evaluates x(T) then y(x) and returns shape (CCT.Shape()..., 2).
func stackXY(CCT *ndarray.Array, fx func(t float64) float64, fy func(t, x float64) float64) *ndarray.Array {
	x := ndarray.Map(CCT, fx)
	// x and y are built from CCT element for element, so both have CCT's
	// size and neither Map2 nor Stack can report ErrBroadcast.
	y, _ := ndarray.Map2(CCT, x, fy)
	xy, _ := ndarray.Stack(x, y)

	return xy
}

// CCTToXyKang2002 returns the chromaticities (CCT.Shape()..., 2) of the
// Planckian locus approximation by Kang et al.
func CCTToXyKang2002(CCT *ndarray.Array) *ndarray.Array {
	warnOutside(MethodKang2002, CCT, Kang2002Min, Kang2002Max)

	return stackXY(CCT, func(t float64) float64 {
		t2, t3 := t*t, t*t*t
		if t <= 4000 {
			return -0.2661239e9/t3 - 0.2343589e6/t2 + 0.8776956e3/t + 0.179910
		}

		return -3.0258469e9/t3 + 2.1070379e6/t2 + 0.2226347e3/t + 0.24039
	}, func(t, x float64) float64 {
		x2, x3 := x*x, x*x*x
		switch {
		case t <= 2222:
			return -1.1063814*x3 - 1.34811020*x2 + 2.18555832*x - 0.20219683
		case t <= 4000:
			return -0.9549476*x3 - 1.37418593*x2 + 2.09137015*x - 0.16748867
		}

		return 3.0817580*x3 - 5.8733867*x2 + 3.75112997*x - 0.37001483
	})
}

// CCTToXyCIED returns the chromaticities (CCT.Shape()..., 2) of the CIE
// D-series daylight locus. The low-temperature branch applies up to and
// including 7000 K.
func CCTToXyCIED(CCT *ndarray.Array) *ndarray.Array {
	warnOutside(MethodCIEIlluminantD, CCT, CIEDMin, CIEDMax)

	return stackXY(CCT, func(t float64) float64 {
		t2, t3 := t*t, t*t*t
		if t <= 7000 {
			return -4.607e9/t3 + 2.9678e6/t2 + 0.09911e3/t + 0.244063
		}

		return -2.0064e9/t3 + 1.9018e6/t2 + 0.24748e3/t + 0.23704
	}, func(_, x float64) float64 {
		return -3*x*x + 2.87*x - 0.275
	})
}

var (
	xyToCCT = map[string]func(*ndarray.Array) (*ndarray.Array, error){
		strings.ToLower(MethodMcCamy1992):    XyToCCTMcCamy1992,
		strings.ToLower(MethodHernandez1999): XyToCCTHernandez1999,
	}
	cctToXy = map[string]func(*ndarray.Array) *ndarray.Array{
		strings.ToLower(MethodKang2002):       CCTToXyKang2002,
		strings.ToLower(MethodCIEIlluminantD): CCTToXyCIED,
	}
)

func resolve(method, fallback string) string {
	if strings.TrimSpace(method) == "" {
		method = fallback
	}

	return strings.ToLower(strings.TrimSpace(method))
}

// XyToCCT dispatches to the named xy→CCT method; an empty name selects
// McCamy 1992.
//
// Errors: ErrUnknownMethod, ndarray.ErrChannels.
func XyToCCT(xy *ndarray.Array, method string) (*ndarray.Array, error) {
	f, ok := xyToCCT[resolve(method, DefaultXyToCCTMethod)]
	if !ok {
		return nil, temperatureErrorf(opXyToCCT, fmt.Errorf("%q not in [%s, %s]: %w",
			method, MethodHernandez1999, MethodMcCamy1992, ErrUnknownMethod))
	}

	return f(xy)
}

// CCTToXy dispatches to the named CCT→xy method; an empty name selects
// Kang 2002.
//
// Errors: ErrUnknownMethod.
func CCTToXy(CCT *ndarray.Array, method string) (*ndarray.Array, error) {
	f, ok := cctToXy[resolve(method, DefaultCCTToXyMethod)]
	if !ok {
		return nil, temperatureErrorf(opCCTToXy, fmt.Errorf("%q not in [%s, %s]: %w",
			method, MethodCIEIlluminantD, MethodKang2002, ErrUnknownMethod))
	}

	return f(CCT), nil
}
