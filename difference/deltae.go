// SPDX-License-Identifier: MIT

package difference

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/chroma/ndarray"
)

// Method names accepted by DeltaE.
const (
	MethodCIE1976 = "CIE 1976"
	MethodCIE1994 = "CIE 1994"
	MethodCIE2000 = "CIE 2000"
	MethodCMC     = "CMC"
	DefaultMethod = MethodCMC
)

func deg(r float64) float64 { return r * 180 / math.Pi }
func rad(d float64) float64 { return d * math.Pi / 180 }

func reduce(tag string, Lab1, Lab2 *ndarray.Array, f func(p, q []float64) float64) (*ndarray.Array, error) {
	out, err := ndarray.Reduce2(Lab1, Lab2, 3, 3, f)
	if err != nil {
		return nil, differenceErrorf(tag, err)
	}

	return out, nil
}

// DeltaECIE1976 is the Euclidean distance in L*a*b*.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func DeltaECIE1976(Lab1, Lab2 *ndarray.Array, _ ...Option) (*ndarray.Array, error) {
	return reduce(opCIE1976, Lab1, Lab2, func(p, q []float64) float64 {
		dL, da, db := p[0]-q[0], p[1]-q[1], p[2]-q[2]

		return math.Sqrt(dL*dL + da*da + db*db)
	})
}

// DeltaECIE1994 is the CIE 1994 difference; WithTextiles switches to
// k_L = 2, K1 = 0.048, K2 = 0.014.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func DeltaECIE1994(Lab1, Lab2 *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	k1, k2, kL := 0.045, 0.015, 1.0
	if gatherOptions(opts...).textiles {
		k1, k2, kL = 0.048, 0.014, 2
	}

	return reduce(opCIE1994, Lab1, Lab2, func(p, q []float64) float64 {
		c1, c2 := math.Hypot(p[1], p[2]), math.Hypot(q[1], q[2])
		sC, sH := 1+k1*c1, 1+k2*c1
		dL, dC := p[0]-q[0], c1-c2
		da, db := p[1]-q[1], p[2]-q[2]
		dH := math.Sqrt(da*da + db*db - dC*dC)
		L, C, H := dL/kL, dC/sC, dH/sH

		return math.Sqrt(L*L + C*C + H*H)
	})
}

// DeltaECIE2000 is the CIEDE2000 difference; WithTextiles sets k_L = 2.
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func DeltaECIE2000(Lab1, Lab2 *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	kL := 1.0
	if gatherOptions(opts...).textiles {
		kL = 2
	}
	const pow25 = 6103515625.0 // 25^7

	return reduce(opCIE2000, Lab1, Lab2, func(p, q []float64) float64 {
		lBar := (p[0] + q[0]) / 2
		cBar := (math.Hypot(p[1], p[2]) + math.Hypot(q[1], q[2])) / 2
		cBar7 := math.Pow(cBar, 7)
		g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25)))
		a1, a2 := p[1]*(1+g), q[1]*(1+g)
		c1, c2 := math.Hypot(a1, p[2]), math.Hypot(a2, q[2])
		cBarP := (c1 + c2) / 2

		h1, h2 := deg(math.Atan2(p[2], a1)), deg(math.Atan2(q[2], a2))
		if h1 < 0 {
			h1 += 360
		}
		if h2 < 0 {
			h2 += 360
		}
		hBar := (h1 + h2) / 2
		if math.Abs(h1-h2) > 180 {
			hBar += 180
		}
		t := 1 - 0.17*math.Cos(rad(hBar-30)) +
			0.24*math.Cos(rad(2*hBar)) +
			0.32*math.Cos(rad(3*hBar+6)) -
			0.20*math.Cos(rad(4*hBar-63))

		dh := h2 - h1
		if math.Abs(dh) > 180 {
			if h2 <= h1 {
				dh += 360
			} else {
				dh -= 360
			}
		}
		dL, dC := q[0]-p[0], c2-c1
		dH := 2 * math.Sqrt(c1*c2) * math.Sin(rad(dh/2))

		l50 := (lBar - 50) * (lBar - 50)
		sL := 1 + 0.015*l50/math.Sqrt(20+l50)
		sC := 1 + 0.045*cBarP
		sH := 1 + 0.015*cBarP*t
		e := (hBar - 275) / 25
		dTheta := 30 * math.Exp(-e*e)
		cBarP7 := math.Pow(cBarP, 7)
		rC := math.Sqrt(cBarP7 / (cBarP7 + pow25))
		rT := -2 * rC * math.Sin(rad(2*dTheta))

		L, C, H := dL/(kL*sL), dC/sC, dH/sH

		return math.Sqrt(L*L + C*C + H*H + C*H*rT)
	})
}

// DeltaECMC is the CMC l:c difference; WithCMCWeights sets l and c
// (default 2:1).
//
// Errors: ndarray.ErrChannels, ndarray.ErrBroadcast.
func DeltaECMC(Lab1, Lab2 *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)

	return reduce(opCMC, Lab1, Lab2, func(p, q []float64) float64 {
		c1, c2 := math.Hypot(p[1], p[2]), math.Hypot(q[1], q[2])
		sL := 0.511
		if p[0] >= 16 {
			sL = 0.040975 * p[0] / (1 + 0.01765*p[0])
		}
		sC := 0.0638*c1/(1+0.0131*c1) + 0.638
		h1 := 0.0
		if c1 >= 1e-6 {
			h1 = math.Mod(deg(math.Atan2(p[2], p[1]))+360, 360)
		}
		t := 0.36 + math.Abs(0.4*math.Cos(rad(h1+35)))
		if h1 >= 164 && h1 <= 345 {
			t = 0.56 + math.Abs(0.2*math.Cos(rad(h1+168)))
		}
		c4 := c1 * c1 * c1 * c1
		f := math.Sqrt(c4 / (c4 + 1900))
		sH := sC * (f*t + 1 - f)

		dL, dC := p[0]-q[0], c1-c2
		da, db := p[1]-q[1], p[2]-q[2]
		dH2 := da*da + db*db - dC*dC
		v1, v2 := dL/(o.l*sL), dC/(o.c*sC)

		return math.Sqrt(v1*v1 + v2*v2 + dH2/(sH*sH))
	})
}

// Func is the common signature of the ΔE functions.
type Func func(Lab1, Lab2 *ndarray.Array, opts ...Option) (*ndarray.Array, error)

var (
	methods = map[string]Func{
		"cie 1976": DeltaECIE1976,
		"cie1976":  DeltaECIE1976,
		"cie 1994": DeltaECIE1994,
		"cie1994":  DeltaECIE1994,
		"cie 2000": DeltaECIE2000,
		"cie2000":  DeltaECIE2000,
		"cmc":      DeltaECMC,
	}
	methodNames = []string{MethodCIE1976, MethodCIE1994, MethodCIE2000, MethodCMC}
)

// Methods lists the canonical names accepted by DeltaE.
func Methods() []string { return slices.Clone(methodNames) }

// DeltaE dispatches to the named method (case-insensitive; "cie1976",
// "cie1994" and "cie2000" are aliases). An empty name selects CMC.
//
// Errors: ErrUnknownMethod, ndarray.ErrChannels, ndarray.ErrBroadcast.
func DeltaE(Lab1, Lab2 *ndarray.Array, method string, opts ...Option) (*ndarray.Array, error) {
	key := strings.ToLower(strings.TrimSpace(method))
	if key == "" {
		key = strings.ToLower(DefaultMethod)
	}
	f, ok := methods[key]
	if !ok {
		return nil, differenceErrorf(opDeltaE, fmt.Errorf("%q not in [%s]: %w", method, strings.Join(methodNames, ", "), ErrUnknownMethod))
	}

	return f(Lab1, Lab2, opts...)
}
