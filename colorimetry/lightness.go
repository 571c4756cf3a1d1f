// SPDX-License-Identifier: MIT

package colorimetry

import (
	"math"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"

	"github.com/katalvlaran/chroma"
	"github.com/katalvlaran/chroma/ndarray"
)

// CIE constants ε and κ, as exact rationals.
const (
	CIEE = 216.0 / 24389.0
	CIEK = 24389.0 / 27.0
)

// Lightness method names.
const (
	LightnessMethodGlasser1958  = "Glasser 1958"
	LightnessMethodWyszecki1963 = "Wyszecki 1963"
	LightnessMethodCIE1976      = "CIE 1976"
	DefaultLightnessMethod      = LightnessMethodCIE1976
)

// LightnessGlasser1958 returns L = 25.29·Y^(1/3) − 18.38 for Y in [0, 100].
func LightnessGlasser1958(Y *ndarray.Array) *ndarray.Array {
	return ndarray.Map(Y, func(y float64) float64 { return 25.29*math.Cbrt(y) - 18.38 })
}

// LightnessWyszecki1963 returns W = 25·Y^(1/3) − 17. The formula is only
// valid for Y in [1, 98]; values outside are computed anyway and logged.
func LightnessWyszecki1963(Y *ndarray.Array) *ndarray.Array {
	for _, y := range Y.Data() {
		if y < 1 || y > 98 {
			chroma.LoggerFor(chroma.LogClsColorimetry).WithFields(
				l.StringField("Y", cast.ToString(y)),
			).Warn("luminance outside [1, 98], Wyszecki 1963 lightness is extrapolated")

			break
		}
	}

	return ndarray.Map(Y, func(y float64) float64 { return 25*math.Cbrt(y) - 17 })
}

// Lightness1976 returns CIE 1976 L* for luminance Y on the scale of the
// reference white Yn (WithReferenceLuminance, default 100).
func Lightness1976(Y *ndarray.Array, opts ...Option) *ndarray.Array {
	yn := gatherOptions(opts...).yn

	return ndarray.Map(Y, func(y float64) float64 {
		r := y / yn
		if r <= CIEE {
			return CIEK * r
		}

		return 116*math.Cbrt(r) - 16
	})
}

var lightnessMethods = newMethodTable(map[string]func(*ndarray.Array, ...Option) *ndarray.Array{
	LightnessMethodGlasser1958:  func(Y *ndarray.Array, _ ...Option) *ndarray.Array { return LightnessGlasser1958(Y) },
	LightnessMethodWyszecki1963: func(Y *ndarray.Array, _ ...Option) *ndarray.Array { return LightnessWyszecki1963(Y) },
	LightnessMethodCIE1976:      Lightness1976,
})

// LightnessMethods lists the names accepted by Lightness.
func LightnessMethods() []string { return lightnessMethods.Names() }

// Lightness dispatches to the named lightness function. Options are only
// used by CIE 1976.
//
// Errors: ErrUnknownMethod.
func Lightness(Y *ndarray.Array, method string, opts ...Option) (*ndarray.Array, error) {
	f, err := lightnessMethods.lookup(opLightness, method)
	if err != nil {
		return nil, err
	}

	return f(Y, opts...), nil
}
