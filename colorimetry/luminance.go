// SPDX-License-Identifier: MIT

package colorimetry

import (
	"github.com/katalvlaran/chroma/ndarray"
)

// Luminance method names.
const (
	LuminanceMethodNewhall1943 = "Newhall 1943"
	LuminanceMethodASTMD153508 = "ASTM D1535-08"
	LuminanceMethodCIE1976     = "CIE 1976"
	DefaultLuminanceMethod     = LuminanceMethodCIE1976
)

// LuminanceNewhall1943 returns luminance R_Y from Munsell value V in [0, 10].
func LuminanceNewhall1943(V *ndarray.Array) *ndarray.Array {
	return ndarray.Map(V, func(v float64) float64 {
		return 1.2219*v - 0.23111*v*v + 0.23951*v*v*v - 0.021009*v*v*v*v + 0.0008404*v*v*v*v*v
	})
}

// LuminanceASTMD153508 returns luminance Y from Munsell value V in [0, 10].
func LuminanceASTMD153508(V *ndarray.Array) *ndarray.Array {
	return ndarray.Map(V, luminanceASTM)
}

func luminanceASTM(v float64) float64 {
	return 1.1914*v - 0.22533*v*v + 0.23352*v*v*v - 0.020484*v*v*v*v + 0.00081939*v*v*v*v*v
}

// Luminance1976 is the inverse of Lightness1976: Y on the scale of Yn.
func Luminance1976(L *ndarray.Array, opts ...Option) *ndarray.Array {
	yn := gatherOptions(opts...).yn

	return ndarray.Map(L, func(v float64) float64 {
		if v > CIEK*CIEE {
			f := (v + 16) / 116

			return yn * f * f * f
		}

		return yn * v / CIEK
	})
}

var luminanceMethods = newMethodTable(map[string]func(*ndarray.Array, ...Option) *ndarray.Array{
	LuminanceMethodNewhall1943: func(V *ndarray.Array, _ ...Option) *ndarray.Array { return LuminanceNewhall1943(V) },
	LuminanceMethodASTMD153508: func(V *ndarray.Array, _ ...Option) *ndarray.Array { return LuminanceASTMD153508(V) },
	LuminanceMethodCIE1976:     Luminance1976,
})

// LuminanceMethods lists the names accepted by Luminance.
func LuminanceMethods() []string { return luminanceMethods.Names() }

// Luminance dispatches to the named luminance function; LV is a Munsell
// value or a CIE lightness depending on the method.
//
// Errors: ErrUnknownMethod.
func Luminance(LV *ndarray.Array, method string, opts ...Option) (*ndarray.Array, error) {
	f, err := luminanceMethods.lookup(opLuminance, method)
	if err != nil {
		return nil, err
	}

	return f(LV, opts...), nil
}
