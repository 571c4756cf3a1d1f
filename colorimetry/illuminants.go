// SPDX-License-Identifier: MIT

package colorimetry

import (
	"math"

	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/spectral"
)

// IlluminantA returns the relative SPD of CIE illuminant A (2848 K, c2 of
// 1.435e7 nm·K) normalised to 100 at 560 nm. wl is in nanometres.
func IlluminantA(wl *ndarray.Array) *ndarray.Array {
	const c = 1.435e7 / 2848
	ref := math.Exp(c/560) - 1

	return ndarray.Map(wl, func(l float64) float64 {
		return 100 * math.Pow(560/l, 5) * ref / (math.Exp(c/l) - 1)
	})
}

// DIlluminantM1M2 returns the M1 and M2 weights of the CIE D series for a
// chromaticity. Both are rounded half-to-even to 3 decimals unless
// WithoutM1M2Rounding is given.
func DIlluminantM1M2(xy [2]float64, opts ...Option) (m1, m2 float64) {
	o := gatherOptions(opts...)
	x, y := xy[0], xy[1]
	M := 0.0241 + 0.2562*x - 0.7341*y
	m1 = (-1.3515 - 1.7703*x + 5.9114*y) / M
	m2 = (0.0300 - 31.4424*x + 30.0717*y) / M
	if !o.noRound {
		m1 = math.RoundToEven(m1*1000) / 1000
		m2 = math.RoundToEven(m2*1000) / 1000
	}

	return m1, m2
}

// DIlluminantRelativeSPD builds the CIE D series SPD S0 + M1·S1 + M2·S2 for
// a chromaticity. basis carries S0, S1 and S2 as its three channels.
//
// Errors: ErrBasis for a nil basis.
func DIlluminantRelativeSPD(xy [2]float64, basis *spectral.TriSPD, opts ...Option) (*spectral.SPD, error) {
	if basis == nil {
		return nil, colorimetryErrorf(opDIlluminant, ErrBasis)
	}
	m1, m2 := DIlluminantM1M2(xy, opts...)
	ch := basis.Channels()
	wl := ch[0].Wavelengths()
	s0, s1, s2 := ch[0].Values(), ch[1].Values(), ch[2].Values()
	v := make([]float64, len(wl))
	for i := range wl {
		v[i] = s0[i] + m1*s1[i] + m2*s2[i]
	}
	spd, err := spectral.NewSPDFromSeries("CIE Illuminant D Series", wl, v)
	if err != nil {
		return nil, colorimetryErrorf(opDIlluminant, err)
	}

	return spd, nil
}
