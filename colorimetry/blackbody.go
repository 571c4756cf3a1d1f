// SPDX-License-Identifier: MIT

package colorimetry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/spectral"
)

// PlanckLaw returns the spectral radiance of a blackbody at temperature T
// (kelvin) for wavelengths in metres:
//
//	p(λ) = c1·n⁻²·λ⁻⁵ / π · 1 / (exp(c2 / (n·λ·T)) − 1)
//
// Constants come from WithRadiationConstants and WithRefractiveIndex.
func PlanckLaw(wl *ndarray.Array, T float64, opts ...Option) *ndarray.Array {
	o := gatherOptions(opts...)

	return ndarray.Map(wl, func(l float64) float64 { return planck(l, T, o) })
}

func planck(l, T float64, o Options) float64 {
	return o.c1 * math.Pow(o.n, -2) * math.Pow(l, -5) / math.Pi / (math.Exp(o.c2/(o.n*l*T)) - 1)
}

// BlackbodySPD samples Planck's law over shape (nanometres) into an SPD
// named "<T>K Blackbody".
func BlackbodySPD(T float64, shape spectral.SpectralShape, opts ...Option) *spectral.SPD {
	o := gatherOptions(opts...)
	wl := shape.Range()
	data := make(map[float64]float64, len(wl))
	for _, w := range wl {
		data[w] = planck(w*1e-9, T, o)
	}

	return spectral.NewSPD(fmt.Sprintf("%gK Blackbody", T), data)
}
