// SPDX-License-Identifier: MIT

package colorimetry

import (
	"fmt"

	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/spectral"
)

// SpectralToXYZ integrates a stimulus against colour-matching functions.
//
//	XYZ = k · Σ S(λ)·E(λ)·x̄(λ)·Δλ      k = 100 / Σ E(λ)·ȳ(λ)·Δλ
//
// The sum runs over the CMF wavelengths with Δλ the CMF shape step.
// A nil illuminant means E ≡ 1.
//
// Behavior highlights:
//   - When every CMF wavelength is a key of the stimulus (or illuminant) its
//     samples are used verbatim; otherwise the missing ones are obtained
//     through the SPD's own interpolator/extrapolator, which amounts to
//     aligning a clone onto the CMF shape. Neither input is mutated.
//   - A zero denominator yields Inf/NaN; it is not reported as an error.
//
// Errors: spectral evaluation errors (e.g. an empty SPD).
func SpectralToXYZ(spd *spectral.SPD, cmfs *spectral.TriSPD, illuminant *spectral.SPD, opts ...Option) ([3]float64, error) {
	var XYZ [3]float64
	o := gatherOptions(opts...)
	wl := cmfs.Wavelengths()
	bar := cmfs.GetOr(0, wl...)

	S, err := samplesOn(spd, wl)
	if err != nil {
		return XYZ, colorimetryErrorf(opSpectralToXYZ, err)
	}
	E := make([]float64, len(wl))
	if illuminant == nil {
		for i := range E {
			E[i] = 1
		}
	} else if E, err = samplesOn(illuminant, wl); err != nil {
		return XYZ, colorimetryErrorf(opSpectralToXYZ, err)
	}

	dw := cmfs.Shape().Step()
	var denom float64
	for i := range wl {
		se := S[i] * E[i] * dw
		XYZ[0] += se * bar[3*i]
		XYZ[1] += se * bar[3*i+1]
		XYZ[2] += se * bar[3*i+2]
		denom += E[i] * bar[3*i+1] * dw
	}
	k := 100 / denom
	if o.hasK {
		k = o.k
	}
	for c := range XYZ {
		XYZ[c] *= k
	}

	return XYZ, nil
}

// samplesOn returns spd at wl, exact when every wavelength is tabulated.
func samplesOn(spd *spectral.SPD, wl []float64) ([]float64, error) {
	if spd.Contains(wl...) {
		return spd.Get(wl...)
	}

	return spd.Evaluate(wl...)
}

// WavelengthToXYZ returns the CMF tristimulus values of monochromatic
// stimuli. wl may have any shape; the result has shape (..., 3).
//
// Tabulated wavelengths return the table row verbatim. Others are
// interpolated per channel with Sprague on uniformly spaced CMFs and a
// cubic spline otherwise.
//
// Errors: ErrWavelengthDomain naming the first wavelength outside
// [start, end] of the CMF shape.
func WavelengthToXYZ(wl *ndarray.Array, cmfs *spectral.TriSPD) (*ndarray.Array, error) {
	shape := cmfs.Shape()
	lo, hi := shape.Start(), shape.End()
	src := wl.Data()
	for _, w := range src {
		if !(w >= lo && w <= hi) {
			return nil, colorimetryErrorf(opWavelengthToXYZ, fmt.Errorf("%g nm not in [%g, %g]: %w", w, lo, hi, ErrWavelengthDomain))
		}
	}

	var ins [3]spectral.Interpolator
	out := make([]float64, 3*len(src))
	for i, w := range src {
		if cmfs.Contains(w) {
			v, err := cmfs.Get(w)
			if err != nil {
				return nil, colorimetryErrorf(opWavelengthToXYZ, err)
			}
			copy(out[3*i:3*i+3], v)
			continue
		}
		if ins[0] == nil {
			kind := spectral.KindCubicSpline
			if cmfs.IsUniform() {
				kind = spectral.KindSprague
			}
			for c, ch := range cmfs.Channels() {
				in, err := spectral.NewInterpolator(kind, ch.Wavelengths(), ch.Values(), spectral.DefaultTolerance)
				if err != nil {
					return nil, colorimetryErrorf(opWavelengthToXYZ, err)
				}
				ins[c] = in
			}
		}
		for c, in := range ins {
			v, err := in.Evaluate(w)
			if err != nil {
				return nil, colorimetryErrorf(opWavelengthToXYZ, err)
			}
			out[3*i+c] = v
		}
	}

	return ndarray.New(out, append(wl.Shape(), 3)...)
}
