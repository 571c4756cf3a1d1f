// SPDX-License-Identifier: MIT

package models

import (
	"github.com/katalvlaran/chroma/dataset"
	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/spectral"
)

// Flare model of the ACES input device transform.
const (
	FlarePercentage = 0.005
	SFlareFactor    = 0.18 / (0.18 + FlarePercentage)
)

// ACESRICD returns the ACES reference input capture device sensitivities:
// the CIE 1931 2° colour-matching functions projected through the
// ACES2065-1 XYZ→RGB matrix, with channels r_bar, g_bar and b_bar.
//
// Errors: dataset and colourspace lookup errors.
func ACESRICD() (*spectral.TriSPD, error) {
	cmfs, err := dataset.CMFs(dataset.DefaultCMFs)
	if err != nil {
		return nil, modelsErrorf(opRICD, err)
	}
	aces, err := Colourspace("ACES2065-1")
	if err != nil {
		return nil, modelsErrorf(opRICD, err)
	}
	wl := cmfs.Wavelengths()
	xyz, err := ndarray.New(cmfs.Values(), len(wl), 3)
	if err != nil {
		return nil, modelsErrorf(opRICD, err)
	}
	rgb, err := ndarray.Apply(xyz, aces.XYZToRGB)
	if err != nil {
		return nil, modelsErrorf(opRICD, err)
	}
	ricd, err := spectral.NewTriSPDFromRows("ACES RICD", [3]string{"r_bar", "g_bar", "b_bar"}, wl, rgb.Data())
	if err != nil {
		return nil, modelsErrorf(opRICD, err)
	}

	return ricd, nil
}

// SpectralToACESRelativeExposure returns the ACES2065-1 relative exposure
// values of a stimulus lit by illuminant:
//
//	E_c = (k_c·Σ E(λ)·S(λ)·c̄(λ) + flare) · SFlareFactor    k_c = 1 / Σ E(λ)·c̄(λ)
//
// over the RICD wavelengths. Both inputs are sampled on the RICD shape,
// through their own interpolator where a wavelength is not tabulated. A
// nil illuminant means equal energy. An 18% grey reflector maps to 0.18.
//
// Errors: dataset lookup errors, spectral evaluation errors.
func SpectralToACESRelativeExposure(spd, illuminant *spectral.SPD) ([3]float64, error) {
	var E [3]float64
	ricd, err := ACESRICD()
	if err != nil {
		return E, modelsErrorf(opACESExposure, err)
	}
	wl := ricd.Wavelengths()
	bar := ricd.GetOr(0, wl...)
	S, err := sampledOn(spd, wl)
	if err != nil {
		return E, modelsErrorf(opACESExposure, err)
	}
	I := make([]float64, len(wl))
	if illuminant == nil {
		for i := range I {
			I[i] = 1
		}
	} else if I, err = sampledOn(illuminant, wl); err != nil {
		return E, modelsErrorf(opACESExposure, err)
	}

	var norm [3]float64
	for i := range wl {
		for c := 0; c < 3; c++ {
			E[c] += I[i] * S[i] * bar[3*i+c]
			norm[c] += I[i] * bar[3*i+c]
		}
	}
	for c := range E {
		E[c] = (E[c]/norm[c] + FlarePercentage) * SFlareFactor
	}

	return E, nil
}

func sampledOn(spd *spectral.SPD, wl []float64) ([]float64, error) {
	if spd.Contains(wl...) {
		return spd.Get(wl...)
	}

	return spd.Evaluate(wl...)
}
