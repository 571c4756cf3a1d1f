// SPDX-License-Identifier: MIT

package quality

import (
	"math"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"

	"github.com/katalvlaran/chroma"
	"github.com/katalvlaran/chroma/colorimetry"
	"github.com/katalvlaran/chroma/dataset"
	"github.com/katalvlaran/chroma/models"
	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/spectral"
	"github.com/katalvlaran/chroma/temperature"
)

// SampleColorimetry is one test colour sample as rendered by a source.
type SampleColorimetry struct {
	Name string
	XYZ  [3]float64
	UV   [2]float64 // CIE 1960 UCS, after adaptation for the test source
	UVW  [3]float64 // CIE 1964 U*V*W* relative to the reference white
}

// Result holds a colour rendering index and the data it was derived from.
type Result struct {
	Ra        float64
	Ri        []float64 // special indices, in sample order
	CCT       float64
	Duv       float64
	Reference *spectral.SPD
	Test      []SampleColorimetry
	Ideal     []SampleColorimetry
}

// ColourRenderingIndex returns the CIE 1995 colour rendering index of test
// against samples (spectral reflectances).
//
// Errors: ErrNoSamples, colorimetry.ErrBasis when the source needs a D-series
// reference and no WithDaylightBasis was given, dataset and spectral
// evaluation errors.
// Complexity: O(S·N) for S samples over N CMF wavelengths.
func ColourRenderingIndex(test *spectral.SPD, samples []*spectral.SPD, opts ...Option) (*Result, error) {
	if len(samples) == 0 {
		return nil, qualityErrorf(opCRI, ErrNoSamples)
	}
	o := gatherOptions(opts...)
	cmfs := o.cmfs
	if cmfs == nil {
		var err error
		if cmfs, err = dataset.CMFs(dataset.DefaultCMFs); err != nil {
			return nil, qualityErrorf(opCRI, err)
		}
	}

	XYZ, err := colorimetry.SpectralToXYZ(test, cmfs, nil)
	if err != nil {
		return nil, qualityErrorf(opCRI, err)
	}
	uv, err := uvOf(XYZ)
	if err != nil {
		return nil, qualityErrorf(opCRI, err)
	}
	cd, err := temperature.UvToCCTRobertson1968(ndarray.Vector(uv[:]...))
	if err != nil {
		return nil, qualityErrorf(opCRI, err)
	}
	res := &Result{CCT: cd.Data()[0], Duv: cd.Data()[1]}

	if res.Reference, err = ReferenceIlluminant(res.CCT, cmfs.Shape(), o.basis); err != nil {
		return nil, qualityErrorf(opCRI, err)
	}
	if res.Test, err = renderSamples(test, res.Reference, samples, cmfs, true); err != nil {
		return nil, qualityErrorf(opCRI, err)
	}
	if res.Ideal, err = renderSamples(res.Reference, res.Reference, samples, cmfs, false); err != nil {
		return nil, qualityErrorf(opCRI, err)
	}

	res.Ri = make([]float64, len(samples))
	for i := range samples {
		t, r := res.Test[i].UVW, res.Ideal[i].UVW
		res.Ri[i] = 100 - 4.6*math.Sqrt((t[0]-r[0])*(t[0]-r[0])+(t[1]-r[1])*(t[1]-r[1])+(t[2]-r[2])*(t[2]-r[2]))
	}
	n := min(o.general, len(samples))
	for _, r := range res.Ri[:n] {
		res.Ra += r
	}
	res.Ra /= float64(n)

	chroma.LoggerFor(chroma.LogClsQuality).WithFields(
		l.StringField("CCT", cast.ToString(res.CCT)),
		l.StringField("reference", res.Reference.Name()),
	).Debug("colour rendering index computed")

	return res, nil
}

// ReferenceIlluminant returns the illuminant a source of temperature CCT is
// compared against: a blackbody sampled on shape below DaylightThreshold,
// otherwise the D-series illuminant built from basis at the CIE D
// chromaticity of CCT.
//
// Errors: colorimetry.ErrBasis for a nil basis at or above the threshold.
func ReferenceIlluminant(CCT float64, shape spectral.SpectralShape, basis *spectral.TriSPD) (*spectral.SPD, error) {
	if CCT < DaylightThreshold {
		return colorimetry.BlackbodySPD(CCT, shape), nil
	}
	xy := temperature.CCTToXyCIED(ndarray.Scalar(CCT)).Data()
	spd, err := colorimetry.DIlluminantRelativeSPD([2]float64{xy[0], xy[1]}, basis)
	if err != nil {
		return nil, qualityErrorf(opReference, err)
	}

	return spd, nil
}

func uvOf(XYZ [3]float64) ([2]float64, error) {
	var uv [2]float64
	UVW, err := models.XYZToUCS(ndarray.Vector(XYZ[:]...))
	if err != nil {
		return uv, err
	}
	p, err := models.UCSTouv(UVW)
	if err != nil {
		return uv, err
	}
	copy(uv[:], p.Data())

	return uv, nil
}

// cieC and cieD are the CIE 13.3 chromatic adaptation coordinates.
func cieC(uv [2]float64) float64 { return (4 - uv[0] - 10*uv[1]) / uv[1] }
func cieD(uv [2]float64) float64 { return (1.708*uv[1] + 0.404 - 1.481*uv[0]) / uv[1] }

// renderSamples computes each sample under source, expressed in U*V*W*
// relative to the reference white. With adapt set, sample chromaticities
// are first moved from the source white to the reference white.
func renderSamples(source, reference *spectral.SPD, samples []*spectral.SPD, cmfs *spectral.TriSPD, adapt bool) ([]SampleColorimetry, error) {
	XYZt, err := colorimetry.SpectralToXYZ(source, cmfs, nil)
	if err != nil {
		return nil, err
	}
	uvT, err := uvOf(XYZt)
	if err != nil {
		return nil, err
	}
	XYZr, err := colorimetry.SpectralToXYZ(reference, cmfs, nil)
	if err != nil {
		return nil, err
	}
	uvR, err := uvOf(XYZr)
	if err != nil {
		return nil, err
	}
	cT, dT := cieC(uvT), cieD(uvT)
	cR, dR := cieC(uvR), cieD(uvR)

	out := make([]SampleColorimetry, len(samples))
	for i, s := range samples {
		XYZ, err := colorimetry.SpectralToXYZ(s, cmfs, source)
		if err != nil {
			return nil, err
		}
		uv, err := uvOf(XYZ)
		if err != nil {
			return nil, err
		}
		if adapt {
			c, d := cR/cT*cieC(uv), dR/dT*cieD(uv)
			den := 16.518 + 1.481*c - d
			uv = [2]float64{(10.872 + 0.404*c - 4*d) / den, 5.52 / den}
		}
		W := 25*math.Cbrt(XYZ[1]) - 17
		out[i] = SampleColorimetry{
			Name: s.Name(),
			XYZ:  XYZ,
			UV:   uv,
			UVW:  [3]float64{13 * W * (uv[0] - uvR[0]), 13 * W * (uv[1] - uvR[1]), W},
		}
	}

	return out, nil
}
