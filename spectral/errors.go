// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"

	"github.com/katalvlaran/chroma"
)

// Sentinel errors. All wrap a chroma taxonomy error.
var (
	// ErrInvalidShape indicates step ≤ 0, start > end or a NaN bound.
	ErrInvalidShape = fmt.Errorf("spectral: invalid spectral shape: %w", chroma.ErrDomain)

	// ErrOutOfDomain is returned by interpolators for x outside [x0, xn].
	ErrOutOfDomain = fmt.Errorf("spectral: outside of interpolation domain: %w", chroma.ErrDomain)

	// ErrInsufficientSamples indicates fewer samples than the method needs.
	ErrInsufficientSamples = fmt.Errorf("spectral: insufficient samples: %w", chroma.ErrShape)

	// ErrNotUniform indicates Sprague was asked to run on an irregular grid.
	ErrNotUniform = fmt.Errorf("spectral: samples are not uniformly spaced: %w", chroma.ErrShape)

	// ErrUnsorted indicates abscissae that are not strictly increasing.
	ErrUnsorted = fmt.Errorf("spectral: abscissae must be strictly increasing: %w", chroma.ErrShape)

	// ErrLengthMismatch indicates parallel slices of different lengths, or an
	// empty value sequence on assignment.
	ErrLengthMismatch = fmt.Errorf("spectral: length mismatch: %w", chroma.ErrShape)

	// ErrWavelengthMismatch indicates SPD arithmetic over different wavelengths.
	ErrWavelengthMismatch = fmt.Errorf("spectral: wavelengths differ: %w", chroma.ErrShape)

	// ErrMissingWavelength is the strict-lookup failure of SPD/TriSPD.
	ErrMissingWavelength = fmt.Errorf("spectral: wavelength not found: %w", chroma.ErrKeyNotFound)

	// ErrUnknownAxis indicates a TriSPD channel name that is neither an axis
	// (x, y, z) nor one of its labels.
	ErrUnknownAxis = fmt.Errorf("spectral: unknown axis: %w", chroma.ErrConfig)

	// ErrUnknownKind indicates an interpolator name that ParseKind does not know.
	ErrUnknownKind = fmt.Errorf("spectral: unknown interpolator: %w", chroma.ErrConfig)
)

// Operation tags.
const (
	opShape       = "NewSpectralShape"
	opLinear      = "Linear"
	opSpline      = "CubicSpline"
	opSprague     = "Sprague"
	opNull        = "Null"
	opNewInterp   = "NewInterpolator"
	opParseKind   = "ParseKind"
	opSeries      = "NewSPDFromSeries"
	opGet         = "SPD.Get"
	opEvaluate    = "SPD.Evaluate"
	opSet         = "SPD.Set"
	opAlign       = "SPD.Align"
	opArith       = "SPD.Arithmetic"
	opTriNew      = "NewTriSPD"
	opTriChannel  = "TriSPD.Channel"
	opTriSet      = "TriSPD.Set"
	opTriEvaluate = "TriSPD.Evaluate"
)

// spectralErrorf wraps err with an operation tag.
func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// wavelengthErrorf names the offending wavelength.
func wavelengthErrorf(tag string, wl float64, err error) error {
	return fmt.Errorf("%s(%g): %w", tag, wl, err)
}
