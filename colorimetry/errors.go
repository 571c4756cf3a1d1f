// SPDX-License-Identifier: MIT

package colorimetry

import (
	"fmt"

	"github.com/katalvlaran/chroma"
)

var (
	// ErrWavelengthDomain indicates a wavelength outside the CMF shape.
	ErrWavelengthDomain = fmt.Errorf("colorimetry: wavelength outside colour-matching functions: %w", chroma.ErrDomain)

	// ErrUnknownMethod indicates an unknown method name for a dispatcher.
	ErrUnknownMethod = fmt.Errorf("colorimetry: unknown method: %w", chroma.ErrConfig)

	// ErrBasis indicates a D-series basis TriSPD that is nil.
	ErrBasis = fmt.Errorf("colorimetry: invalid basis functions: %w", chroma.ErrShape)
)

const (
	opSpectralToXYZ   = "SpectralToXYZ"
	opWavelengthToXYZ = "WavelengthToXYZ"
	opDIlluminant     = "DIlluminantRelativeSPD"
	opLightness       = "Lightness"
	opLuminance       = "Luminance"
	opWhiteness       = "Whiteness"
)

func colorimetryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
