// SPDX-License-Identifier: MIT

package models

import (
	"fmt"

	"github.com/katalvlaran/chroma"
)

var (
	// ErrHex indicates a malformed hexadecimal triplet.
	ErrHex = fmt.Errorf("models: malformed hex triplet: %w", chroma.ErrShape)

	// ErrSingularPrimaries indicates primaries whose matrix cannot be inverted.
	ErrSingularPrimaries = fmt.Errorf("models: degenerate primaries: %w", chroma.ErrDomain)
)

const (
	opXYZToxyY     = "XYZToxyY"
	opXyYToXYZ     = "XyYToXYZ"
	opLab          = "Lab"
	opLuv          = "Luv"
	opUCS          = "UCS"
	opIPT          = "IPT"
	opHSV          = "HSV"
	opCMY          = "CMY"
	opHex          = "HEX"
	opNPM          = "NormalisedPrimaryMatrix"
	opColourspace  = "RGBColourspace"
	opXYZToRGB     = "XYZToRGB"
	opRGBToXYZ     = "RGBToXYZ"
	opRGBToRGB     = "RGBToRGB"
	opRGBLuminance = "RGBLuminance"
	opRICD         = "ACESRICD"
	opACESExposure = "SpectralToACESRelativeExposure"
)

func modelsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
