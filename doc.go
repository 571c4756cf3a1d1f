// SPDX-License-Identifier: MIT

// Package chroma is a colour-science computation library: closed-form and
// tabulated formulas converting between colour representations, from
// spectral power distributions down to RGB pixels.
//
// What is in the box?
//
//	A pure-Go set of packages that work over arrays of any rank:
//		• Spectral data: SpectralShape, SPD, TriSPD and their interpolators
//		• Colorimetry: tristimulus integration, blackbody, illuminants,
//		  lightness, luminance, whiteness
//		• Chromatic adaptation: von Kries with a registry of cone-response matrices
//		• Colour models: xyY, Lab, Luv, UCS, UVW, IPT, HSV/HSL, CMY(K), HEX
//		• RGB colourspaces: normalised primary matrices, XYZ↔RGB, RGB↔RGB
//		• Transfer functions, colour differences (ΔE), CCT, Munsell values,
//		  Rayleigh scattering and gamut area
//		• ACES relative exposure values and the colour rendering index
//
// Under the hood the subpackages are:
//
//	ndarray/      N-D float64 arrays and the (-1, k) reshape contract
//	matrix/       Dense row-major matrices and linear-algebra kernels
//	spectral/     shapes, interpolators, extrapolator, SPD, TriSPD
//	dataset/      embedded read-only registries (CMFs, illuminants, CATs, colourspaces)
//	colorimetry/  tristimulus values and spectral sources
//	adaptation/   von Kries chromatic adaptation
//	models/       colour model and RGB colourspace conversions
//	transfer/     encoding / decoding curves
//	difference/   ΔE metrics
//	temperature/  correlated colour temperature
//	notation/     Munsell value
//	phenomena/    Rayleigh scattering
//	gamut/        gamut area
//	coordinates/  cartesian, spherical and cylindrical coordinates
//	quality/      colour rendering index
//
// Numeric policy:
//
//	Bulk array math never aborts on a degenerate element. Divide-by-zero and
//	invalid operations yield NaN or ±Inf in the output. Only hard domain
//	violations (ErrDomain), unknown registry names (ErrConfig) and malformed
//	shapes (ErrShape) are reported as errors.
//
//	go get github.com/katalvlaran/chroma
package chroma
