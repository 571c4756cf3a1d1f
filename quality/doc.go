// SPDX-License-Identifier: MIT

// Package quality rates light sources by the CIE 1995 colour rendering
// index.
//
// The test source is matched against a reference illuminant of the same
// correlated colour temperature (Robertson 1968): a Planckian radiator below
// 5000 K, a CIE D-series illuminant from 5000 K up. Each test colour sample
// is rendered under both, chromatically adapted in CIE 1960 UCS and compared
// in CIE 1964 U*V*W*:
//
//	Rᵢ = 100 − 4.6·ΔEᵢ      Ra = mean of the first eight Rᵢ
//
// Test colour samples and the D-series basis functions are supplied by the
// caller as spectral data.
package quality
