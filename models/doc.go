// SPDX-License-Identifier: MIT

// Package models converts between colour representations: CIE xyY, Lab,
// Luv, UCS and UVW, IPT, the RGB-derived HSV/HSL/CMY/CMYK/HEX forms, and
// RGB colourspaces defined by primaries and a whitepoint.
//
// Every array transform takes a *ndarray.Array whose trailing dimension is
// the channel count of its input model and returns the same leading shape
// with the channel count of the output model: a single colour (3), a batch
// (N, 3) and an image (H, W, 3) go through the same code.
//
// Chromaticity-relative transforms (xyY, Lab, Luv, UVW) default to the CIE
// 1931 2° D50 whitepoint and accept WithIlluminantXY or, for per-row
// whites, WithIlluminants.
//
// Degenerate inputs never fail: xyY with y = 0 maps to black, black XYZ
// maps to the illuminant chromaticity, and divisions by zero elsewhere
// propagate as NaN or Inf.
package models
