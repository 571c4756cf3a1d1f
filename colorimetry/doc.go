// SPDX-License-Identifier: MIT

// Package colorimetry implements the spectral side of the library:
// tristimulus integration against colour-matching functions, Planck's law
// and blackbody SPDs, CIE illuminant A and the CIE D series, lightness and
// luminance functions and whiteness indices.
//
// Array functions take *ndarray.Array values and follow the (-1, k)
// contract: per-colour scalars (lightness, whiteness) drop the channel
// dimension, per-colour vectors (Ganz/CIE 2004 W,T) keep the leading shape.
//
// Warnings for recommended-domain violations go through chroma.Logger()
// and never change the result.
package colorimetry
