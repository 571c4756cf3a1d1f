// SPDX-License-Identifier: MIT

// Package spectral provides the spectral containers of the library and the
// numerical machinery that evaluates them between samples.
//
// What:
//
//   - SpectralShape: an immutable (start, end, step) wavelength grid in nm.
//   - Interpolator implementations: Linear, CubicSpline (natural), Sprague
//     (CIE 167:2005) and Null, created directly or through NewInterpolator.
//   - Extrapolator: wraps an Interpolator so that out-of-domain queries
//     resolve to a constant or a linear projection instead of failing.
//   - SPD: a named wavelength→value map with lazy, cached evaluation.
//   - TriSPD: three SPDs sharing wavelengths (colour-matching functions).
//
// Index asymmetry:
//
//	SPD lookups are by wavelength VALUE (Get, GetOr, At, Evaluate, Set) while
//	Slice/SetSlice address the sorted samples by POSITION. The two families
//	are kept as separately named operations.
//
// Evaluator selection (KindAuto):
//
//	uniform grid, ≥ 6 samples  → Sprague
//	otherwise, ≥ 3 samples      → CubicSpline
//	otherwise                   → Linear
//
// Determinism:
//   - Samples are always processed in ascending wavelength order; map iteration
//     order never leaks into results.
//
// Concurrency:
//   - SpectralShape and the interpolators are immutable and safe to share.
//   - SPD/TriSPD cache their evaluator; concurrent use of one instance needs
//     external synchronisation.
package spectral
