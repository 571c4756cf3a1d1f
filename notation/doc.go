// SPDX-License-Identifier: MIT

// Package notation computes the Munsell value V in [0, 10] of luminance Y in
// [0, 100] by the classic empirical formulas and by inverting the ASTM
// D1535-08 quintic.
//
// The ASTM D1535-08 inverse is a table of 10000 samples behind a linear
// interpolator. It is built on first use and kept for the life of the
// process; concurrent callers share it.
package notation
