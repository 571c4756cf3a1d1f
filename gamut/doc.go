// SPDX-License-Identifier: MIT

// Package gamut measures the a*b* area enclosed by a closed polygon of
// CIE L*a*b* colours, as used by colour-quality scales.
package gamut
