// SPDX-License-Identifier: MIT

// Package temperature converts between CIE 1931 xy chromaticity and
// correlated colour temperature (CCT, kelvin).
//
// xy→CCT: McCamy (1992) and Hernández-Andrés et al. (1999).
// CCT→xy: Kang et al. (2002) and the CIE D-series locus.
//
// The CCT→xy polynomials have recommended domains. Values outside them are
// still evaluated; a warning is logged through chroma.Logger().
package temperature
