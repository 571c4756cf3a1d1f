// SPDX-License-Identifier: MIT

// Package dataset exposes the read-only reference tables of the library:
// colour-matching functions, illuminant SPDs and chromaticities, chromatic
// adaptation transforms and RGB colourspace definitions.
//
// The tables are YAML documents embedded with go:embed, decoded once on
// first use and kept immutable afterwards; lookups are safe for concurrent
// use. Names are matched case-insensitively (aliases included) and an
// unknown name fails with an error wrapping chroma.ErrConfig that lists the
// valid names in sorted order.
//
// Lookups returning mutable containers (SPD, TriSPD) hand out clones.
package dataset
