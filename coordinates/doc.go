// SPDX-License-Identifier: MIT

// Package coordinates converts (..., 3) arrays between cartesian, spherical
// and cylindrical coordinate systems. Angles are in radians.
//
//	spherical:   (r, θ, φ) with θ the elevation above the xy plane
//	cylindrical: (z, θ, ρ)
package coordinates
