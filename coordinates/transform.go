// SPDX-License-Identifier: MIT

package coordinates

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chroma/ndarray"
)

func mapVec(tag string, a *ndarray.Array, f func(dst, v []float64)) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(a, 3, 3, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return out, nil
}

// CartesianToSpherical maps (x, y, z) to (r, θ, φ).
//
// Errors: ndarray.ErrChannels.
func CartesianToSpherical(xyz *ndarray.Array) (*ndarray.Array, error) {
	return mapVec("CartesianToSpherical", xyz, func(dst, v []float64) {
		rho := math.Hypot(v[0], v[1])
		dst[0] = math.Hypot(rho, v[2])
		dst[1] = math.Atan2(v[2], rho)
		dst[2] = math.Atan2(v[1], v[0])
	})
}

// SphericalToCartesian maps (r, θ, φ) to (x, y, z).
//
// Errors: ndarray.ErrChannels.
func SphericalToCartesian(rtp *ndarray.Array) (*ndarray.Array, error) {
	return mapVec("SphericalToCartesian", rtp, func(dst, v []float64) {
		st, ct := math.Sincos(v[1])
		sp, cp := math.Sincos(v[2])
		dst[0] = v[0] * ct * cp
		dst[1] = v[0] * ct * sp
		dst[2] = v[0] * st
	})
}

// CartesianToCylindrical maps (x, y, z) to (z, θ, ρ).
//
// Errors: ndarray.ErrChannels.
func CartesianToCylindrical(xyz *ndarray.Array) (*ndarray.Array, error) {
	return mapVec("CartesianToCylindrical", xyz, func(dst, v []float64) {
		dst[0] = v[2]
		dst[1] = math.Atan2(v[1], v[0])
		dst[2] = math.Hypot(v[0], v[1])
	})
}

// CylindricalToCartesian maps (z, θ, ρ) to (x, y, z).
//
// Errors: ndarray.ErrChannels.
func CylindricalToCartesian(ztr *ndarray.Array) (*ndarray.Array, error) {
	return mapVec("CylindricalToCartesian", ztr, func(dst, v []float64) {
		s, c := math.Sincos(v[1])
		dst[0] = v[2] * c
		dst[1] = v[2] * s
		dst[2] = v[0]
	})
}
