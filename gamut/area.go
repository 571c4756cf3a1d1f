// SPDX-License-Identifier: MIT

package gamut

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chroma/ndarray"
)

const opGamutArea = "GamutArea"

// GamutArea returns the area of the polygon traced by the a*b* components of
// Lab (..., 3), taken in row-major order and closed back to the first
// point. It sums Heron's formula over the triangles formed by the origin and
// each pair of consecutive points; L* is ignored.
//
// Errors: ndarray.ErrChannels.
// Complexity: O(N).
func GamutArea(Lab *ndarray.Array) (float64, error) {
	if Lab.Ndim() == 0 || Lab.Channels() != 3 {
		return 0, fmt.Errorf("%s: shape %v: %w", opGamutArea, Lab.Shape(), ndarray.ErrChannels)
	}
	data := Lab.Data()
	n := len(data) / 3
	var S float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := data[3*i+1], data[3*i+2]
		as, bs := data[3*j+1], data[3*j+2]
		A := math.Hypot(a, b)
		B := math.Hypot(as, bs)
		C := math.Hypot(as-a, bs-b)
		t := (A + B + C) / 2
		S += math.Sqrt(t * (t - A) * (t - B) * (t - C))
	}

	return S, nil
}
