// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// rangeSlack absorbs floating-point error in (end-start)/step so that the
// last grid point is not lost to a quotient like 9.999999999998.
const rangeSlack = 1e-9

// SpectralShape is an immutable wavelength grid: start, end and step in nm.
// The zero value is the empty shape (Len 0).
type SpectralShape struct {
	start, end, step float64
}

// NewSpectralShape validates and returns a shape.
//
// Errors: ErrInvalidShape (wraps chroma.ErrDomain) when step ≤ 0, start > end
// or any bound is NaN/Inf.
func NewSpectralShape(start, end, step float64) (SpectralShape, error) {
	for _, v := range []float64{start, end, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return SpectralShape{}, spectralErrorf(opShape, ErrInvalidShape)
		}
	}
	if step <= 0 {
		return SpectralShape{}, spectralErrorf(opShape, fmt.Errorf("step %g: %w", step, ErrInvalidShape))
	}
	if start > end {
		return SpectralShape{}, spectralErrorf(opShape, fmt.Errorf("start %g > end %g: %w", start, end, ErrInvalidShape))
	}

	return SpectralShape{start: start, end: end, step: step}, nil
}

// MustSpectralShape is NewSpectralShape for literal grids; it panics on error.
func MustSpectralShape(start, end, step float64) SpectralShape {
	s, err := NewSpectralShape(start, end, step)
	if err != nil {
		panic(err)
	}

	return s
}

// Start returns the first wavelength.
func (s SpectralShape) Start() float64 { return s.start }

// End returns the upper bound (not necessarily on the grid).
func (s SpectralShape) End() float64 { return s.end }

// Step returns the grid interval.
func (s SpectralShape) Step() float64 { return s.step }

// Len returns the number of wavelengths produced by Range.
func (s SpectralShape) Len() int {
	if s.step <= 0 {
		return 0
	}

	return int(math.Floor((s.end-s.start)/s.step+rangeSlack)) + 1
}

// Range returns start + i·step for every i whose value does not exceed end.
// The count is truncated, never rounded up: (400, 405, 2) gives 400, 402, 404.
func (s SpectralShape) Range() []float64 {
	n := s.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = s.start + float64(i)*s.step
	}

	return out
}

// Contains reports whether every wavelength is exactly an element of Range().
// It is true for an empty argument list.
func (s SpectralShape) Contains(wl ...float64) bool {
	rng := s.Range()
	for _, w := range wl {
		if _, ok := slices.BinarySearch(rng, w); !ok {
			return false
		}
	}

	return true
}

// Equal reports whether both shapes have identical bounds and step.
func (s SpectralShape) Equal(o SpectralShape) bool {
	return s.start == o.start && s.end == o.end && s.step == o.step
}

// String renders "(start, end, step)".
func (s SpectralShape) String() string {
	return fmt.Sprintf("(%g, %g, %g)", s.start, s.end, s.step)
}

// DefaultShape is the 360–830 nm grid at 1 nm used when no shape is given.
var DefaultShape = SpectralShape{start: 360, end: 830, step: 1}
