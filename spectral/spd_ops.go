// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Align returns a new SPD sampled exactly on shape.Range(). Existing
// samples are kept verbatim, the others are interpolated inside the
// sampled range and extrapolated outside it. The receiver is not mutated.
//
// Errors: evaluator construction errors (ErrInsufficientSamples, ErrNotUniform).
func (s *SPD) Align(shape SpectralShape) (*SPD, error) {
	rng := shape.Range()
	vals, err := s.Evaluate(rng...)
	if err != nil {
		return nil, spectralErrorf(opAlign, err)
	}
	d := make(map[float64]float64, len(rng))
	for i, w := range rng {
		d[w] = vals[i]
	}

	return s.derive(d), nil
}

// Interpolate returns a new SPD sampled on the wavelengths of shape.Range()
// that fall inside the current [min, max]. Samples outside it are dropped.
func (s *SPD) Interpolate(shape SpectralShape) (*SPD, error) {
	if s.Len() == 0 {
		return s.derive(map[float64]float64{}), nil
	}
	lo, hi := s.Shape().start, s.Shape().end
	var in []float64
	for _, w := range shape.Range() {
		if w >= lo && w <= hi {
			in = append(in, w)
		}
	}
	vals, err := s.Evaluate(in...)
	if err != nil {
		return nil, spectralErrorf(opAlign, err)
	}
	d := make(map[float64]float64, len(in))
	for i, w := range in {
		d[w] = vals[i]
	}

	return s.derive(d), nil
}

// Extrapolate returns a copy extended with the wavelengths of shape.Range()
// lying outside the current [min, max]; existing samples are kept.
func (s *SPD) Extrapolate(shape SpectralShape) (*SPD, error) {
	out := s.Clone()
	if s.Len() == 0 {
		return out, nil
	}
	lo, hi := s.Shape().start, s.Shape().end
	var ext []float64
	for _, w := range shape.Range() {
		if w < lo || w > hi {
			ext = append(ext, w)
		}
	}
	vals, err := s.Evaluate(ext...)
	if err != nil {
		return nil, spectralErrorf(opAlign, err)
	}
	for i, w := range ext {
		out.data[w] = vals[i]
	}

	return out, nil
}

// Trim returns the samples lying inside [shape.Start(), shape.End()].
func (s *SPD) Trim(shape SpectralShape) *SPD {
	d := make(map[float64]float64)
	for w, v := range s.data {
		if w >= shape.start && w <= shape.end {
			d[w] = v
		}
	}

	return s.derive(d)
}

// Zeros returns an SPD on shape.Range() where missing wavelengths are 0.
func (s *SPD) Zeros(shape SpectralShape) *SPD {
	rng := shape.Range()
	vals := s.GetOr(0, rng...)
	d := make(map[float64]float64, len(rng))
	for i, w := range rng {
		d[w] = vals[i]
	}

	return s.derive(d)
}

// Normalise scales the values so that the maximum equals factor. An SPD
// whose maximum is 0 yields NaN/Inf values.
func (s *SPD) Normalise(factor float64) *SPD {
	peak := math.Inf(-1)
	for _, v := range s.data {
		peak = math.Max(peak, v)
	}

	return s.MulScalar(factor / peak)
}

// binary combines two SPDs over identical wavelengths.
func (s *SPD) binary(o *SPD, f func(a, b float64) float64) (*SPD, error) {
	if !slices.Equal(s.sorted(), o.sorted()) {
		return nil, spectralErrorf(opArith, fmt.Errorf("%s vs %s: %w", s.Shape(), o.Shape(), ErrWavelengthMismatch))
	}
	d := make(map[float64]float64, len(s.data))
	for w, v := range s.data {
		d[w] = f(v, o.data[w])
	}

	return s.derive(d), nil
}

// scalar maps every value through f.
func (s *SPD) scalar(f func(a float64) float64) *SPD {
	d := make(map[float64]float64, len(s.data))
	for w, v := range s.data {
		d[w] = f(v)
	}

	return s.derive(d)
}

// Add returns s + o. Errors: ErrWavelengthMismatch.
func (s *SPD) Add(o *SPD) (*SPD, error) {
	return s.binary(o, func(a, b float64) float64 { return a + b })
}

// Sub returns s - o. Errors: ErrWavelengthMismatch.
func (s *SPD) Sub(o *SPD) (*SPD, error) {
	return s.binary(o, func(a, b float64) float64 { return a - b })
}

// Mul returns s · o. Errors: ErrWavelengthMismatch.
func (s *SPD) Mul(o *SPD) (*SPD, error) {
	return s.binary(o, func(a, b float64) float64 { return a * b })
}

// Div returns s / o; zero divisors give Inf/NaN. Errors: ErrWavelengthMismatch.
func (s *SPD) Div(o *SPD) (*SPD, error) {
	return s.binary(o, func(a, b float64) float64 { return a / b })
}

// AddScalar returns s + v.
func (s *SPD) AddScalar(v float64) *SPD { return s.scalar(func(a float64) float64 { return a + v }) }

// SubScalar returns s - v.
func (s *SPD) SubScalar(v float64) *SPD { return s.scalar(func(a float64) float64 { return a - v }) }

// MulScalar returns s · v.
func (s *SPD) MulScalar(v float64) *SPD { return s.scalar(func(a float64) float64 { return a * v }) }

// DivScalar returns s / v.
func (s *SPD) DivScalar(v float64) *SPD { return s.scalar(func(a float64) float64 { return a / v }) }
