// SPDX-License-Identifier: MIT

package spectral

import "golang.org/x/exp/slices"

// spragueMinSamples is the minimum grid size: the boundary extension reads
// six samples at each end.
const spragueMinSamples = 6

// spragueBoundary holds the CIE 167:2005 coefficients (÷209) that extend the
// grid by two points before x0 and two after xn.
var spragueBoundary = [4][6]float64{
	{884, -1960, 3033, -2648, 1080, -180},
	{508, -540, 488, -367, 144, -24},
	{-24, 144, -367, 488, -540, 508},
	{-180, 1080, -2648, 3033, -1960, 884},
}

// Sprague is the fifth-order interpolator recommended by CIE 167:2005 for
// uniformly spaced spectral data.
//
// Implementation:
//   - Stage 1: extend the ordinates with two boundary points per side.
//   - Stage 2: on the segment [r_i, r_i+1] evaluate the quintic
//     a0 + a1·X + … + a5·X⁵, X = (x - x_i)/h, from r_i-2 … r_i+3.
//
// Determinism: fixed coefficient order; no allocations in Evaluate.
type Sprague struct {
	samples
	h  float64
	yp []float64 // extended ordinates; yp[k+2] == y[k]
}

// NewSprague validates and extends the samples.
//
// Errors: ErrLengthMismatch, ErrInsufficientSamples (< 6), ErrUnsorted,
// ErrNotUniform.
func NewSprague(x, y []float64) (*Sprague, error) {
	s, err := newSamples(opSprague, x, y, spragueMinSamples)
	if err != nil {
		return nil, err
	}
	if !isUniform(s.x) {
		return nil, spectralErrorf(opSprague, ErrNotUniform)
	}
	n := len(s.y)
	head, tail := s.y[:6], s.y[n-6:]
	ext := func(c [6]float64, v []float64) float64 {
		acc := 0.0
		for i := range c {
			acc += c[i] * v[i]
		}

		return acc / 209
	}
	yp := make([]float64, 0, n+4)
	yp = append(yp, ext(spragueBoundary[0], head), ext(spragueBoundary[1], head))
	yp = append(yp, s.y...)
	yp = append(yp, ext(spragueBoundary[2], tail), ext(spragueBoundary[3], tail))

	return &Sprague{samples: s, h: s.x[1] - s.x[0], yp: yp}, nil
}

// Evaluate returns the Sprague quintic on the bracketing segment.
func (sp *Sprague) Evaluate(x float64) (float64, error) {
	pos, v, exact, err := sp.locate(opSprague, x)
	if err != nil || exact {
		return v, err
	}
	j := pos - 1 // segment start in the original grid
	i := j + 2   // same sample in the extended grid
	r := sp.yp[i-2 : i+4]
	X := (x - sp.x[j]) / sp.h

	a0 := r[2]
	a1 := (2*r[0] - 16*r[1] + 16*r[3] - 2*r[4]) / 24
	a2 := (-r[0] + 16*r[1] - 30*r[2] + 16*r[3] - r[4]) / 24
	a3 := (-9*r[0] + 39*r[1] - 70*r[2] + 66*r[3] - 33*r[4] + 7*r[5]) / 24
	a4 := (13*r[0] - 64*r[1] + 126*r[2] - 124*r[3] + 61*r[4] - 12*r[5]) / 24
	a5 := (-5*r[0] + 25*r[1] - 50*r[2] + 50*r[3] - 25*r[4] + 5*r[5]) / 24

	return a0 + X*(a1+X*(a2+X*(a3+X*(a4+X*a5)))), nil
}

// Extended returns a copy of the boundary-extended ordinates.
func (sp *Sprague) Extended() []float64 { return slices.Clone(sp.yp) }
