// SPDX-License-Identifier: MIT

package spectral

// splineMinSamples is the smallest grid CubicSpline is selected for.
const splineMinSamples = 3

// CubicSpline is a natural cubic spline (zero second derivative at both
// ends). It accepts irregular grids.
type CubicSpline struct {
	samples
	m []float64 // second derivatives at the knots
}

// NewCubicSpline solves the tridiagonal system for the knot second
// derivatives with the Thomas algorithm.
//
// Errors: ErrLengthMismatch, ErrInsufficientSamples (< 3), ErrUnsorted.
//
// Complexity: Time O(n), Space O(n).
func NewCubicSpline(x, y []float64) (*CubicSpline, error) {
	s, err := newSamples(opSpline, x, y, splineMinSamples)
	if err != nil {
		return nil, err
	}
	n := len(s.x)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = s.x[i+1] - s.x[i]
	}

	// Interior unknowns m[1..n-2]; diag b, super c, rhs d.
	k := n - 2
	b := make([]float64, k)
	c := make([]float64, k)
	d := make([]float64, k)
	for i := 0; i < k; i++ {
		b[i] = 2 * (h[i] + h[i+1])
		c[i] = h[i+1]
		d[i] = 6 * ((s.y[i+2]-s.y[i+1])/h[i+1] - (s.y[i+1]-s.y[i])/h[i])
	}
	for i := 1; i < k; i++ {
		w := h[i] / b[i-1] // sub-diagonal entry of row i is h[i]
		b[i] -= w * c[i-1]
		d[i] -= w * d[i-1]
	}
	m := make([]float64, n)
	m[k] = d[k-1] / b[k-1]
	for i := k - 2; i >= 0; i-- {
		m[i+1] = (d[i] - c[i]*m[i+2]) / b[i]
	}

	return &CubicSpline{samples: s, m: m}, nil
}

// Evaluate returns the spline value on the bracketing segment.
func (cs *CubicSpline) Evaluate(x float64) (float64, error) {
	pos, v, exact, err := cs.locate(opSpline, x)
	if err != nil || exact {
		return v, err
	}
	j := pos - 1
	x0, x1 := cs.x[j], cs.x[j+1]
	h := x1 - x0
	a, b := x1-x, x-x0

	return cs.m[j]*a*a*a/(6*h) + cs.m[j+1]*b*b*b/(6*h) +
		(cs.y[j]/h-cs.m[j]*h/6)*a + (cs.y[j+1]/h-cs.m[j+1]*h/6)*b, nil
}
