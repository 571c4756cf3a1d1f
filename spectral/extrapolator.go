// SPDX-License-Identifier: MIT

package spectral

import "math"

// Extrapolator extends an Interpolator beyond its domain. Inside the domain
// it delegates; outside it never fails.
//
// Behavior highlights:
//   - MethodConstant: the edge value f(x0) or f(xn).
//   - MethodLinear: projection through the two nearest edge samples. An
//     interpolator that does not implement Sampled, or has a single
//     sample, falls back to the constant edge value.
//   - WithLeft/WithRight override the respective side for either method.
type Extrapolator struct {
	in   Interpolator
	opts Options

	lo, hi           float64
	loVal, hiVal     float64
	loSlope, hiSlope float64
}

// NewExtrapolator wraps in. Only the method and Left/Right options apply.
func NewExtrapolator(in Interpolator, opts ...Option) (*Extrapolator, error) {
	e := &Extrapolator{in: in, opts: gatherOptions(opts...)}
	e.lo, e.hi = in.Domain()
	var err error
	if e.loVal, err = in.Evaluate(e.lo); err != nil {
		return nil, err
	}
	if e.hiVal, err = in.Evaluate(e.hi); err != nil {
		return nil, err
	}
	if s, ok := in.(Sampled); ok {
		x, y := s.Samples()
		if n := len(x); n >= 2 {
			e.loSlope = (y[1] - y[0]) / (x[1] - x[0])
			e.hiSlope = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])
		}
	}

	return e, nil
}

// Domain returns the wrapped domain. Evaluate accepts any x.
func (e *Extrapolator) Domain() (lo, hi float64) { return e.lo, e.hi }

// Interpolator returns the wrapped interpolator.
func (e *Extrapolator) Interpolator() Interpolator { return e.in }

// Evaluate returns f(x) inside the domain and the extrapolated value outside.
func (e *Extrapolator) Evaluate(x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return math.NaN(), nil
	case x < e.lo:
		if e.opts.hasLeft {
			return e.opts.left, nil
		}
		if e.opts.method == MethodLinear {
			return e.loVal + (x-e.lo)*e.loSlope, nil
		}

		return e.loVal, nil
	case x > e.hi:
		if e.opts.hasRight {
			return e.opts.right, nil
		}
		if e.opts.method == MethodLinear {
			return e.hiVal + (x-e.hi)*e.hiSlope, nil
		}

		return e.hiVal, nil
	default:
		return e.in.Evaluate(x)
	}
}
