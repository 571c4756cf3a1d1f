// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// Interpolator evaluates a tabulated function between its samples.
//
// Contract:
//   - Evaluate fails with ErrOutOfDomain outside Domain().
//   - A query equal to a sample abscissa returns that sample value verbatim.
//   - A NaN query yields NaN without error.
type Interpolator interface {
	Evaluate(x float64) (float64, error)
	Domain() (lo, hi float64)
}

// Sampled is implemented by interpolators that expose their samples. The
// Extrapolator uses it for linear edge projection.
type Sampled interface {
	Samples() (x, y []float64)
}

// Kind enumerates the interpolation methods.
type Kind int

const (
	// KindAuto selects Sprague, CubicSpline or Linear from the samples.
	KindAuto Kind = iota
	KindLinear
	KindCubicSpline
	KindSprague
	KindNull
)

var kindNames = map[Kind]string{
	KindAuto:        "auto",
	KindLinear:      "linear",
	KindCubicSpline: "cubic spline",
	KindSprague:     "sprague",
	KindNull:        "null",
}

// String returns the lower-case method name.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a method name case-insensitively.
//
// Errors: ErrUnknownKind (wraps chroma.ErrConfig) listing the valid names.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	names := make([]string, 0, len(kindNames))
	for k, n := range kindNames {
		if n == key {
			return k, nil
		}
		names = append(names, n)
	}
	slices.Sort(names)

	return KindAuto, spectralErrorf(opParseKind, fmt.Errorf("%q not in [%s]: %w", name, strings.Join(names, ", "), ErrUnknownKind))
}

// SelectKind picks the evaluator for n samples on a uniform or irregular grid.
func SelectKind(n int, uniform bool) Kind {
	switch {
	case uniform && n >= spragueMinSamples:
		return KindSprague
	case n >= splineMinSamples:
		return KindCubicSpline
	default:
		return KindLinear
	}
}

// NewInterpolator builds an interpolator of the given kind. KindAuto is
// resolved with SelectKind. tol is used by KindNull only.
func NewInterpolator(kind Kind, x, y []float64, tol float64) (Interpolator, error) {
	if kind == KindAuto {
		kind = SelectKind(len(x), isUniform(x))
	}
	switch kind {
	case KindLinear:
		return NewLinear(x, y)
	case KindCubicSpline:
		return NewCubicSpline(x, y)
	case KindSprague:
		return NewSprague(x, y)
	case KindNull:
		return NewNull(x, y, tol, math.NaN())
	default:
		return nil, spectralErrorf(opNewInterp, fmt.Errorf("%v: %w", kind, ErrUnknownKind))
	}
}

// samples holds validated, owned abscissae and ordinates.
type samples struct {
	x, y []float64
}

// newSamples copies and validates parallel slices: equal lengths, at least
// minN values and strictly increasing x.
func newSamples(tag string, x, y []float64, minN int) (samples, error) {
	if len(x) != len(y) {
		return samples{}, spectralErrorf(tag, fmt.Errorf("%d abscissae, %d ordinates: %w", len(x), len(y), ErrLengthMismatch))
	}
	if len(x) < minN {
		return samples{}, spectralErrorf(tag, fmt.Errorf("need %d, got %d: %w", minN, len(x), ErrInsufficientSamples))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return samples{}, spectralErrorf(tag, ErrUnsorted)
		}
	}

	return samples{x: slices.Clone(x), y: slices.Clone(y)}, nil
}

// Domain returns [x0, xn].
func (s samples) Domain() (lo, hi float64) { return s.x[0], s.x[len(s.x)-1] }

// Samples returns copies of the abscissae and ordinates.
func (s samples) Samples() (x, y []float64) { return slices.Clone(s.x), slices.Clone(s.y) }

// locate checks the domain and resolves exact hits. When exact is true, v
// is the sample value; otherwise pos is the insertion index of x (1..n-1).
func (s samples) locate(tag string, x float64) (pos int, v float64, exact bool, err error) {
	if math.IsNaN(x) {
		return 0, math.NaN(), true, nil
	}
	lo, hi := s.Domain()
	if x < lo || x > hi {
		return 0, 0, false, wavelengthErrorf(tag, x, ErrOutOfDomain)
	}
	pos, found := slices.BinarySearch(s.x, x)
	if found {
		return pos, s.y[pos], true, nil
	}

	return pos, 0, false, nil
}

// isUniform reports whether all intervals of the sorted x are equal within
// a relative tolerance.
func isUniform(x []float64) bool {
	if len(x) < 3 {
		return true
	}
	h := x[1] - x[0]
	tol := uniformTolerance * math.Max(math.Abs(h), 1)
	for i := 2; i < len(x); i++ {
		if math.Abs((x[i]-x[i-1])-h) > tol {
			return false
		}
	}

	return true
}

// uniformTolerance is the relative slack allowed between sample intervals.
const uniformTolerance = 1e-9

// Linear is two-point weighted interpolation. It accepts irregular grids and
// a single sample (a point domain).
type Linear struct {
	samples
}

// NewLinear copies x and y.
//
// Errors: ErrLengthMismatch, ErrInsufficientSamples (empty), ErrUnsorted.
func NewLinear(x, y []float64) (*Linear, error) {
	s, err := newSamples(opLinear, x, y, 1)
	if err != nil {
		return nil, err
	}

	return &Linear{samples: s}, nil
}

// Evaluate returns the weighted mean of the bracketing samples.
func (li *Linear) Evaluate(x float64) (float64, error) {
	pos, v, exact, err := li.locate(opLinear, x)
	if err != nil || exact {
		return v, err
	}
	x0, x1 := li.x[pos-1], li.x[pos]
	t := (x - x0) / (x1 - x0)

	return li.y[pos-1]*(1-t) + li.y[pos]*t, nil
}

// Null returns the sample value when x lies within tol of a sample abscissa
// and a default value otherwise.
type Null struct {
	samples
	tol float64
	def float64
}

// NewNull copies x and y.
//
// Errors: ErrLengthMismatch, ErrInsufficientSamples (empty), ErrUnsorted.
func NewNull(x, y []float64, tol, def float64) (*Null, error) {
	s, err := newSamples(opNull, x, y, 1)
	if err != nil {
		return nil, err
	}

	return &Null{samples: s, tol: tol, def: def}, nil
}

// Evaluate returns a sample value or the default.
func (nu *Null) Evaluate(x float64) (float64, error) {
	pos, v, exact, err := nu.locate(opNull, x)
	if err != nil || exact {
		return v, err
	}
	// pos is in [1, n-1]: compare against both neighbours.
	if math.Abs(x-nu.x[pos-1]) <= nu.tol {
		return nu.y[pos-1], nil
	}
	if math.Abs(nu.x[pos]-x) <= nu.tol {
		return nu.y[pos], nil
	}

	return nu.def, nil
}
