// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/chroma"
)

// SPD is a spectral power distribution: a named map from wavelength (nm) to
// value, evaluated between samples by a cached Interpolator wrapped in an
// Extrapolator.
//
// Behavior highlights:
//   - Wavelengths() is always ascending; Values() runs parallel to it.
//   - Lookups by value (Get/At) are exact: no tolerance, no interpolation.
//   - Every Set* call invalidates the cached keys and evaluator.
//   - Derivation helpers (Align, Interpolate, Extrapolate, Trim, Zeros,
//     Normalise, arithmetic) return new SPDs and never mutate the receiver.
type SPD struct {
	name string
	data map[float64]float64
	opts Options

	keys []float64     // sorted wavelengths; nil when stale
	eval *Extrapolator // nil when stale
}

// NewSPD copies data into a new SPD.
func NewSPD(name string, data map[float64]float64, opts ...Option) *SPD {
	d := maps.Clone(data)
	if d == nil {
		d = map[float64]float64{}
	}

	return &SPD{name: name, data: d, opts: gatherOptions(opts...)}
}

// NewSPDFromSeries builds an SPD from parallel slices.
//
// Errors: ErrLengthMismatch.
func NewSPDFromSeries(name string, wl, values []float64, opts ...Option) (*SPD, error) {
	if len(wl) != len(values) {
		return nil, spectralErrorf(opSeries, fmt.Errorf("%d wavelengths, %d values: %w", len(wl), len(values), ErrLengthMismatch))
	}
	d := make(map[float64]float64, len(wl))
	for i, w := range wl {
		d[w] = values[i]
	}

	return &SPD{name: name, data: d, opts: gatherOptions(opts...)}, nil
}

// derive returns an SPD carrying s's name and options over new data.
func (s *SPD) derive(data map[float64]float64) *SPD {
	return &SPD{name: s.name, data: data, opts: s.opts}
}

// invalidate drops the cached keys and evaluator.
func (s *SPD) invalidate() {
	s.keys, s.eval = nil, nil
}

// Name returns the SPD name.
func (s *SPD) Name() string { return s.name }

// Options returns the evaluation configuration.
func (s *SPD) Options() Options { return s.opts }

// Len returns the number of samples.
func (s *SPD) Len() int { return len(s.data) }

// Clone returns a deep copy sharing no state with s.
func (s *SPD) Clone() *SPD { return s.derive(maps.Clone(s.data)) }

// sorted returns the cached ascending keys. Callers must not modify it.
func (s *SPD) sorted() []float64 {
	if s.keys == nil {
		keys := make([]float64, 0, len(s.data))
		for w := range s.data {
			keys = append(keys, w)
		}
		slices.Sort(keys)
		s.keys = keys
	}

	return s.keys
}

// Wavelengths returns the sample wavelengths in ascending order.
func (s *SPD) Wavelengths() []float64 { return slices.Clone(s.sorted()) }

// Values returns the sample values parallel to Wavelengths().
func (s *SPD) Values() []float64 {
	keys := s.sorted()
	out := make([]float64, len(keys))
	for i, w := range keys {
		out[i] = s.data[w]
	}

	return out
}

// Items returns the (wavelength, value) pairs in ascending order.
func (s *SPD) Items() [][2]float64 {
	keys := s.sorted()
	out := make([][2]float64, len(keys))
	for i, w := range keys {
		out[i] = [2]float64{w, s.data[w]}
	}

	return out
}

// Shape spans [min, max] with the minimum observed interval as step. A
// single sample gives step 1; an empty SPD gives the zero shape.
func (s *SPD) Shape() SpectralShape {
	keys := s.sorted()
	switch len(keys) {
	case 0:
		return SpectralShape{}
	case 1:
		return SpectralShape{start: keys[0], end: keys[0], step: 1}
	}
	step := math.Inf(1)
	for i := 1; i < len(keys); i++ {
		step = math.Min(step, keys[i]-keys[i-1])
	}

	return SpectralShape{start: keys[0], end: keys[len(keys)-1], step: step}
}

// IsUniform reports whether all sample intervals are equal.
func (s *SPD) IsUniform() bool { return isUniform(s.sorted()) }

// Contains reports whether every wavelength is an exact key.
func (s *SPD) Contains(wl ...float64) bool {
	for _, w := range wl {
		if _, ok := s.data[w]; !ok {
			return false
		}
	}

	return true
}

// Get returns the values at the given keys.
//
// Errors: ErrMissingWavelength (wraps chroma.ErrKeyNotFound) naming the first
// absent wavelength.
func (s *SPD) Get(wl ...float64) ([]float64, error) {
	out := make([]float64, len(wl))
	for i, w := range wl {
		v, ok := s.data[w]
		if !ok {
			return nil, wavelengthErrorf(opGet, w, ErrMissingWavelength)
		}
		out[i] = v
	}

	return out, nil
}

// At is the strict by-value accessor, identical to Get.
func (s *SPD) At(wl ...float64) ([]float64, error) { return s.Get(wl...) }

// GetOr returns the values at the given keys, def for absent ones.
func (s *SPD) GetOr(def float64, wl ...float64) []float64 {
	out := make([]float64, len(wl))
	for i, w := range wl {
		v, ok := s.data[w]
		if !ok {
			v = def
		}
		out[i] = v
	}

	return out
}

// Slice returns Values()[i:j] with out-of-range bounds clamped.
func (s *SPD) Slice(i, j int) []float64 {
	i, j = clampBounds(i, j, len(s.data))

	return s.Values()[i:j]
}

// clampBounds clamps [i, j) into [0, n] with i ≤ j.
func clampBounds(i, j, n int) (int, int) {
	i = min(max(i, 0), n)
	j = min(max(j, i), n)

	return i, j
}

// evaluator returns the cached evaluator, building it on first use.
func (s *SPD) evaluator() (*Extrapolator, error) {
	if s.eval != nil {
		return s.eval, nil
	}
	x, y := s.sorted(), s.Values()
	kind := s.opts.kind
	if kind == KindAuto {
		kind = SelectKind(len(x), isUniform(x))
		if kind != KindSprague {
			chroma.LoggerFor(chroma.LogClsSpectral).WithFields(
				l.StringField("spd", s.name),
				l.StringField("interpolator", kind.String()),
				l.StringField("samples", cast.ToString(len(x))),
			).Debug("sprague unavailable, falling back")
		}
	}
	in, err := NewInterpolator(kind, x, y, s.opts.tol)
	if err != nil {
		return nil, err
	}
	e, err := NewExtrapolator(in, func(o *Options) { *o = s.opts })
	if err != nil {
		return nil, err
	}
	s.eval = e

	return e, nil
}

// Evaluate returns exact samples verbatim and otherwise evaluates the cached
// interpolator/extrapolator. Out-of-domain wavelengths are extrapolated.
//
// Errors: ErrInsufficientSamples for an empty SPD, ErrNotUniform when
// Sprague is forced on an irregular grid.
func (s *SPD) Evaluate(wl ...float64) ([]float64, error) {
	out := make([]float64, len(wl))
	var e *Extrapolator
	var err error
	for i, w := range wl {
		if v, ok := s.data[w]; ok {
			out[i] = v
			continue
		}
		if e == nil {
			if e, err = s.evaluator(); err != nil {
				return nil, spectralErrorf(opEvaluate, err)
			}
		}
		if out[i], err = e.Evaluate(w); err != nil {
			return nil, spectralErrorf(opEvaluate, err)
		}
	}

	return out, nil
}

// Set assigns values to the given keys. A value sequence shorter than wl is
// repeated cyclically; a longer one is truncated.
//
// Errors: ErrLengthMismatch when values is empty but wl is not.
func (s *SPD) Set(wl []float64, values []float64) error {
	if len(wl) == 0 {
		return nil
	}
	if len(values) == 0 {
		return spectralErrorf(opSet, ErrLengthMismatch)
	}
	for i, w := range wl {
		s.data[w] = values[i%len(values)]
	}
	s.invalidate()

	return nil
}

// SetScalar assigns v to every given wavelength.
func (s *SPD) SetScalar(v float64, wl ...float64) {
	for _, w := range wl {
		s.data[w] = v
	}
	s.invalidate()
}

// SetSlice assigns values positionally to Wavelengths()[i:j] (bounds
// clamped), repeating values cyclically.
//
// Errors: ErrLengthMismatch when values is empty and the slice is not.
func (s *SPD) SetSlice(i, j int, values []float64) error {
	i, j = clampBounds(i, j, len(s.data))

	return s.Set(s.Wavelengths()[i:j], values)
}

// SetShape assigns values over shape.Range().
//
// Errors: ErrLengthMismatch when values is empty and the shape is not.
func (s *SPD) SetShape(shape SpectralShape, values []float64) error {
	return s.Set(shape.Range(), values)
}
