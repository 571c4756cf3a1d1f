// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Axes are the generic channel names of a TriSPD, in storage order.
var Axes = [3]string{"x", "y", "z"}

// TriSPD is three SPDs over identical wavelengths, typically colour-matching
// functions labelled x_bar, y_bar, z_bar. Stacked results are row-major
// (n, 3): wavelength-major, channel-minor.
type TriSPD struct {
	name   string
	labels [3]string
	ch     [3]*SPD
}

// NewTriSPD builds a TriSPD from three maps. opts apply to every channel.
//
// Errors: ErrWavelengthMismatch when the maps do not share their keys.
func NewTriSPD(name string, labels [3]string, x, y, z map[float64]float64, opts ...Option) (*TriSPD, error) {
	t := &TriSPD{name: name, labels: labels}
	for i, m := range [3]map[float64]float64{x, y, z} {
		t.ch[i] = NewSPD(name+"."+labels[i], m, opts...)
	}
	ref := t.ch[0].sorted()
	for _, c := range t.ch[1:] {
		if !slices.Equal(ref, c.sorted()) {
			return nil, spectralErrorf(opTriNew, ErrWavelengthMismatch)
		}
	}

	return t, nil
}

// NewTriSPDFromRows builds a TriSPD from wavelengths and (n, 3) row-major values.
//
// Errors: ErrLengthMismatch when len(values) != 3·len(wl).
func NewTriSPDFromRows(name string, labels [3]string, wl, values []float64, opts ...Option) (*TriSPD, error) {
	if len(values) != 3*len(wl) {
		return nil, spectralErrorf(opTriNew, fmt.Errorf("%d wavelengths, %d values: %w", len(wl), len(values), ErrLengthMismatch))
	}
	var m [3]map[float64]float64
	for c := range m {
		m[c] = make(map[float64]float64, len(wl))
		for i, w := range wl {
			m[c][w] = values[3*i+c]
		}
	}

	return NewTriSPD(name, labels, m[0], m[1], m[2], opts...)
}

// Name returns the TriSPD name.
func (t *TriSPD) Name() string { return t.name }

// Labels returns the channel labels.
func (t *TriSPD) Labels() [3]string { return t.labels }

// Channel returns the SPD for an axis ("x", "y", "z") or a label, matched
// case-insensitively. The returned SPD is shared, not copied.
//
// Errors: ErrUnknownAxis (wraps chroma.ErrConfig).
func (t *TriSPD) Channel(axis string) (*SPD, error) {
	key := strings.ToLower(axis)
	for i := range Axes {
		if key == Axes[i] || key == strings.ToLower(t.labels[i]) {
			return t.ch[i], nil
		}
	}

	return nil, spectralErrorf(opTriChannel, fmt.Errorf("%q: %w", axis, ErrUnknownAxis))
}

// Channels returns the three SPDs in axis order.
func (t *TriSPD) Channels() [3]*SPD { return t.ch }

// Len returns the number of wavelengths.
func (t *TriSPD) Len() int { return t.ch[0].Len() }

// Wavelengths returns the shared wavelengths, ascending.
func (t *TriSPD) Wavelengths() []float64 { return t.ch[0].Wavelengths() }

// Shape returns the shared spectral shape.
func (t *TriSPD) Shape() SpectralShape { return t.ch[0].Shape() }

// IsUniform reports whether the shared grid is uniform.
func (t *TriSPD) IsUniform() bool { return t.ch[0].IsUniform() }

// Contains reports whether every wavelength is an exact key.
func (t *TriSPD) Contains(wl ...float64) bool { return t.ch[0].Contains(wl...) }

// stack interleaves three per-channel results into (n, 3).
func stack(cols [3][]float64) []float64 {
	n := len(cols[0])
	out := make([]float64, 3*n)
	for i := 0; i < n; i++ {
		out[3*i], out[3*i+1], out[3*i+2] = cols[0][i], cols[1][i], cols[2][i]
	}

	return out
}

// Values returns the samples as (n, 3) row-major values.
func (t *TriSPD) Values() []float64 {
	return stack([3][]float64{t.ch[0].Values(), t.ch[1].Values(), t.ch[2].Values()})
}

// Get returns the stacked values at exact keys.
//
// Errors: ErrMissingWavelength.
func (t *TriSPD) Get(wl ...float64) ([]float64, error) {
	var cols [3][]float64
	for i, c := range t.ch {
		v, err := c.Get(wl...)
		if err != nil {
			return nil, err
		}
		cols[i] = v
	}

	return stack(cols), nil
}

// GetOr returns the stacked values, def for absent keys.
func (t *TriSPD) GetOr(def float64, wl ...float64) []float64 {
	return stack([3][]float64{t.ch[0].GetOr(def, wl...), t.ch[1].GetOr(def, wl...), t.ch[2].GetOr(def, wl...)})
}

// Evaluate returns stacked per-channel evaluations.
func (t *TriSPD) Evaluate(wl ...float64) ([]float64, error) {
	var cols [3][]float64
	for i, c := range t.ch {
		v, err := c.Evaluate(wl...)
		if err != nil {
			return nil, spectralErrorf(opTriEvaluate, err)
		}
		cols[i] = v
	}

	return stack(cols), nil
}

// Set assigns (n, 3) row-major values to the keys wl. values is repeated
// cyclically to length 3·len(wl), so a single triple sets every key.
//
// Errors: ErrLengthMismatch when values is empty but wl is not.
func (t *TriSPD) Set(wl []float64, values []float64) error {
	if len(wl) == 0 {
		return nil
	}
	if len(values) == 0 {
		return spectralErrorf(opTriSet, ErrLengthMismatch)
	}
	for c, ch := range t.ch {
		col := make([]float64, len(wl))
		for i := range wl {
			col[i] = values[(3*i+c)%len(values)]
		}
		if err := ch.Set(wl, col); err != nil {
			return spectralErrorf(opTriSet, err)
		}
	}

	return nil
}

// Align returns a new TriSPD with every channel aligned onto shape.
func (t *TriSPD) Align(shape SpectralShape) (*TriSPD, error) {
	out := &TriSPD{name: t.name, labels: t.labels}
	for i, c := range t.ch {
		a, err := c.Align(shape)
		if err != nil {
			return nil, err
		}
		out.ch[i] = a
	}

	return out, nil
}

// Clone returns a deep copy.
func (t *TriSPD) Clone() *TriSPD {
	out := &TriSPD{name: t.name, labels: t.labels}
	for i, c := range t.ch {
		out.ch[i] = c.Clone()
	}

	return out
}
