// SPDX-License-Identifier: MIT

package colorimetry

import "math"

// Defaults.
const (
	// DefaultC1 is the first radiation constant c1 = 2πhc² in W·m².
	DefaultC1 = 3.741771e-16

	// DefaultC2 is the second radiation constant c2 = hc/k in m·K.
	DefaultC2 = 1.4388e-2

	// DefaultRefractiveIndex is the medium index n in Planck's law.
	DefaultRefractiveIndex = 1.0

	// DefaultReferenceLuminance is the Y of the reference white, Yn.
	DefaultReferenceLuminance = 100.0
)

const (
	panicNormalisation = "colorimetry: WithNormalisation: k must be finite"
	panicConstants     = "colorimetry: WithRadiationConstants: c1 and c2 must be finite, positive"
	panicIndex         = "colorimetry: WithRefractiveIndex: n must be finite, positive"
	panicReference     = "colorimetry: WithReferenceLuminance: Yn must be finite, positive"
)

// Option mutates internal options.
type Option func(*Options)

// Options holds the effective configuration of a call.
type Options struct {
	k       float64
	hasK    bool
	c1, c2  float64
	n       float64
	yn      float64
	noRound bool
}

func gatherOptions(opts ...Option) Options {
	o := Options{c1: DefaultC1, c2: DefaultC2, n: DefaultRefractiveIndex, yn: DefaultReferenceLuminance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// WithNormalisation replaces the tristimulus factor k = 100/ΣEȳΔλ.
func WithNormalisation(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		panic(panicNormalisation)
	}

	return func(o *Options) { o.k, o.hasK = k, true }
}

// WithRadiationConstants overrides c1 and c2 of Planck's law.
func WithRadiationConstants(c1, c2 float64) Option {
	if !finitePositive(c1) || !finitePositive(c2) {
		panic(panicConstants)
	}

	return func(o *Options) { o.c1, o.c2 = c1, c2 }
}

// WithRefractiveIndex sets the medium refractive index n of Planck's law.
func WithRefractiveIndex(n float64) Option {
	if !finitePositive(n) {
		panic(panicIndex)
	}

	return func(o *Options) { o.n = n }
}

// WithReferenceLuminance sets Yn for CIE 1976 lightness and luminance.
func WithReferenceLuminance(yn float64) Option {
	if !finitePositive(yn) {
		panic(panicReference)
	}

	return func(o *Options) { o.yn = yn }
}

// WithoutM1M2Rounding keeps the D-series M1/M2 factors unrounded.
func WithoutM1M2Rounding() Option {
	return func(o *Options) { o.noRound = true }
}
