// SPDX-License-Identifier: MIT

package difference

import "math"

// Default CMC weights (acceptability, 2:1).
const (
	DefaultCMCLightness = 2.0
	DefaultCMCChroma    = 1.0
)

const panicCMCWeights = "difference: WithCMCWeights: weights must be finite and > 0"

// Option mutates internal options.
type Option func(*Options)

// Options holds the parametric factors of the weighted formulas.
type Options struct {
	textiles bool
	l, c     float64
}

// DefaultOptions returns graphic-arts factors and CMC 2:1.
func DefaultOptions() Options {
	return Options{l: DefaultCMCLightness, c: DefaultCMCChroma}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTextiles selects the textiles parametric factors (k_L = 2) for CIE
// 1994 and CIE 2000.
func WithTextiles() Option {
	return func(o *Options) { o.textiles = true }
}

// WithCMCWeights sets the CMC lightness and chroma weights.
func WithCMCWeights(l, c float64) Option {
	if !(l > 0) || !(c > 0) || math.IsInf(l, 0) || math.IsInf(c, 0) {
		panic(panicCMCWeights)
	}

	return func(o *Options) { o.l, o.c = l, c }
}
