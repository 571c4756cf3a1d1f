// SPDX-License-Identifier: MIT

package models

import "github.com/katalvlaran/chroma/ndarray"

// DefaultIlluminantXY is CIE 1931 2° D50.
var DefaultIlluminantXY = [2]float64{0.34570, 0.35850}

const panicNilIlluminants = "models: WithIlluminants: nil array"

// Option mutates internal options.
type Option func(*Options)

// Options holds the effective configuration of a transform.
type Options struct {
	illum  *ndarray.Array // (..., 2)
	curves bool
}

// DefaultOptions returns the defaults: D50 and no transfer functions.
func DefaultOptions() Options {
	return Options{illum: ndarray.Vector(DefaultIlluminantXY[:]...)}
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

// WithIlluminantXY sets a single reference white chromaticity.
func WithIlluminantXY(xy [2]float64) Option {
	return func(o *Options) { o.illum = ndarray.Vector(xy[:]...) }
}

// WithIlluminants sets per-row reference whites of shape (..., 2); the
// leading shape must match the input or hold a single pair.
func WithIlluminants(xy *ndarray.Array) Option {
	if xy == nil {
		panic(panicNilIlluminants)
	}

	return func(o *Options) { o.illum = xy }
}

// WithCurves makes RGBToRGB decode its input with the source colourspace
// curve and encode its output with the target curve.
func WithCurves() Option {
	return func(o *Options) { o.curves = true }
}
