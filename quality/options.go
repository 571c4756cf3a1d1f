// SPDX-License-Identifier: MIT

package quality

import "github.com/katalvlaran/chroma/spectral"

const (
	// DefaultGeneralSamples is the number of leading samples averaged into Ra.
	DefaultGeneralSamples = 8

	// DaylightThreshold is the CCT (kelvin) from which the reference
	// illuminant is a CIE D-series illuminant instead of a blackbody.
	DaylightThreshold = 5000.0
)

// Options configures ColourRenderingIndex.
type Options struct {
	cmfs    *spectral.TriSPD
	basis   *spectral.TriSPD
	general int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the CIE 1931 2° observer (resolved on use), no
// daylight basis and eight general samples.
func DefaultOptions() Options {
	return Options{general: DefaultGeneralSamples}
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

// WithCMFs selects the colour-matching functions. Their shape is the
// integration grid.
func WithCMFs(cmfs *spectral.TriSPD) Option {
	if cmfs == nil {
		panic(panicNilCMFs)
	}

	return func(o *Options) { o.cmfs = cmfs }
}

// WithDaylightBasis supplies the S0, S1, S2 functions used to build the
// reference illuminant of sources at or above DaylightThreshold.
func WithDaylightBasis(basis *spectral.TriSPD) Option {
	return func(o *Options) { o.basis = basis }
}

// WithGeneralSamples sets how many leading samples are averaged into Ra.
// Lists shorter than n average all of their samples.
func WithGeneralSamples(n int) Option {
	if n <= 0 {
		panic(panicGeneralSamples)
	}

	return func(o *Options) { o.general = n }
}
