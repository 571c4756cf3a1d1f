// SPDX-License-Identifier: MIT

// Package spectral: functional configuration for SPD evaluation.
//
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, which resolves ...Option into Options.
//
// Notes:
//   - An SPD keeps its Options for life; Clone and derived SPDs inherit them.
//   - The same Options drive an Extrapolator built with NewExtrapolator.

package spectral

import "math"

// Method selects how an Extrapolator resolves out-of-domain queries.
type Method int

const (
	// MethodConstant returns the nearest edge value.
	MethodConstant Method = iota
	// MethodLinear projects along the two nearest edge samples.
	MethodLinear
)

// String returns the lower-case method name.
func (m Method) String() string {
	if m == MethodLinear {
		return "linear"
	}

	return "constant"
}

// Defaults.
const (
	// DefaultKind lets the SPD choose its evaluator from the samples.
	DefaultKind = KindAuto

	// DefaultMethod holds the edge values outside the sampled range.
	DefaultMethod = MethodConstant

	// DefaultTolerance is the abscissa match tolerance of KindNull.
	DefaultTolerance = 1e-7
)

const (
	panicKindInvalid      = "spectral: WithInterpolator: unknown kind"
	panicMethodInvalid    = "spectral: WithExtrapolatorMethod: unknown method"
	panicToleranceInvalid = "spectral: WithTolerance: tol must be finite, non-negative"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective evaluation configuration.
type Options struct {
	kind     Kind
	method   Method
	left     float64
	right    float64
	hasLeft  bool
	hasRight bool
	tol      float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{kind: DefaultKind, method: DefaultMethod, tol: DefaultTolerance}
}

// WithInterpolator forces the evaluator kind instead of automatic selection.
// Panics on an unknown kind.
func WithInterpolator(k Kind) Option {
	if _, ok := kindNames[k]; !ok {
		panic(panicKindInvalid)
	}

	return func(o *Options) { o.kind = k }
}

// WithExtrapolatorMethod sets the out-of-domain policy. Panics on an
// unknown method.
func WithExtrapolatorMethod(m Method) Option {
	if m != MethodConstant && m != MethodLinear {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithLeft overrides every value below the domain, for either method.
func WithLeft(v float64) Option {
	return func(o *Options) { o.left, o.hasLeft = v, true }
}

// WithRight overrides every value above the domain, for either method.
func WithRight(v float64) Option {
	return func(o *Options) { o.right, o.hasRight = v, true }
}

// WithTolerance sets the abscissa tolerance of the Null interpolator.
// Panics when tol is negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Kind returns the configured interpolator kind.
func (o Options) Kind() Kind { return o.kind }

// Method returns the configured extrapolation method.
func (o Options) Method() Method { return o.method }
