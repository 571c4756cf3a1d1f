// SPDX-License-Identifier: MIT

package phenomena

import "math"

// Standard atmosphere.
const (
	AvogadroConstant          = 6.02214179e23 // mol⁻¹
	StandardCO2Concentration  = 300.0         // ppm
	StandardAirTemperature    = 288.15        // K
	AveragePressureMeanSeaLvl = 101325.0      // Pa
	DefaultLatitude           = 0.0           // degrees
	DefaultAltitude           = 0.0           // m
)

const (
	panicNonFinite   = "phenomena: option value must be finite"
	panicNonPositive = "phenomena: option value must be > 0"
	panicNilFunction = "phenomena: nil function"
	panicNegativeCO2 = "phenomena: WithCO2Concentration: negative concentration"
)

// RefractionIndex returns the air refraction index at wavelength wl (µm) for
// a CO₂ concentration in ppm; most formulas ignore co2.
type RefractionIndex func(wl, co2 float64) float64

// KingFactor returns the depolarisation correction F(air) at wl (µm).
type KingFactor func(wl, co2 float64) float64

// Option mutates internal options.
type Option func(*Options)

// Options holds the atmosphere the scattering functions evaluate in.
type Options struct {
	co2, temperature, pressure float64
	latitude, altitude         float64
	avogadro                   float64
	n                          RefractionIndex
	fAir                       KingFactor
}

// DefaultOptions returns the standard atmosphere with the Bodhaine 1999
// refraction index and King factor.
func DefaultOptions() Options {
	return Options{
		co2:         StandardCO2Concentration,
		temperature: StandardAirTemperature,
		pressure:    AveragePressureMeanSeaLvl,
		latitude:    DefaultLatitude,
		altitude:    DefaultAltitude,
		avogadro:    AvogadroConstant,
		n:           AirRefractionIndexBodhaine1999,
		fAir:        FAirBodhaine1999,
	}
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

func mustFinite(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicNonFinite)
	}
}

func mustPositive(v float64) {
	mustFinite(v)
	if v <= 0 {
		panic(panicNonPositive)
	}
}

// WithCO2Concentration sets the CO₂ concentration in ppm.
func WithCO2Concentration(ppm float64) Option {
	mustFinite(ppm)
	if ppm < 0 {
		panic(panicNegativeCO2)
	}

	return func(o *Options) { o.co2 = ppm }
}

// WithTemperature sets the air temperature in kelvin.
func WithTemperature(k float64) Option {
	mustPositive(k)

	return func(o *Options) { o.temperature = k }
}

// WithPressure sets the surface pressure in pascal.
func WithPressure(pa float64) Option {
	mustPositive(pa)

	return func(o *Options) { o.pressure = pa }
}

// WithLatitude sets the site latitude in degrees.
func WithLatitude(deg float64) Option {
	mustFinite(deg)

	return func(o *Options) { o.latitude = deg }
}

// WithAltitude sets the site altitude in metres.
func WithAltitude(m float64) Option {
	mustFinite(m)

	return func(o *Options) { o.altitude = m }
}

// WithAvogadroConstant overrides the Avogadro constant.
func WithAvogadroConstant(na float64) Option {
	mustPositive(na)

	return func(o *Options) { o.avogadro = na }
}

// WithRefractionIndex selects the air refraction index formula.
func WithRefractionIndex(f RefractionIndex) Option {
	if f == nil {
		panic(panicNilFunction)
	}

	return func(o *Options) { o.n = f }
}

// WithKingFactor selects the F(air) formula.
func WithKingFactor(f KingFactor) Option {
	if f == nil {
		panic(panicNilFunction)
	}

	return func(o *Options) { o.fAir = f }
}
