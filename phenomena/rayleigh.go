// SPDX-License-Identifier: MIT

package phenomena

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/spectral"
)

// refraction evaluates (a + b/(c − λ⁻²) + d/(e − λ⁻²))·10⁻⁸ + 1.
func refraction(wl, a, b, c, d, e float64) float64 {
	s := 1 / (wl * wl)

	return (a+b/(c-s)+d/(e-s))/1e8 + 1
}

// AirRefractionIndexPenndorf1957 is Penndorf's dispersion formula; co2 is
// ignored.
func AirRefractionIndexPenndorf1957(wl, _ float64) float64 {
	return refraction(wl, 6432.8, 2949810, 146, 25540, 41)
}

// AirRefractionIndexEdlen1966 is Edlén's dispersion formula; co2 is ignored.
func AirRefractionIndexEdlen1966(wl, _ float64) float64 {
	return refraction(wl, 8342.13, 2406030, 130, 15997, 38.9)
}

// AirRefractionIndexPeck1972 is the Peck and Reeder formula; co2 is ignored.
func AirRefractionIndexPeck1972(wl, _ float64) float64 {
	return refraction(wl, 8060.51, 2480990, 132.274, 17455.7, 39.32957)
}

// AirRefractionIndexBodhaine1999 scales Peck 1972 for the CO₂ concentration
// (ppm); it equals Peck 1972 at 300 ppm.
func AirRefractionIndexBodhaine1999(wl, co2 float64) float64 {
	return (1+0.54*(co2*1e-6-300e-6))*(AirRefractionIndexPeck1972(wl, co2)-1) + 1
}

// N2Depolarisation is the N₂ depolarisation term at wl (µm).
func N2Depolarisation(wl float64) float64 {
	return 1.034 + 3.17e-4/(wl*wl)
}

// O2Depolarisation is the O₂ depolarisation term at wl (µm).
func O2Depolarisation(wl float64) float64 {
	w2 := wl * wl

	return 1.096 + 1.385e-3/w2 + 1.448e-4/(w2*w2)
}

// FAirPenndorf1957 is the constant King factor 1.0608.
func FAirPenndorf1957(_, _ float64) float64 { return 1.0608 }

// FAirYoung1981 is the constant King factor 1.0480.
func FAirYoung1981(_, _ float64) float64 { return 1.0480 }

// FAirBates1984 weights the N₂ and O₂ depolarisation with fixed Ar and CO₂
// terms.
func FAirBates1984(wl, _ float64) float64 {
	const ar, co2 = 1.00, 1.15

	return (78.084*N2Depolarisation(wl) + 20.946*O2Depolarisation(wl) + co2 + ar) /
		(78.084 + 20.946 + ar + co2)
}

// FAirBodhaine1999 is the Bates 1984 factor with a variable CO₂ share.
func FAirBodhaine1999(wl, co2 float64) float64 {
	return (78.084*N2Depolarisation(wl) + 20.946*O2Depolarisation(wl) + 0.934 + co2*1.15) /
		(78.084 + 20.946 + 0.934 + co2)
}

// MolecularDensity returns the molecular density Ns (molecules·cm⁻³) at
// temperature T (K).
func MolecularDensity(T, avogadro float64) float64 {
	return (avogadro / 22.4141) * (273.15 / T) / 1000
}

// MeanMolecularWeight returns the mean molecular weight of dry air
// (g·mol⁻¹) for a CO₂ concentration in ppm.
func MeanMolecularWeight(co2 float64) float64 {
	return 15.0556*co2*1e-6 + 28.9595
}

// GravityList1968 returns the acceleration of gravity (cm·s⁻²) at latitude
// (degrees) and altitude (m).
func GravityList1968(latitude, altitude float64) float64 {
	c := math.Cos(2 * latitude * math.Pi / 180)
	g0 := 980.6160 * (1 - 0.0026373*c + 0.0000059*c*c)

	return g0 - (3.085462e-4+2.27e-7*c)*altitude +
		(7.254e-11+1.0e-13*c)*altitude*altitude -
		(1.517e-17+6e-20*c)*altitude*altitude*altitude
}

func crossSection(wl float64, o Options) float64 {
	um := wl * 10e3
	n2 := o.n(um, o.co2)
	n2 *= n2
	Ns := MolecularDensity(o.temperature, o.avogadro)
	d := n2 - 1
	q := n2 + 2

	return 24 * math.Pi * math.Pi * math.Pi * d * d / (wl * wl * wl * wl * Ns * Ns * q * q) * o.fAir(um, o.co2)
}

func opticalDepth(wl float64, o Options) float64 {
	P := o.pressure * 10 // Pa to dyn·cm⁻²

	return crossSection(wl, o) * (P * o.avogadro) /
		(MeanMolecularWeight(o.co2) * GravityList1968(o.latitude, o.altitude))
}

// ScatteringCrossSection returns the Rayleigh cross-section per molecule
// (cm²) for wavelengths in centimetres.
func ScatteringCrossSection(wl *ndarray.Array, opts ...Option) *ndarray.Array {
	o := gatherOptions(opts...)

	return ndarray.Map(wl, func(l float64) float64 { return crossSection(l, o) })
}

// RayleighOpticalDepth returns the Rayleigh optical depth for wavelengths in
// centimetres.
func RayleighOpticalDepth(wl *ndarray.Array, opts ...Option) *ndarray.Array {
	o := gatherOptions(opts...)

	return ndarray.Map(wl, func(l float64) float64 { return opticalDepth(l, o) })
}

// RayleighScatteringSPD samples the optical depth over shape (nanometres).
// The SPD is named after the atmosphere, e.g.
// "Rayleigh Scattering - 300 ppm, 288.15 K, 101325 Pa, 0 Degrees, 0 m".
func RayleighScatteringSPD(shape spectral.SpectralShape, opts ...Option) *spectral.SPD {
	o := gatherOptions(opts...)
	wl := shape.Range()
	data := make(map[float64]float64, len(wl))
	for _, w := range wl {
		data[w] = opticalDepth(w*10e-8, o)
	}
	name := fmt.Sprintf("Rayleigh Scattering - %g ppm, %g K, %g Pa, %g Degrees, %g m",
		o.co2, o.temperature, o.pressure, o.latitude, o.altitude)

	return spectral.NewSPD(name, data)
}
