// SPDX-License-Identifier: MIT

package models

import (
	"fmt"

	"github.com/katalvlaran/chroma/dataset"
	"github.com/katalvlaran/chroma/matrix"
	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/transfer"
)

// RGBColourspace is a resolved RGB colourspace: primaries, whitepoint, the
// two conversion matrices and the transfer curve.
type RGBColourspace struct {
	Name       string
	Primaries  [3][2]float64
	Whitepoint [2]float64
	Illuminant string
	RGBToXYZ   *matrix.Dense
	XYZToRGB   *matrix.Dense
	Curve      transfer.Curve
}

// NewRGBColourspace derives both conversion matrices from primaries and
// whitepoint. An empty curve name selects the linear curve.
//
// Errors: ErrSingularPrimaries, transfer.ErrUnknownCurve.
func NewRGBColourspace(name string, primaries [3][2]float64, whitepoint [2]float64, curve string) (*RGBColourspace, error) {
	c, err := transfer.Lookup(curve)
	if err != nil {
		return nil, modelsErrorf(opColourspace, err)
	}
	npm, err := NormalisedPrimaryMatrix(primaries, whitepoint)
	if err != nil {
		return nil, modelsErrorf(opColourspace, err)
	}
	inv, err := matrix.Inverse(npm)
	if err != nil {
		return nil, modelsErrorf(opColourspace, fmt.Errorf("%v: %w", err, ErrSingularPrimaries))
	}

	return &RGBColourspace{
		Name:       name,
		Primaries:  primaries,
		Whitepoint: whitepoint,
		RGBToXYZ:   npm,
		XYZToRGB:   inv,
		Curve:      c,
	}, nil
}

// Colourspace resolves a tabulated colourspace by name (case-insensitive).
// Published matrices take precedence over the derived ones; when only one
// direction is published the other is its inverse.
//
// Errors: dataset.ErrUnknownName, transfer.ErrUnknownCurve,
// ErrSingularPrimaries.
func Colourspace(name string) (*RGBColourspace, error) {
	def, err := dataset.RGBColourspace(name)
	if err != nil {
		return nil, modelsErrorf(opColourspace, err)
	}
	cs, err := NewRGBColourspace(def.Name, def.Primaries, def.Whitepoint, def.Encoding)
	if err != nil {
		return nil, err
	}
	cs.Illuminant = def.Illuminant
	switch {
	case def.HasMatrix && def.HasInverse:
		cs.RGBToXYZ, cs.XYZToRGB = matrix.Mat3(def.RGBToXYZ), matrix.Mat3(def.XYZToRGB)
	case def.HasMatrix:
		cs.RGBToXYZ = matrix.Mat3(def.RGBToXYZ)
		if cs.XYZToRGB, err = matrix.Inverse(cs.RGBToXYZ); err != nil {
			return nil, modelsErrorf(opColourspace, fmt.Errorf("%v: %w", err, ErrSingularPrimaries))
		}
	case def.HasInverse:
		cs.XYZToRGB = matrix.Mat3(def.XYZToRGB)
		if cs.RGBToXYZ, err = matrix.Inverse(cs.XYZToRGB); err != nil {
			return nil, modelsErrorf(opColourspace, fmt.Errorf("%v: %w", err, ErrSingularPrimaries))
		}
	}

	return cs, nil
}

// Colourspaces lists the tabulated colourspace names, sorted.
func Colourspaces() []string { return dataset.RGBColourspaceNames() }

// NormalisedPrimaryMatrix returns the RGB→XYZ matrix of the primaries such
// that RGB = [1, 1, 1] maps to the whitepoint at Y = 1.
//
// Errors: ErrSingularPrimaries.
// Complexity: O(1).
func NormalisedPrimaryMatrix(primaries [3][2]float64, whitepoint [2]float64) (*matrix.Dense, error) {
	var p [3][3]float64
	for j, xy := range primaries {
		p[0][j], p[1][j], p[2][j] = xy[0], xy[1], 1-xy[0]-xy[1]
	}
	P := matrix.Mat3(p)
	Pinv, err := matrix.Inverse(P)
	if err != nil {
		return nil, modelsErrorf(opNPM, fmt.Errorf("%v: %w", err, ErrSingularPrimaries))
	}
	w := xyToXYZ3(whitepoint[:])
	coef, err := matrix.MatVec(Pinv, w[:])
	if err != nil {
		return nil, modelsErrorf(opNPM, err)
	}
	D, err := matrix.Diag(coef)
	if err != nil {
		return nil, modelsErrorf(opNPM, err)
	}
	npm, err := matrix.Mul(P, D)
	if err != nil {
		return nil, modelsErrorf(opNPM, err)
	}

	return npm, nil
}

// PrimariesWhitepoint recovers the primaries and whitepoint chromaticities
// from a normalised primary matrix.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func PrimariesWhitepoint(npm matrix.Matrix) ([3][2]float64, [2]float64, error) {
	var (
		primaries  [3][2]float64
		whitepoint [2]float64
	)
	m, err := matrix.ToMat3(npm)
	if err != nil {
		return primaries, whitepoint, modelsErrorf(opNPM, err)
	}
	var w [3]float64
	for j := 0; j < 3; j++ {
		s := m[0][j] + m[1][j] + m[2][j]
		primaries[j] = [2]float64{m[0][j] / s, m[1][j] / s}
		for i := 0; i < 3; i++ {
			w[i] += m[i][j]
		}
	}
	s := w[0] + w[1] + w[2]
	whitepoint = [2]float64{w[0] / s, w[1] / s}

	return primaries, whitepoint, nil
}

// RGBLuminance returns the relative luminance Y of linear RGB (..., 3) for
// the given primaries and whitepoint; the result has the leading shape.
//
// Errors: ErrSingularPrimaries, ndarray.ErrChannels.
func RGBLuminance(RGB *ndarray.Array, primaries [3][2]float64, whitepoint [2]float64) (*ndarray.Array, error) {
	npm, err := NormalisedPrimaryMatrix(primaries, whitepoint)
	if err != nil {
		return nil, modelsErrorf(opRGBLuminance, err)
	}
	m, err := matrix.ToMat3(npm)
	if err != nil {
		return nil, modelsErrorf(opRGBLuminance, err)
	}
	Y := m[1]
	out, err := ndarray.Reduce(RGB, 3, func(v []float64) float64 {
		return Y[0]*v[0] + Y[1]*v[1] + Y[2]*v[2]
	})
	if err != nil {
		return nil, modelsErrorf(opRGBLuminance, err)
	}

	return out, nil
}
