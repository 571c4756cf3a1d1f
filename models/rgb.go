// SPDX-License-Identifier: MIT

package models

import (
	"github.com/katalvlaran/chroma/adaptation"
	"github.com/katalvlaran/chroma/matrix"
	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/transfer"
)

// XYZToRGB adapts XYZ (..., 3) from illuminantXYZ to illuminantRGB with the
// named transform, projects it through XYZToRGBMatrix and, when encode is
// non-nil, applies it element-wise.
//
// Errors: dataset.ErrUnknownName, ndarray.ErrChannels, matrix errors.
// Complexity: O(N) after a constant-size matrix build.
func XYZToRGB(
	XYZ *ndarray.Array,
	illuminantXYZ, illuminantRGB [2]float64,
	XYZToRGBMatrix matrix.Matrix,
	transform string,
	encode transfer.Function,
) (*ndarray.Array, error) {
	cat, err := adaptation.MatrixVonKriesXY(illuminantXYZ, illuminantRGB, transform)
	if err != nil {
		return nil, modelsErrorf(opXYZToRGB, err)
	}
	M, err := matrix.Chain(XYZToRGBMatrix, cat)
	if err != nil {
		return nil, modelsErrorf(opXYZToRGB, err)
	}
	RGB, err := ndarray.Apply(XYZ, M)
	if err != nil {
		return nil, modelsErrorf(opXYZToRGB, err)
	}
	if encode != nil {
		RGB = ndarray.Map(RGB, encode)
	}

	return RGB, nil
}

// RGBToXYZ mirrors XYZToRGB: decode (when non-nil), project through
// RGBToXYZMatrix, then adapt from illuminantRGB to illuminantXYZ.
//
// Errors: dataset.ErrUnknownName, ndarray.ErrChannels, matrix errors.
func RGBToXYZ(
	RGB *ndarray.Array,
	illuminantRGB, illuminantXYZ [2]float64,
	RGBToXYZMatrix matrix.Matrix,
	transform string,
	decode transfer.Function,
) (*ndarray.Array, error) {
	cat, err := adaptation.MatrixVonKriesXY(illuminantRGB, illuminantXYZ, transform)
	if err != nil {
		return nil, modelsErrorf(opRGBToXYZ, err)
	}
	M, err := matrix.Chain(cat, RGBToXYZMatrix)
	if err != nil {
		return nil, modelsErrorf(opRGBToXYZ, err)
	}
	if decode != nil {
		RGB = ndarray.Map(RGB, decode)
	}
	XYZ, err := ndarray.Apply(RGB, M)
	if err != nil {
		return nil, modelsErrorf(opRGBToXYZ, err)
	}

	return XYZ, nil
}

// RGBToRGBMatrix returns out.XYZToRGB · CAT(in → out) · in.RGBToXYZ.
//
// Errors: dataset.ErrUnknownName, matrix errors.
func RGBToRGBMatrix(in, out *RGBColourspace, transform string) (*matrix.Dense, error) {
	cat, err := adaptation.MatrixVonKriesXY(in.Whitepoint, out.Whitepoint, transform)
	if err != nil {
		return nil, modelsErrorf(opRGBToRGB, err)
	}
	M, err := matrix.Chain(out.XYZToRGB, cat, in.RGBToXYZ)
	if err != nil {
		return nil, modelsErrorf(opRGBToRGB, err)
	}

	return M, nil
}

// RGBToRGB converts RGB (..., 3) between colourspaces with a single matrix
// product per vector. WithCurves decodes with in.Curve first and encodes
// with out.Curve last.
//
// Errors: dataset.ErrUnknownName, ndarray.ErrChannels, matrix errors.
func RGBToRGB(RGB *ndarray.Array, in, out *RGBColourspace, transform string, opts ...Option) (*ndarray.Array, error) {
	o := gatherOptions(opts...)
	M, err := RGBToRGBMatrix(in, out, transform)
	if err != nil {
		return nil, err
	}
	if o.curves && in.Curve.Decode != nil {
		RGB = ndarray.Map(RGB, in.Curve.Decode)
	}
	res, err := ndarray.Apply(RGB, M)
	if err != nil {
		return nil, modelsErrorf(opRGBToRGB, err)
	}
	if o.curves && out.Curve.Encode != nil {
		res = ndarray.Map(res, out.Curve.Encode)
	}

	return res, nil
}
