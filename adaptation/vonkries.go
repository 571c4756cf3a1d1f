// SPDX-License-Identifier: MIT

package adaptation

import (
	"github.com/katalvlaran/chroma/dataset"
	"github.com/katalvlaran/chroma/matrix"
	"github.com/katalvlaran/chroma/ndarray"
)

// DefaultTransform is the transform used by callers that do not name one.
const DefaultTransform = dataset.DefaultCAT

// Transforms lists the registered transform names, sorted.
func Transforms() []string { return dataset.CATNames() }

// cat resolves a transform and its inverse.
func cat(transform string) (M, Minv *matrix.Dense, err error) {
	m, err := dataset.CAT(transform)
	if err != nil {
		return nil, nil, err
	}
	M = matrix.Mat3(m)
	if Minv, err = matrix.Inverse(M); err != nil {
		return nil, nil, err
	}

	return M, Minv, nil
}

// MatrixVonKries returns the adaptation matrix from source white XYZw to
// target white XYZwr under the named transform.
//
// Errors: dataset.ErrUnknownName (chroma.ErrConfig).
// Complexity: O(1); one 3×3 inverse and two products.
func MatrixVonKries(XYZw, XYZwr [3]float64, transform string) (*matrix.Dense, error) {
	M, Minv, err := cat(transform)
	if err != nil {
		return nil, adaptationErrorf(opMatrix, err)
	}
	m, err := matrix.ToMat3(M)
	if err != nil {
		return nil, adaptationErrorf(opMatrix, err)
	}
	D, err := matrix.Diag(coneRatio(m, XYZw[:], XYZwr[:]))
	if err != nil {
		return nil, adaptationErrorf(opMatrix, err)
	}
	A, err := matrix.Chain(Minv, D, M)
	if err != nil {
		return nil, adaptationErrorf(opMatrix, err)
	}

	return A, nil
}

// coneRatio returns ρ_target / ρ_source per cone channel.
func coneRatio(m [3][3]float64, w, wr []float64) []float64 {
	d := make([]float64, 3)
	for i, r := range m {
		d[i] = (r[0]*wr[0] + r[1]*wr[1] + r[2]*wr[2]) / (r[0]*w[0] + r[1]*w[1] + r[2]*w[2])
	}

	return d
}

// MatrixVonKriesXY is MatrixVonKries for whites given as chromaticities; both
// are taken at Y = 1.
//
// Errors: dataset.ErrUnknownName (chroma.ErrConfig).
func MatrixVonKriesXY(xyw, xywr [2]float64, transform string) (*matrix.Dense, error) {
	A, err := MatrixVonKries(xyToXYZ(xyw), xyToXYZ(xywr), transform)
	if err != nil {
		return nil, adaptationErrorf(opMatrixXY, err)
	}

	return A, nil
}

// xyToXYZ lifts a chromaticity to XYZ at Y = 1; y = 0 gives zeros.
func xyToXYZ(xy [2]float64) [3]float64 {
	if xy[1] == 0 {
		return [3]float64{}
	}

	return [3]float64{xy[0] / xy[1], 1, (1 - xy[0] - xy[1]) / xy[1]}
}

// VonKries adapts XYZ (..., 3) from XYZw to XYZwr. Each white may be a
// single 3-vector or share the leading shape of XYZ.
//
// Errors: dataset.ErrUnknownName, ndarray.ErrChannels, ndarray.ErrBroadcast.
func VonKries(XYZ, XYZw, XYZwr *ndarray.Array, transform string) (*ndarray.Array, error) {
	M, Minv, err := cat(transform)
	if err != nil {
		return nil, adaptationErrorf(opVonKries, err)
	}
	m, err := matrix.ToMat3(M)
	if err != nil {
		return nil, adaptationErrorf(opVonKries, err)
	}
	mi, err := matrix.ToMat3(Minv)
	if err != nil {
		return nil, adaptationErrorf(opVonKries, err)
	}
	mats, err := ndarray.MapVec2(XYZw, XYZwr, 3, 3, 9, func(dst, w, wr []float64) {
		d := coneRatio(m, w, wr)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				dst[3*i+j] = mi[i][0]*d[0]*m[0][j] + mi[i][1]*d[1]*m[1][j] + mi[i][2]*d[2]*m[2][j]
			}
		}
	})
	if err != nil {
		return nil, adaptationErrorf(opVonKries, err)
	}
	out, err := ndarray.MapVec2(XYZ, mats, 3, 9, 3, func(dst, v, A []float64) {
		for i := 0; i < 3; i++ {
			dst[i] = A[3*i]*v[0] + A[3*i+1]*v[1] + A[3*i+2]*v[2]
		}
	})
	if err != nil {
		return nil, adaptationErrorf(opVonKries, err)
	}

	return out, nil
}
