// SPDX-License-Identifier: MIT

package models

import (
	"math"

	"github.com/katalvlaran/chroma/matrix"
	"github.com/katalvlaran/chroma/ndarray"
)

const iptExponent = 0.43

var (
	iptXYZToLMS = [3][3]float64{
		{0.4002, 0.7075, -0.0807},
		{-0.2280, 1.1500, 0.0612},
		{0, 0, 0.9184},
	}
	iptLMSToIPT = [3][3]float64{
		{0.4000, 0.4000, 0.2000},
		{4.4550, -4.8510, 0.3960},
		{0.8056, 0.3572, -1.1628},
	}
	iptLMSToXYZ = mustInverse(iptXYZToLMS)
	iptIPTToLMS = mustInverse(iptLMSToIPT)
)

// mustInverse inverts a published constant; a failure is a programming error.
func mustInverse(m [3][3]float64) [3][3]float64 {
	inv, err := matrix.Inverse(matrix.Mat3(m))
	if err != nil {
		panic(err)
	}
	out, err := matrix.ToMat3(inv)
	if err != nil {
		panic(err)
	}

	return out
}

func mv3(m *[3][3]float64, dst, v []float64) {
	for i := 0; i < 3; i++ {
		dst[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
}

func spow(v, p float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), p), v)
}

// XYZToIPT converts XYZ (D65-adapted, Y in [0, 1]) to IPT.
//
// Errors: ndarray.ErrChannels.
func XYZToIPT(XYZ *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(XYZ, 3, 3, func(dst, v []float64) {
		var lms [3]float64
		mv3(&iptXYZToLMS, lms[:], v)
		for i := range lms {
			lms[i] = spow(lms[i], iptExponent)
		}
		mv3(&iptLMSToIPT, dst, lms[:])
	})
	if err != nil {
		return nil, modelsErrorf(opIPT, err)
	}

	return out, nil
}

// IPTToXYZ is the inverse of XYZToIPT.
//
// Errors: ndarray.ErrChannels.
func IPTToXYZ(IPT *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(IPT, 3, 3, func(dst, v []float64) {
		var lms [3]float64
		mv3(&iptIPTToLMS, lms[:], v)
		for i := range lms {
			lms[i] = spow(lms[i], 1/iptExponent)
		}
		mv3(&iptLMSToXYZ, dst, lms[:])
	})
	if err != nil {
		return nil, modelsErrorf(opIPT, err)
	}

	return out, nil
}

// IPTHueAngle returns atan2(T, P) in radians; the result has the leading
// shape of IPT.
//
// Errors: ndarray.ErrChannels.
func IPTHueAngle(IPT *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.Reduce(IPT, 3, func(v []float64) float64 {
		return math.Atan2(v[2], v[1])
	})
}
