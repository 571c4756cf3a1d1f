// SPDX-License-Identifier: MIT

package transfer

import "math"

// EncodeACEScc is the ACEScc logarithmic encoding of ACES linear values.
func EncodeACEScc(v float64) float64 {
	switch {
	case v < 0:
		return (math.Log2(math.Pow(2, -15)*0.5) + 9.72) / 17.52
	case v < math.Pow(2, -15):
		return (math.Log2(math.Pow(2, -16)+v*0.5) + 9.72) / 17.52
	default:
		return (math.Log2(v) + 9.72) / 17.52
	}
}

// DecodeACEScc inverts EncodeACEScc, clamping to the half-float maximum.
func DecodeACEScc(v float64) float64 {
	switch {
	case v >= (math.Log2(65504)+9.72)/17.52:
		return 65504
	case v < (9.72-15)/17.52:
		return (math.Pow(2, v*17.52-9.72) - math.Pow(2, -16)) * 2
	default:
		return math.Pow(2, v*17.52-9.72)
	}
}

// ACESproxy holds the integer code-value layout of one bit depth.
type ACESproxy struct {
	CVMin, CVMax float64
	StepsPerStop float64
	MidCVOffset  float64
	MidLogOffset float64
}

// ACESproxy bit depths.
var (
	ACESproxy10 = ACESproxy{CVMin: 64, CVMax: 940, StepsPerStop: 50, MidCVOffset: 425, MidLogOffset: 2.5}
	ACESproxy12 = ACESproxy{CVMin: 256, CVMax: 3760, StepsPerStop: 200, MidCVOffset: 1700, MidLogOffset: 2.5}
)

// Encode maps ACES linear values to integer code values, rounded half to
// even and clamped to [CVMin, CVMax].
func (p ACESproxy) Encode(v float64) float64 {
	if !(v > math.Pow(2, -9.72)) {
		return p.CVMin
	}
	cv := math.RoundToEven((math.Log2(v)+p.MidLogOffset)*p.StepsPerStop + p.MidCVOffset)

	return math.Max(p.CVMin, math.Min(p.CVMax, cv))
}

// Decode maps code values back to ACES linear values.
func (p ACESproxy) Decode(v float64) float64 {
	return math.Pow(2, (v-p.MidCVOffset)/p.StepsPerStop-p.MidLogOffset)
}
