// SPDX-License-Identifier: MIT

package transfer

import "math"

// printingDensity returns a Cineon-style log curve with the given white
// and black code values and density slope: (white + slope·log10(v·(1−o)+o)) / 1023.
func printingDensity(white, black, slope float64) (encode, decode Function) {
	offset := math.Pow(10, (black-white)/slope)
	encode = func(v float64) float64 {
		return (white + slope*math.Log10(v*(1-offset)+offset)) / 1023
	}
	decode = func(v float64) float64 {
		return (math.Pow(10, (1023*v-white)/slope) - offset) / (1 - offset)
	}

	return encode, decode
}

// Printing-density log curves.
var (
	EncodeCineon, DecodeCineon   = printingDensity(685, 95, 300)
	EncodePanalog, DecodePanalog = printingDensity(681, 64, 444)
	EncodeREDLog, DecodeREDLog   = printingDensity(1023, 0, 511)
)

// EncodeViperLog is the Thomson Viper FilmStream log curve.
func EncodeViperLog(v float64) float64 { return (1023 + 500*math.Log10(v)) / 1023 }

// DecodeViperLog inverts EncodeViperLog.
func DecodeViperLog(v float64) float64 { return math.Pow(10, (1023*v-1023)/500) }

// PivotedLog parametrises Josh Pines' pivoted log encoding.
type PivotedLog struct {
	LogReference        float64
	LinearReference     float64
	NegativeGamma       float64
	DensityPerCodeValue float64
}

// DefaultPivotedLog is the published parametrisation (445, 0.18, 0.6, 0.002).
var DefaultPivotedLog = PivotedLog{LogReference: 445, LinearReference: 0.18, NegativeGamma: 0.6, DensityPerCodeValue: 0.002}

// Encode maps linear light to a normalised pivoted log code value.
func (p PivotedLog) Encode(v float64) float64 {
	return (p.LogReference + math.Log10(v/p.LinearReference)/(p.DensityPerCodeValue/p.NegativeGamma)) / 1023
}

// Decode inverts Encode.
func (p PivotedLog) Decode(v float64) float64 {
	return math.Pow(10, (v*1023-p.LogReference)*(p.DensityPerCodeValue/p.NegativeGamma)) * p.LinearReference
}

// EncodeCLog is the Canon C-Log curve.
func EncodeCLog(v float64) float64 { return 0.529136*math.Log10(10.1596*v+1) + 0.0730597 }

// DecodeCLog inverts EncodeCLog.
func DecodeCLog(v float64) float64 {
	return -0.071622555735168 * (1.3742747797867 - math.Exp(4.3515940948906*v))
}

// LogC holds the ALEXA Log C curve parameters of one exposure index.
type LogC struct {
	Cut, A, B, C, D, E, F float64
}

// LogCEI800 is SUP 3.x, linear scene exposure factor, EI 800.
var LogCEI800 = LogC{Cut: 0.010591, A: 5.555556, B: 0.052272, C: 0.247190, D: 0.385537, E: 5.367655, F: 0.092809}

// Encode maps linear scene exposure to Log C.
func (p LogC) Encode(v float64) float64 {
	if v > p.Cut {
		return p.C*math.Log10(p.A*v+p.B) + p.D
	}

	return p.E*v + p.F
}

// Decode inverts Encode.
func (p LogC) Decode(v float64) float64 {
	if v > p.E*p.Cut+p.F {
		return (math.Pow(10, (v-p.D)/p.C) - p.B) / p.A
	}

	return (v - p.F) / p.E
}

// EncodeSLog is the Sony S-Log curve.
func EncodeSLog(v float64) float64 { return 0.432699*math.Log10(v+0.037584) + 0.616596 + 0.03 }

// DecodeSLog inverts EncodeSLog.
func DecodeSLog(v float64) float64 { return math.Pow(10, (v-0.616596-0.03)/0.432699) - 0.037584 }

// EncodeSLog2 is the Sony S-Log2 curve, normalised to 10 bit code values.
func EncodeSLog2(v float64) float64 {
	return 4 * (16 + 219*(0.616596+0.03+0.432699*math.Log10(0.037584+v/0.9))) / 1023
}

// DecodeSLog2 inverts EncodeSLog2.
func DecodeSLog2(v float64) float64 {
	return (math.Pow(10, ((v*1023/4-16)/219-0.616596-0.03)/0.432699) - 0.037584) * 0.9
}

const sLog3Knee = 171.2102946929

// EncodeSLog3 is the Sony S-Log3 curve.
func EncodeSLog3(v float64) float64 {
	if v >= 0.01125 {
		return (420 + math.Log10((v+0.01)/(0.18+0.01))*261.5) / 1023
	}

	return (v*(sLog3Knee-95)/0.01125 + 95) / 1023
}

// DecodeSLog3 inverts EncodeSLog3.
func DecodeSLog3(v float64) float64 {
	if v >= sLog3Knee/1023 {
		return math.Pow(10, (v*1023-420)/261.5)*(0.18+0.01) - 0.01
	}

	return (v*1023 - 95) * 0.01125 / (sLog3Knee - 95)
}

// V-Log constants.
const (
	vLogCut1 = 0.01
	vLogCut2 = 0.181
	vLogB    = 0.00873
	vLogC    = 0.241514
	vLogD    = 0.598206
)

// EncodeVLog is the Panasonic V-Log curve.
func EncodeVLog(v float64) float64 {
	if v < vLogCut1 {
		return 5.6*v + 0.125
	}

	return vLogC*math.Log10(v+vLogB) + vLogD
}

// DecodeVLog inverts EncodeVLog.
func DecodeVLog(v float64) float64 {
	if v < vLogCut2 {
		return (v - 0.125) / 5.6
	}

	return math.Pow(10, (v-vLogD)/vLogC) - vLogB
}
