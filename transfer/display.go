// SPDX-License-Identifier: MIT

package transfer

import "math"

// EncodeSRGB is the IEC 61966-2-1 sRGB encoding.
func EncodeSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}

	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// DecodeSRGB inverts EncodeSRGB.
func DecodeSRGB(v float64) float64 {
	if v <= EncodeSRGB(0.0031308) {
		return v / 12.92
	}

	return math.Pow((v+0.055)/1.055, 2.4)
}

// Gamma returns the pure power-law pair v^(1/g), v^g.
func Gamma(g float64) (encode, decode Function) {
	return func(v float64) float64 { return math.Pow(v, 1/g) },
		func(v float64) float64 { return math.Pow(v, g) }
}

// Pure power-law curves.
var (
	EncodeAdobeRGB1998, DecodeAdobeRGB1998 = Gamma(563.0 / 256.0)
	EncodeAppleRGB, DecodeAppleRGB         = Gamma(1.8)
	EncodeBestRGB, DecodeBestRGB           = Gamma(2.2)
	EncodePALSECAM, DecodePALSECAM         = Gamma(2.8)
)

// EncodeDCIP3 maps linear light to 12 bit DCI-P3 code values.
func EncodeDCIP3(v float64) float64 { return 4095 * math.Pow(v/52.37, 1/2.6) }

// DecodeDCIP3 inverts EncodeDCIP3.
func DecodeDCIP3(v float64) float64 { return 52.37 * math.Pow(v/4095, 2.6) }

// EncodeProPhotoRGB is the ROMM RGB encoding.
func EncodeProPhotoRGB(v float64) float64 {
	if v < 0.001953 {
		return v * 16
	}

	return math.Pow(v, 1/1.8)
}

// DecodeProPhotoRGB inverts EncodeProPhotoRGB.
func DecodeProPhotoRGB(v float64) float64 {
	if v < EncodeProPhotoRGB(0.001953) {
		return v / 16
	}

	return math.Pow(v, 1.8)
}

// bt returns the ITU-R BT.709/BT.2020 camera curve with offset a and
// linear-segment threshold b.
func bt(a, b float64) (encode, decode Function) {
	encode = func(v float64) float64 {
		if v < b {
			return v * 4.5
		}

		return a*math.Pow(v, 0.45) - (a - 1)
	}
	knee := encode(b)
	decode = func(v float64) float64 {
		if v < knee {
			return v / 4.5
		}

		return math.Pow((v+(a-1))/a, 1/0.45)
	}

	return encode, decode
}

// ITU-R camera curves. Rec. 2020 comes in a 10 bit and 12 bit variant.
var (
	EncodeRec709, DecodeRec709             = bt(1.099, 0.018)
	EncodeRec2020, DecodeRec2020           = bt(1.099, 0.018)
	EncodeRec2020Bit12, DecodeRec2020Bit12 = bt(1.0993, 0.0181)
)

// CIE 1976 constants ε and κ.
const (
	cieE = 216.0 / 24389.0
	cieK = 24389.0 / 27.0
)

// EncodeLStar maps relative luminance in [0, 1] to L*/100.
func EncodeLStar(v float64) float64 {
	if v <= cieE {
		return cieK * v / 100
	}

	return (116*math.Cbrt(v) - 16) / 100
}

// DecodeLStar inverts EncodeLStar.
func DecodeLStar(v float64) float64 {
	L := v * 100
	if L > cieK*cieE {
		f := (L + 16) / 116

		return f * f * f
	}

	return L / cieK
}
