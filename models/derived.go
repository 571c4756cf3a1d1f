// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/chroma/ndarray"
)

// hsvHue returns the hue in [0, 1] shared by HSV and HSL, along with the
// channel extrema. An achromatic input has hue 0.
func hsvHue(v []float64) (h, lo, hi float64) {
	R, G, B := v[0], v[1], v[2]
	lo, hi = math.Min(R, math.Min(G, B)), math.Max(R, math.Max(G, B))
	d := hi - lo
	if d == 0 {
		return 0, lo, hi
	}
	dR := ((hi-R)/6 + d/2) / d
	dG := ((hi-G)/6 + d/2) / d
	dB := ((hi-B)/6 + d/2) / d
	switch hi {
	case R:
		h = dB - dG
	case G:
		h = 1.0/3 + dR - dB
	default:
		h = 2.0/3 + dG - dR
	}
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}

	return h, lo, hi
}

// RGBToHSV converts RGB in [0, 1] to HSV, every channel in [0, 1].
//
// Errors: ndarray.ErrChannels.
func RGBToHSV(RGB *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(RGB, 3, 3, func(dst, v []float64) {
		h, lo, hi := hsvHue(v)
		s := 0.0
		if hi != lo {
			s = (hi - lo) / hi
		}
		dst[0], dst[1], dst[2] = h, s, hi
	})
	if err != nil {
		return nil, modelsErrorf(opHSV, err)
	}

	return out, nil
}

// HSVToRGB is the inverse of RGBToHSV.
//
// Errors: ndarray.ErrChannels.
func HSVToRGB(HSV *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(HSV, 3, 3, func(dst, v []float64) {
		H, S, V := v[0], v[1], v[2]
		if S == 0 {
			dst[0], dst[1], dst[2] = V, V, V
			return
		}
		h := H * 6
		if h == 6 {
			h = 0
		}
		i := math.Floor(h)
		f := h - i
		j, k, l := V*(1-S), V*(1-S*f), V*(1-S*(1-f))
		switch int(i) {
		case 0:
			dst[0], dst[1], dst[2] = V, l, j
		case 1:
			dst[0], dst[1], dst[2] = k, V, j
		case 2:
			dst[0], dst[1], dst[2] = j, V, l
		case 3:
			dst[0], dst[1], dst[2] = j, k, V
		case 4:
			dst[0], dst[1], dst[2] = l, j, V
		default:
			dst[0], dst[1], dst[2] = V, j, k
		}
	})
	if err != nil {
		return nil, modelsErrorf(opHSV, err)
	}

	return out, nil
}

// RGBToHSL converts RGB in [0, 1] to HSL, every channel in [0, 1].
//
// Errors: ndarray.ErrChannels.
func RGBToHSL(RGB *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(RGB, 3, 3, func(dst, v []float64) {
		h, lo, hi := hsvHue(v)
		L := (hi + lo) / 2
		s := 0.0
		switch {
		case hi == lo:
		case L < 0.5:
			s = (hi - lo) / (hi + lo)
		default:
			s = (hi - lo) / (2 - hi - lo)
		}
		dst[0], dst[1], dst[2] = h, s, L
	})
	if err != nil {
		return nil, modelsErrorf(opHSV, err)
	}

	return out, nil
}

func hueToRGB(a, b, h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case 6*h < 1:
		return a + (b-a)*6*h
	case 2*h < 1:
		return b
	case 3*h < 2:
		return a + (b-a)*(2.0/3-h)*6
	}

	return a
}

// HSLToRGB is the inverse of RGBToHSL. Zero saturation yields grey at L.
//
// Errors: ndarray.ErrChannels.
func HSLToRGB(HSL *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(HSL, 3, 3, func(dst, v []float64) {
		H, S, L := v[0], v[1], v[2]
		if S == 0 {
			dst[0], dst[1], dst[2] = L, L, L
			return
		}
		b := (L + S) - S*L
		if L < 0.5 {
			b = L * (1 + S)
		}
		a := 2*L - b
		dst[0] = hueToRGB(a, b, H+1.0/3)
		dst[1] = hueToRGB(a, b, H)
		dst[2] = hueToRGB(a, b, H-1.0/3)
	})
	if err != nil {
		return nil, modelsErrorf(opHSV, err)
	}

	return out, nil
}

func complement(a *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(a, 3, 3, func(dst, v []float64) {
		dst[0], dst[1], dst[2] = 1-v[0], 1-v[1], 1-v[2]
	})
	if err != nil {
		return nil, modelsErrorf(opCMY, err)
	}

	return out, nil
}

// RGBToCMY returns 1 − RGB.
//
// Errors: ndarray.ErrChannels.
func RGBToCMY(RGB *ndarray.Array) (*ndarray.Array, error) { return complement(RGB) }

// CMYToRGB returns 1 − CMY.
//
// Errors: ndarray.ErrChannels.
func CMYToRGB(CMY *ndarray.Array) (*ndarray.Array, error) { return complement(CMY) }

// CMYToCMYK extracts the key (black) channel: (..., 3) → (..., 4). Pure
// black gives [0, 0, 0, 1].
//
// Errors: ndarray.ErrChannels.
func CMYToCMYK(CMY *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(CMY, 3, 4, func(dst, v []float64) {
		K := math.Min(1, math.Min(v[0], math.Min(v[1], v[2])))
		dst[3] = K
		if K == 1 {
			return
		}
		for i := 0; i < 3; i++ {
			dst[i] = (v[i] - K) / (1 - K)
		}
	})
	if err != nil {
		return nil, modelsErrorf(opCMY, err)
	}

	return out, nil
}

// CMYKToCMY is the inverse of CMYToCMYK: (..., 4) → (..., 3).
//
// Errors: ndarray.ErrChannels.
func CMYKToCMY(CMYK *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(CMYK, 4, 3, func(dst, v []float64) {
		K := v[3]
		for i := 0; i < 3; i++ {
			dst[i] = v[i]*(1-K) + K
		}
	})
	if err != nil {
		return nil, modelsErrorf(opCMY, err)
	}

	return out, nil
}

// RGBToHEX formats every RGB triple in [0, 1] as "#rrggbb", in row-major
// order. Channels are clamped to [0, 255] and truncated.
//
// Errors: ndarray.ErrChannels.
func RGBToHEX(RGB *ndarray.Array) ([]string, error) {
	n := 0
	if RGB.Size() > 0 {
		n = RGB.Size() / 3
	}
	out := make([]string, 0, n)
	_, err := ndarray.Reduce(RGB, 3, func(v []float64) float64 {
		var b [3]int
		for i, c := range v {
			b[i] = int(math.Max(0, math.Min(255, c*255)))
		}
		out = append(out, fmt.Sprintf("#%02x%02x%02x", b[0], b[1], b[2]))

		return 0
	})
	if err != nil {
		return nil, modelsErrorf(opHex, err)
	}

	return out, nil
}

// HEXToRGB parses hexadecimal triplets ("#aaddff", "adf", ...) into RGB of
// shape (len(hex), 3) in [0, 1]. The digits are split into three equal
// groups, each normalised by its maximum.
//
// Errors: ErrHex.
func HEXToRGB(hex []string) (*ndarray.Array, error) {
	data := make([]float64, 0, 3*len(hex))
	for _, h := range hex {
		s := strings.TrimPrefix(strings.TrimSpace(h), "#")
		if len(s) == 0 || len(s)%3 != 0 || len(s) > 24 {
			return nil, modelsErrorf(opHex, fmt.Errorf("%q: %w", h, ErrHex))
		}
		w := len(s) / 3
		scale := math.Pow(16, float64(w)) - 1
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(s[i*w:(i+1)*w], 16, 64)
			if err != nil {
				return nil, modelsErrorf(opHex, fmt.Errorf("%q: %v: %w", h, err, ErrHex))
			}
			data = append(data, float64(v)/scale)
		}
	}

	return ndarray.New(data, len(hex), 3)
}
