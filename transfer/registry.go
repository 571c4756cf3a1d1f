// SPDX-License-Identifier: MIT

package transfer

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/chroma/ndarray"
)

// Function is a scalar transfer function.
type Function func(float64) float64

// Curve is a named encode/decode pair.
type Curve struct {
	Name   string
	Encode Function
	Decode Function
}

// Linear is the name of the identity curve.
const Linear = "linear"

func identity(v float64) float64 { return v }

var (
	curves = map[string]Curve{}
	names  []string
)

func register(name string, enc, dec Function, aliases ...string) {
	c := Curve{Name: name, Encode: enc, Decode: dec}
	curves[strings.ToLower(name)] = c
	for _, a := range aliases {
		curves[strings.ToLower(a)] = c
	}
	names = append(names, name)
}

func init() {
	register(Linear, identity, identity)
	register("sRGB", EncodeSRGB, DecodeSRGB)
	register("Adobe RGB (1998)", EncodeAdobeRGB1998, DecodeAdobeRGB1998)
	register("Apple RGB", EncodeAppleRGB, DecodeAppleRGB)
	register("Best RGB", EncodeBestRGB, DecodeBestRGB)
	register("ProPhoto RGB", EncodeProPhotoRGB, DecodeProPhotoRGB, "ROMM RGB")
	register("DCI-P3", EncodeDCIP3, DecodeDCIP3)
	register("PAL/SECAM", EncodePALSECAM, DecodePALSECAM)
	register("Rec. 709", EncodeRec709, DecodeRec709, "BT.709")
	register("Rec. 2020", EncodeRec2020, DecodeRec2020, "BT.2020", "Rec. 2020 10 Bit")
	register("Rec. 2020 12 Bit", EncodeRec2020Bit12, DecodeRec2020Bit12)
	register("L*", EncodeLStar, DecodeLStar)
	register("Cineon", EncodeCineon, DecodeCineon)
	register("Panalog", EncodePanalog, DecodePanalog)
	register("REDLog", EncodeREDLog, DecodeREDLog)
	register("ViperLog", EncodeViperLog, DecodeViperLog)
	register("Pivoted Log", DefaultPivotedLog.Encode, DefaultPivotedLog.Decode)
	register("C-Log", EncodeCLog, DecodeCLog)
	register("ACEScc", EncodeACEScc, DecodeACEScc)
	register("ACESproxy", ACESproxy10.Encode, ACESproxy10.Decode, "ACESproxy 10 Bit")
	register("ACESproxy 12 Bit", ACESproxy12.Encode, ACESproxy12.Decode)
	register("ALEXA Log C", LogCEI800.Encode, LogCEI800.Decode, "Log C")
	register("S-Log", EncodeSLog, DecodeSLog)
	register("S-Log2", EncodeSLog2, DecodeSLog2)
	register("S-Log3", EncodeSLog3, DecodeSLog3)
	register("V-Log", EncodeVLog, DecodeVLog)
	slices.Sort(names)
}

// Lookup returns the named curve. An empty name resolves to Linear.
//
// Errors: ErrUnknownCurve listing the registered names.
func Lookup(name string) (Curve, error) {
	if strings.TrimSpace(name) == "" {
		name = Linear
	}
	c, ok := curves[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Curve{}, transferErrorf(opLookup, fmt.Errorf("%q not in [%s]: %w", name, strings.Join(names, ", "), ErrUnknownCurve))
	}

	return c, nil
}

// Names lists the canonical curve names, sorted.
func Names() []string { return slices.Clone(names) }

// Encode applies the named encoding element-wise.
//
// Errors: ErrUnknownCurve.
func Encode(a *ndarray.Array, name string) (*ndarray.Array, error) {
	c, err := Lookup(name)
	if err != nil {
		return nil, transferErrorf(opEncode, err)
	}

	return ndarray.Map(a, c.Encode), nil
}

// Decode applies the named decoding element-wise.
//
// Errors: ErrUnknownCurve.
func Decode(a *ndarray.Array, name string) (*ndarray.Array, error) {
	c, err := Lookup(name)
	if err != nil {
		return nil, transferErrorf(opDecode, err)
	}

	return ndarray.Map(a, c.Decode), nil
}
