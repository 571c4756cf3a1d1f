// SPDX-License-Identifier: MIT

package notation

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/chroma/ndarray"
)

// Munsell value method names.
const (
	MethodPriest1920     = "Priest 1920"
	MethodMunsell1933    = "Munsell 1933"
	MethodMoon1943       = "Moon 1943"
	MethodSaunderson1944 = "Saunderson 1944"
	MethodLadd1955       = "Ladd 1955"
	MethodMcCamy1987     = "McCamy 1987"
	MethodASTMD153508    = "ASTM D1535-08"
	DefaultMethod        = MethodASTMD153508
)

// MunsellValuePriest1920 returns V = 10·√(Y/100).
func MunsellValuePriest1920(Y *ndarray.Array) *ndarray.Array {
	return ndarray.Map(Y, func(y float64) float64 { return 10 * math.Sqrt(y/100) })
}

// MunsellValueMunsell1933 returns V = √(1.4742·Y − 0.004743·Y²).
func MunsellValueMunsell1933(Y *ndarray.Array) *ndarray.Array {
	return ndarray.Map(Y, func(y float64) float64 { return math.Sqrt(1.4742*y - 0.004743*y*y) })
}

// MunsellValueMoon1943 returns V = 1.4·Y^0.426.
func MunsellValueMoon1943(Y *ndarray.Array) *ndarray.Array {
	return ndarray.Map(Y, func(y float64) float64 { return 1.4 * math.Pow(y, 0.426) })
}

// MunsellValueSaunderson1944 returns V = 2.357·Y^0.343 − 1.52.
func MunsellValueSaunderson1944(Y *ndarray.Array) *ndarray.Array {
	return ndarray.Map(Y, func(y float64) float64 { return 2.357*math.Pow(y, 0.343) - 1.52 })
}

// MunsellValueLadd1955 returns V = 2.468·∛Y − 1.636.
func MunsellValueLadd1955(Y *ndarray.Array) *ndarray.Array {
	return ndarray.Map(Y, func(y float64) float64 { return 2.468*math.Cbrt(y) - 1.636 })
}

// MunsellValueMcCamy1987 is McCamy's closed-form approximation of the ASTM
// inverse; it is a power law below Y = 0.9.
func MunsellValueMcCamy1987(Y *ndarray.Array) *ndarray.Array {
	return ndarray.Map(Y, mcCamy1987)
}

func mcCamy1987(y float64) float64 {
	if y <= 0.9 {
		return 0.87445 * math.Pow(y, 0.9967)
	}
	c := math.Cbrt(y)
	d := 0.1073*y - 3.084

	return 2.49268*c - 1.5614 -
		0.985/(d*d+7.54) +
		0.0133/math.Pow(y, 2.3) +
		0.0084*math.Sin(4.1*c+1) +
		(0.0221/y)*math.Sin(0.39*(y-2)) -
		(0.0037/(0.44*y))*math.Sin(1.28*(y-0.53))
}

type valueFunc func(*ndarray.Array) (*ndarray.Array, error)

func infallible(f func(*ndarray.Array) *ndarray.Array) valueFunc {
	return func(Y *ndarray.Array) (*ndarray.Array, error) { return f(Y), nil }
}

var (
	methods = map[string]valueFunc{
		strings.ToLower(MethodPriest1920):     infallible(MunsellValuePriest1920),
		strings.ToLower(MethodMunsell1933):    infallible(MunsellValueMunsell1933),
		strings.ToLower(MethodMoon1943):       infallible(MunsellValueMoon1943),
		strings.ToLower(MethodSaunderson1944): infallible(MunsellValueSaunderson1944),
		strings.ToLower(MethodLadd1955):       infallible(MunsellValueLadd1955),
		strings.ToLower(MethodMcCamy1987):     infallible(MunsellValueMcCamy1987),
		strings.ToLower(MethodASTMD153508):    MunsellValueASTMD153508,
	}
	methodNames = []string{
		MethodASTMD153508, MethodLadd1955, MethodMcCamy1987, MethodMoon1943,
		MethodMunsell1933, MethodPriest1920, MethodSaunderson1944,
	}
)

// Methods lists the names accepted by MunsellValue, sorted.
func Methods() []string { return slices.Clone(methodNames) }

// MunsellValue dispatches to the named method (case-insensitive); an empty
// name selects ASTM D1535-08.
//
// Errors: ErrUnknownMethod.
func MunsellValue(Y *ndarray.Array, method string) (*ndarray.Array, error) {
	key := strings.ToLower(strings.TrimSpace(method))
	if key == "" {
		key = strings.ToLower(DefaultMethod)
	}
	f, ok := methods[key]
	if !ok {
		return nil, notationErrorf(opMunsellValue, fmt.Errorf("%q not in [%s]: %w", method, strings.Join(methodNames, ", "), ErrUnknownMethod))
	}

	return f(Y)
}
