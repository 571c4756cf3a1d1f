// SPDX-License-Identifier: MIT

package notation

import (
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/chroma"
	"github.com/katalvlaran/chroma/colorimetry"
	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/spectral"
)

const (
	astmKey     = "munsell-value/astm-d1535-08"
	astmSamples = 10000
	astmStep    = 0.001
)

var memo = cache.New(cache.NoExpiration, 0)

// astmInverse returns the shared V(Y) evaluator, building it on first use.
func astmInverse() (*spectral.Extrapolator, error) {
	if v, ok := memo.Get(astmKey); ok {
		return v.(*spectral.Extrapolator), nil
	}
	V := make([]float64, astmSamples)
	for i := range V {
		V[i] = float64(i) * astmStep
	}
	Y := colorimetry.LuminanceASTMD153508(ndarray.Vector(V...)).Values()
	lin, err := spectral.NewLinear(Y, V)
	if err != nil {
		return nil, err
	}
	ex, err := spectral.NewExtrapolator(lin, spectral.WithExtrapolatorMethod(spectral.MethodLinear))
	if err != nil {
		return nil, err
	}
	// Another goroutine may have won the race; keep the first entry.
	if err = memo.Add(astmKey, ex, cache.NoExpiration); err != nil {
		if v, ok := memo.Get(astmKey); ok {
			return v.(*spectral.Extrapolator), nil
		}
	}
	chroma.LoggerFor(chroma.LogClsNotation).WithFields(
		l.IntField("samples", astmSamples),
	).Debug("built ASTM D1535-08 Munsell value inverse")

	return ex, nil
}

// MunsellValueASTMD153508 inverts colorimetry.LuminanceASTMD153508 by linear
// interpolation, extrapolating linearly outside Y(0)..Y(9.999).
//
// Errors: spectral interpolator errors (construction only).
func MunsellValueASTMD153508(Y *ndarray.Array) (*ndarray.Array, error) {
	ex, err := astmInverse()
	if err != nil {
		return nil, notationErrorf(opASTM, err)
	}
	var evalErr error
	out := ndarray.Map(Y, func(y float64) float64 {
		v, err := ex.Evaluate(y)
		if err != nil && evalErr == nil {
			evalErr = err
		}

		return v
	})
	if evalErr != nil {
		return nil, notationErrorf(opASTM, evalErr)
	}

	return out, nil
}
