// SPDX-License-Identifier: MIT

package notation_test

import (
	"testing"

	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/notation"
)

func BenchmarkMunsellValueASTMD153508(b *testing.B) {
	Y := make([]float64, 4096)
	for i := range Y {
		Y[i] = float64(i) * 100 / 4096
	}
	a := ndarray.Vector(Y...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := notation.MunsellValueASTMD153508(a); err != nil {
			b.Fatal(err)
		}
	}
}
