// SPDX-License-Identifier: MIT

package gamut_test

import (
	"fmt"

	"github.com/katalvlaran/chroma/gamut"
	"github.com/katalvlaran/chroma/ndarray"
)

func ExampleGamutArea() {
	square, _ := ndarray.FromRows([][]float64{
		{50, 1, 1},
		{50, -1, 1},
		{50, -1, -1},
		{50, 1, -1},
	})
	S, err := gamut.GamutArea(square)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", S)
	// Output: 4.0000
}
