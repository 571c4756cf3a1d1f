// SPDX-License-Identifier: MIT

package spectral_test

import (
	"fmt"

	"github.com/katalvlaran/chroma/spectral"
)

// ExampleSPD_Align resamples a 10 nm distribution at 5 nm. Tabulated
// samples survive verbatim; a four-sample grid is evaluated with a
// natural cubic spline.
func ExampleSPD_Align() {
	spd := spectral.NewSPD("sample", map[float64]float64{
		510: 49.67, 520: 69.59, 530: 81.73, 540: 88.19,
	})
	aligned, _ := spd.Align(spectral.MustSpectralShape(510, 540, 10))
	fmt.Println(aligned.Values())

	v, _ := spd.Evaluate(520)
	fmt.Println(v[0])
	// Output:
	// [49.67 69.59 81.73 88.19]
	// 69.59
}

// ExampleSpectralShape_Range shows that the grid is truncated at end.
func ExampleSpectralShape_Range() {
	s := spectral.MustSpectralShape(400, 405, 2)
	fmt.Println(s.Range(), s.Len())
	// Output: [400 402 404] 3
}
