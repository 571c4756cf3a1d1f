// SPDX-License-Identifier: MIT

package temperature_test

import (
	"fmt"

	"github.com/katalvlaran/chroma/ndarray"
	"github.com/katalvlaran/chroma/temperature"
)

func ExampleXyToCCTMcCamy1992() {
	cct, _ := temperature.XyToCCTMcCamy1992(ndarray.Vector(0.31271, 0.32902))
	v, _ := cct.Item()
	fmt.Printf("%.2f K\n", v)
	// Output: 6504.39 K
}

func ExampleCCTToXyCIED() {
	xy := temperature.CCTToXyCIED(ndarray.Scalar(6504.38938305))
	fmt.Printf("%.5f\n", xy.Values())
	// Output: [0.31271 0.32911]
}
