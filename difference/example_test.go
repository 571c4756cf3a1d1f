// SPDX-License-Identifier: MIT

package difference_test

import (
	"fmt"

	"github.com/katalvlaran/chroma/difference"
	"github.com/katalvlaran/chroma/ndarray"
)

func ExampleDeltaE() {
	a := ndarray.Vector(100, 21.57210357, 272.22819350)
	b := ndarray.Vector(100, 426.67945353, 72.39590835)
	for _, m := range difference.Methods() {
		d, _ := difference.DeltaE(a, b, m)
		v, _ := d.Item()
		fmt.Printf("%s: %.4f\n", m, v)
	}
	// Output:
	// CIE 1976: 451.7133
	// CIE 1994: 83.7792
	// CIE 2000: 94.0356
	// CMC: 172.7048
}
