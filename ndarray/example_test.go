// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"fmt"

	"github.com/katalvlaran/chroma/ndarray"
)

// ExampleReduce collapses each trailing triple to its mean; the channel
// dimension disappears from the result.
func ExampleReduce() {
	a, _ := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	mean, _ := ndarray.Reduce(a, 3, func(v []float64) float64 {
		return (v[0] + v[1] + v[2]) / 3
	})
	fmt.Println(mean)
	// Output: (2)[2 5]
}
