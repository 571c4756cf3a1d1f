// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/chroma/matrix"
)

// benchRows are the batch sizes (N colours) to benchmark.
var benchRows = []int{1024, 65536}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
)

func BenchmarkApplyRows(b *testing.B) {
	b.ReportAllocs()
	M := matrix.Mat3([3][3]float64{
		{3.24100326, -1.53739899, -0.49861587},
		{-0.96922426, 1.87592999, 0.04155422},
		{0.05563942, -0.2040112, 1.05714897},
	})
	for _, n := range benchRows {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			X := MustDense(b, n, 3)
			RandomFill(b, X, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.ApplyRows(X, M)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkInverse3x3(b *testing.B) {
	b.ReportAllocs()
	A := MustDense(b, 3, 3)
	RandomFill(b, A, 99)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Inverse(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
