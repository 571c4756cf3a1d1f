// SPDX-License-Identifier: MIT

package colorimetry_test

import (
	"testing"

	"github.com/katalvlaran/chroma/colorimetry"
	"github.com/katalvlaran/chroma/dataset"
	"github.com/katalvlaran/chroma/spectral"
)

func BenchmarkSpectralToXYZ_Interpolated(b *testing.B) {
	cmfs, err := dataset.CMFs(dataset.DefaultCMFs)
	if err != nil {
		b.Fatal(err)
	}
	spd := colorimetry.BlackbodySPD(6500, spectral.MustSpectralShape(380, 780, 20))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = colorimetry.SpectralToXYZ(spd, cmfs, nil); err != nil {
			b.Fatal(err)
		}
	}
}
