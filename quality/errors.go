// SPDX-License-Identifier: MIT

package quality

import (
	"fmt"

	"github.com/katalvlaran/chroma"
)

// ErrNoSamples indicates an empty list of test colour samples.
var ErrNoSamples = fmt.Errorf("quality: no test colour samples: %w", chroma.ErrShape)

const (
	opCRI       = "ColourRenderingIndex"
	opReference = "ReferenceIlluminant"

	panicGeneralSamples = "quality: WithGeneralSamples(n) needs n > 0"
	panicNilCMFs        = "quality: WithCMFs(nil)"
)

func qualityErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
