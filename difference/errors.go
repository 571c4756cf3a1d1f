// SPDX-License-Identifier: MIT

package difference

import (
	"fmt"

	"github.com/katalvlaran/chroma"
)

// ErrUnknownMethod indicates a ΔE method name that is not registered.
var ErrUnknownMethod = fmt.Errorf("difference: unknown method: %w", chroma.ErrConfig)

const (
	opCIE1976 = "DeltaECIE1976"
	opCIE1994 = "DeltaECIE1994"
	opCIE2000 = "DeltaECIE2000"
	opCMC     = "DeltaECMC"
	opDeltaE  = "DeltaE"
)

func differenceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
