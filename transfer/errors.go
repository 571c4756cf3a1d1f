// SPDX-License-Identifier: MIT

package transfer

import (
	"fmt"

	"github.com/katalvlaran/chroma"
)

// ErrUnknownCurve indicates a curve name that the registry does not hold.
var ErrUnknownCurve = fmt.Errorf("transfer: unknown transfer function: %w", chroma.ErrConfig)

const (
	opLookup = "Lookup"
	opEncode = "Encode"
	opDecode = "Decode"
)

func transferErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
