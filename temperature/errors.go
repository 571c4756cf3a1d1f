// SPDX-License-Identifier: MIT

package temperature

import (
	"fmt"

	"github.com/katalvlaran/chroma"
)

// ErrUnknownMethod indicates a conversion method name that is not registered.
var ErrUnknownMethod = fmt.Errorf("temperature: unknown method: %w", chroma.ErrConfig)

const (
	opMcCamy    = "XyToCCTMcCamy1992"
	opHernandez = "XyToCCTHernandez1999"
	opXyToCCT   = "XyToCCT"
	opCCTToXy   = "CCTToXy"
	opRobertson = "UvToCCTRobertson1968"
)

func temperatureErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
