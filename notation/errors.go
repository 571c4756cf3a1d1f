// SPDX-License-Identifier: MIT

package notation

import (
	"fmt"

	"github.com/katalvlaran/chroma"
)

// ErrUnknownMethod indicates a Munsell value method that is not registered.
var ErrUnknownMethod = fmt.Errorf("notation: unknown method: %w", chroma.ErrConfig)

const (
	opASTM         = "MunsellValueASTMD153508"
	opMunsellValue = "MunsellValue"
)

func notationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
