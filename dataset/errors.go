// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/chroma"
)

var (
	// ErrUnknownName indicates a registry miss; it wraps chroma.ErrConfig.
	ErrUnknownName = fmt.Errorf("dataset: unknown name: %w", chroma.ErrConfig)

	// ErrMalformed indicates an embedded table that does not decode into the
	// expected structure.
	ErrMalformed = fmt.Errorf("dataset: malformed table: %w", chroma.ErrShape)
)

// datasetErrorf wraps err with a table tag.
func datasetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
