// SPDX-License-Identifier: MIT

package chroma

import "errors"

// Library-wide sentinel errors. Packages wrap them with an operation tag
// ("<Op>: <cause>") and callers match them with errors.Is.
var (
	// ErrDomain means a value lies outside a hard mathematical domain, for
	// example a wavelength outside the tabulated colour-matching functions.
	ErrDomain = errors.New("chroma: value outside of domain")

	// ErrConfig means an unknown registry key (illuminant, observer,
	// adaptation transform, colourspace, method name).
	ErrConfig = errors.New("chroma: unknown configuration key")

	// ErrShape means an array does not carry the expected channel count
	// or two operands cannot be broadcast against each other.
	ErrShape = errors.New("chroma: malformed shape")

	// ErrKeyNotFound is the strict-lookup failure for keyed containers.
	ErrKeyNotFound = errors.New("chroma: key not found")
)
