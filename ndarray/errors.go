// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/chroma"
)

// Sentinel errors. Each wraps chroma.ErrShape, so callers may match either.
var (
	// ErrBadShape indicates a negative dimension or a data length that does
	// not match the product of the shape.
	ErrBadShape = fmt.Errorf("ndarray: invalid shape: %w", chroma.ErrShape)

	// ErrChannels indicates the trailing dimension is not the channel count
	// the operation requires.
	ErrChannels = fmt.Errorf("ndarray: trailing dimension mismatch: %w", chroma.ErrShape)

	// ErrBroadcast indicates two operands that are neither the same size nor
	// a single broadcastable element/vector.
	ErrBroadcast = fmt.Errorf("ndarray: operands cannot be broadcast: %w", chroma.ErrShape)

	// ErrIndex indicates a multi-index outside the array bounds.
	ErrIndex = fmt.Errorf("ndarray: index out of range: %w", chroma.ErrShape)
)

// Operation tags for error wrapping.
const (
	opNew     = "New"
	opReshape = "Reshape"
	opAt      = "At"
	opItem    = "Item"
	opRows    = "AsRows"
	opMapVec  = "MapVec"
	opMap2    = "Map2"
	opReduce  = "Reduce"
	opApply   = "Apply"
	opStack   = "Stack"
	opChannel = "Channel"
	opFrom    = "FromDense"
)

// ndarrayErrorf wraps err with an operation tag.
func ndarrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
