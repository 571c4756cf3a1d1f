// SPDX-License-Identifier: MIT

// Package ndarray provides the N-D float64 array used by every public
// transform of chroma, together with the (-1, k) reshape contract.
//
// A transform whose natural channel count is k accepts an Array of shape
// (..., k): a single colour (k), a batch (N, k) or an image (H, W, k). It
// views the data as an N×k matrix (N = product of the leading dimensions),
// computes, and returns an Array whose leading shape is the input's with
// its own output channel count substituted. Per-colour scalars (hue angles,
// colour differences, luminance) drop the channel dimension instead.
//
// Two-operand maps broadcast one side when it holds a single vector, so a
// white point can be passed once for a whole image.
package ndarray
