// SPDX-License-Identifier: MIT

// Package transfer holds the opto-electronic transfer functions of the
// RGB colourspaces and camera log encodings, each as an encode/decode pair
// of scalar functions.
//
// Curves are registered by name (case-insensitive) so colourspace
// descriptors can refer to their encoding by string; "linear" is the
// identity curve. Encode and Decode map a curve over an *ndarray.Array of
// any shape.
//
// All curves follow the numeric policy of the library: out-of-range input
// (e.g. a negative value under a logarithm) yields NaN, never an error.
package transfer
