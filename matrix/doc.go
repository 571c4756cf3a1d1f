// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer of chroma.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Kernels: Mul, MatVec, Transpose, Scale, Add, Sub, Diag, Inverse and LU
//     (Doolittle with partial pivoting) working on any Matrix, with fast
//     paths on *Dense.
//   - Validators shared by the kernels (nil, square, conformable shapes).
//
// Colour transforms are 3×3 projections applied to batches of trailing
// vectors: a batch is an N×k Dense (one colour per row) and a transform M is
// applied as X·Mᵀ, so one Mul serves a single colour and a whole image.
//
// NaN and ±Inf are stored as-is; the numeric policy of the library is to
// propagate them rather than reject them.
package matrix
