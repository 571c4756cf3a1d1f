// SPDX-License-Identifier: MIT

// Package difference computes colour differences ΔE between CIE L*a*b*
// arrays: CIE 1976, CIE 1994, CIE 2000 and CMC l:c.
//
// Both operands have shape (..., 3); a single Lab triple is broadcast
// against the other operand. The result has the leading shape.
//
// CIE 1994, CIE 2000 and CMC are not symmetric: the first operand is the
// reference against which the second is compared.
package difference
