// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the library.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//
// Hints:
//   - Use Mat3 for published 3×3 constants, Chain for M₁·M₂·…·Mₙ and ApplyRows
//     to project a batch of row vectors through a transform.

package matrix

import "fmt"

const (
	opChain     = "Chain"
	opApplyRows = "ApplyRows"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Mat3 builds a 3×3 Dense from a literal. It cannot fail.
func Mat3(m [3][3]float64) *Dense {
	d := &Dense{r: 3, c: 3, data: make([]float64, 9)}
	for i := 0; i < 3; i++ {
		copy(d.data[i*3:(i+1)*3], m[i][:])
	}

	return d
}

// ToMat3 copies a 3×3 matrix into an array literal.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ToMat3(m Matrix) ([3][3]float64, error) {
	var out [3][3]float64
	if err := ValidateNotNil(m); err != nil {
		return out, err
	}
	if m.Rows() != 3 || m.Cols() != 3 {
		return out, fmt.Errorf("ToMat3: %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	var err error
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return out, err
			}
		}
	}

	return out, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// Chain multiplies left to right: ms[0]·ms[1]·…·ms[n-1].
//
// Errors: ErrInvalidDimensions for no operands, plus Mul errors.
// Complexity: sum of the pairwise Mul costs.
func Chain(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opChain, ErrInvalidDimensions)
	}
	acc, err := denseCopyOf(ms[0])
	if err != nil {
		return nil, matrixErrorf(opChain, err)
	}
	for _, m := range ms[1:] {
		if acc, err = Mul(acc, m); err != nil {
			return nil, matrixErrorf(opChain, err)
		}
	}

	return acc, nil
}

// ApplyRows projects every row vector x of X through M, i.e. returns X·Mᵀ
// whose row i is M·xᵢ.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (X.Cols != M.Cols).
// Complexity: Time O(n·k·k'), Space O(n·k').
func ApplyRows(X, M Matrix) (*Dense, error) {
	Mt, err := Transpose(M)
	if err != nil {
		return nil, matrixErrorf(opApplyRows, err)
	}
	out, err := Mul(X, Mt)
	if err != nil {
		return nil, matrixErrorf(opApplyRows, err)
	}

	return out, nil
}
