// SPDX-License-Identifier: MIT

package adaptation

import "fmt"

const (
	opMatrix   = "MatrixVonKries"
	opMatrixXY = "MatrixVonKriesXY"
	opVonKries = "VonKries"
)

func adaptationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
