// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// DefaultCAT is the adaptation transform used when none is specified.
const DefaultCAT = "CAT02"

type rawCAT struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Matrix  [][]any  `yaml:"matrix"`
}

func decodeCATs(file string, t *tables) error {
	var raw []rawCAT
	if err := decodeFile(file, &raw); err != nil {
		return err
	}
	t.cats = newRegistry[[3][3]float64]("chromatic adaptation transform")
	for _, r := range raw {
		m, err := mat3(r.Matrix)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
		t.cats.add(r.Name, m, r.Aliases...)
	}

	return nil
}

// CAT returns the named chromatic adaptation matrix.
//
// Errors: ErrUnknownName listing the valid transforms.
func CAT(name string) ([3][3]float64, error) {
	t, err := load()
	if err != nil {
		return [3][3]float64{}, err
	}
	m, err := t.cats.get(name)
	if err != nil {
		return m, datasetErrorf("CAT", err)
	}

	return m, nil
}

// CATNames lists the transforms, sorted.
func CATNames() []string {
	t, err := load()
	if err != nil {
		return nil
	}

	return t.cats.list()
}
