// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/chroma/spectral"
)

// DefaultCMFs is the standard observer used when none is specified.
const DefaultCMFs = "CIE 1931 2 Degree Standard Observer"

type rawCMFs struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Labels  []string `yaml:"labels"`
	Data    [][]any  `yaml:"data"`
}

type cmfEntry struct {
	tri *spectral.TriSPD
}

func decodeCMFs(file string, t *tables) error {
	var raw []rawCMFs
	if err := decodeFile(file, &raw); err != nil {
		return err
	}
	t.cmfs = newRegistry[cmfEntry]("cmfs")
	for _, r := range raw {
		if len(r.Labels) != 3 {
			return fmt.Errorf("%s: labels: %w", r.Name, ErrMalformed)
		}
		wl := make([]float64, len(r.Data))
		vals := make([]float64, 0, 3*len(r.Data))
		for i, row := range r.Data {
			f, err := floats(row)
			if err != nil {
				return fmt.Errorf("%s: %w", r.Name, err)
			}
			if len(f) != 4 {
				return fmt.Errorf("%s: row %d: %w", r.Name, i, ErrMalformed)
			}
			wl[i] = f[0]
			vals = append(vals, f[1:]...)
		}
		tri, err := spectral.NewTriSPDFromRows(r.Name, [3]string{r.Labels[0], r.Labels[1], r.Labels[2]}, wl, vals)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
		t.cmfs.add(r.Name, cmfEntry{tri: tri}, r.Aliases...)
	}

	return nil
}

// CMFs returns a copy of the named colour-matching functions.
//
// Errors: ErrUnknownName (chroma.ErrConfig), or the load error of a
// malformed embedded table.
func CMFs(name string) (*spectral.TriSPD, error) {
	t, err := load()
	if err != nil {
		return nil, err
	}
	e, err := t.cmfs.get(name)
	if err != nil {
		return nil, datasetErrorf("CMFs", err)
	}

	return e.tri.Clone(), nil
}

// CMFNames lists the available observers, sorted.
func CMFNames() []string {
	t, err := load()
	if err != nil {
		return nil
	}

	return t.cmfs.list()
}
