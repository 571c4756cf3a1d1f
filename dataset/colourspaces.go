// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// Colourspace is the tabulated definition of an RGB colourspace. It is a
// plain value: the conversion matrices are derived by the models package
// unless HasMatrix (RGB→XYZ) or HasInverse (XYZ→RGB) is set.
type Colourspace struct {
	Name       string
	Primaries  [3][2]float64 // R, G, B chromaticities
	Whitepoint [2]float64
	Illuminant string
	Encoding   string // transfer-function name, "linear" for none
	RGBToXYZ   [3][3]float64
	XYZToRGB   [3][3]float64
	HasMatrix  bool
	HasInverse bool
}

type rawColourspace struct {
	Name       string   `yaml:"name"`
	Aliases    []string `yaml:"aliases"`
	Primaries  [][]any  `yaml:"primaries"`
	Whitepoint []any    `yaml:"whitepoint"`
	Illuminant string   `yaml:"illuminant"`
	Encoding   string   `yaml:"encoding"`
	RGBToXYZ   [][]any  `yaml:"rgb_to_xyz"`
	XYZToRGB   [][]any  `yaml:"xyz_to_rgb"`
}

func decodeColourspaces(file string, t *tables) error {
	var raw []rawColourspace
	if err := decodeFile(file, &raw); err != nil {
		return err
	}
	t.spaces = newRegistry[Colourspace]("colourspace")
	for _, r := range raw {
		cs, err := buildColourspace(r)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
		t.spaces.add(r.Name, cs, r.Aliases...)
	}

	return nil
}

func buildColourspace(r rawColourspace) (Colourspace, error) {
	cs := Colourspace{Name: r.Name, Illuminant: r.Illuminant, Encoding: r.Encoding}
	if len(r.Primaries) != 3 {
		return cs, fmt.Errorf("primaries: %w", ErrMalformed)
	}
	var err error
	for i, p := range r.Primaries {
		if cs.Primaries[i], err = pair(p); err != nil {
			return cs, err
		}
	}
	if cs.Whitepoint, err = pair(r.Whitepoint); err != nil {
		return cs, err
	}
	if r.RGBToXYZ != nil {
		if cs.RGBToXYZ, err = mat3(r.RGBToXYZ); err != nil {
			return cs, err
		}
		cs.HasMatrix = true
	}
	if r.XYZToRGB != nil {
		if cs.XYZToRGB, err = mat3(r.XYZToRGB); err != nil {
			return cs, err
		}
		cs.HasInverse = true
	}

	return cs, nil
}

// RGBColourspace returns the named colourspace definition.
//
// Errors: ErrUnknownName listing the valid colourspaces.
func RGBColourspace(name string) (Colourspace, error) {
	t, err := load()
	if err != nil {
		return Colourspace{}, err
	}
	cs, err := t.spaces.get(name)
	if err != nil {
		return cs, datasetErrorf("RGBColourspace", err)
	}

	return cs, nil
}

// RGBColourspaceNames lists the colourspaces, sorted.
func RGBColourspaceNames() []string {
	t, err := load()
	if err != nil {
		return nil
	}

	return t.spaces.list()
}
