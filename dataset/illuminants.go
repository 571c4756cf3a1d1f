// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/chroma/spectral"
)

// Default names.
const (
	DefaultObserver   = "CIE 1931 2 Degree Standard Observer"
	DefaultIlluminant = "D65"
)

type rawSPD struct {
	Name     string   `yaml:"name"`
	Aliases  []string `yaml:"aliases"`
	Start    any      `yaml:"start"`
	End      any      `yaml:"end"`
	Step     any      `yaml:"step"`
	Values   []any    `yaml:"values"`
	Constant any      `yaml:"constant"`
}

type spdEntry struct {
	spd *spectral.SPD
}

type rawXY struct {
	Observer    string           `yaml:"observer"`
	Aliases     []string         `yaml:"aliases"`
	Illuminants map[string][]any `yaml:"illuminants"`
}

// observerXY holds the chromaticities of one observer.
type observerXY struct {
	reg *registry[[2]float64]
	all map[string][2]float64 // canonical names
}

func decodeSPDs(file string, t *tables) error {
	var raw []rawSPD
	if err := decodeFile(file, &raw); err != nil {
		return err
	}
	t.spds = newRegistry[spdEntry]("illuminant SPD")
	for _, r := range raw {
		spd, err := buildSPD(r)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
		t.spds.add(r.Name, spdEntry{spd: spd}, r.Aliases...)
	}

	return nil
}

// buildSPD expands either explicit values on (start, step) or a constant
// over shape (start, end, step).
func buildSPD(r rawSPD) (*spectral.SPD, error) {
	start, err := num(r.Start)
	if err != nil {
		return nil, err
	}
	step, err := num(r.Step)
	if err != nil {
		return nil, err
	}
	if r.Constant != nil {
		end, err := num(r.End)
		if err != nil {
			return nil, err
		}
		c, err := num(r.Constant)
		if err != nil {
			return nil, err
		}
		shape, err := spectral.NewSpectralShape(start, end, step)
		if err != nil {
			return nil, err
		}
		spd := spectral.NewSPD(r.Name, nil)
		if err = spd.SetShape(shape, []float64{c}); err != nil {
			return nil, err
		}

		return spd, nil
	}
	vals, err := floats(r.Values)
	if err != nil {
		return nil, err
	}
	wl := make([]float64, len(vals))
	for i := range wl {
		wl[i] = start + float64(i)*step
	}

	return spectral.NewSPDFromSeries(r.Name, wl, vals)
}

func decodeXY(file string, t *tables) error {
	var raw []rawXY
	if err := decodeFile(file, &raw); err != nil {
		return err
	}
	t.xy = newRegistry[*observerXY]("observer")
	for _, r := range raw {
		o := &observerXY{reg: newRegistry[[2]float64]("illuminant"), all: make(map[string][2]float64)}
		for name, vs := range r.Illuminants {
			xy, err := pair(vs)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", r.Observer, name, err)
			}
			o.reg.add(name, xy)
			o.all[name] = xy
		}
		t.xy.add(r.Observer, o, r.Aliases...)
	}

	return nil
}

// IlluminantSPD returns a copy of the named illuminant SPD (D65, E).
//
// Errors: ErrUnknownName.
func IlluminantSPD(name string) (*spectral.SPD, error) {
	t, err := load()
	if err != nil {
		return nil, err
	}
	e, err := t.spds.get(name)
	if err != nil {
		return nil, datasetErrorf("IlluminantSPD", err)
	}

	return e.spd.Clone(), nil
}

// IlluminantSPDNames lists the tabulated illuminant SPDs, sorted.
func IlluminantSPDNames() []string {
	t, err := load()
	if err != nil {
		return nil
	}

	return t.spds.list()
}

// IlluminantXY returns the chromaticity of an illuminant for an observer.
//
// Errors: ErrUnknownName for an unknown observer or illuminant.
func IlluminantXY(observer, name string) ([2]float64, error) {
	o, err := observerTable(observer)
	if err != nil {
		return [2]float64{}, err
	}
	xy, err := o.reg.get(name)
	if err != nil {
		return [2]float64{}, datasetErrorf("IlluminantXY", err)
	}

	return xy, nil
}

// Illuminants returns a copy of every chromaticity of an observer keyed by
// canonical illuminant name.
//
// Errors: ErrUnknownName.
func Illuminants(observer string) (map[string][2]float64, error) {
	o, err := observerTable(observer)
	if err != nil {
		return nil, err
	}

	return maps.Clone(o.all), nil
}

// IlluminantNames lists the illuminants of an observer, sorted.
//
// Errors: ErrUnknownName.
func IlluminantNames(observer string) ([]string, error) {
	o, err := observerTable(observer)
	if err != nil {
		return nil, err
	}

	return o.reg.list(), nil
}

// Observers lists the observers with tabulated chromaticities, sorted.
func Observers() []string {
	t, err := load()
	if err != nil {
		return nil
	}

	return t.xy.list()
}

func observerTable(observer string) (*observerXY, error) {
	t, err := load()
	if err != nil {
		return nil, err
	}
	o, err := t.xy.get(observer)
	if err != nil {
		return nil, datasetErrorf("IlluminantXY", err)
	}

	return o, nil
}
