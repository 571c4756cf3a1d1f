// SPDX-License-Identifier: MIT

package dataset

import (
	"embed"
	"fmt"
	"sync"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

// Embedded document names.
const (
	fileCMFs         = "cmfs.yaml"
	fileIlluminantSP = "illuminants_spd.yaml"
	fileIlluminantXY = "illuminants_xy.yaml"
	fileCATs         = "cats.yaml"
	fileColourspaces = "colourspaces.yaml"
)

// tables is the decoded, immutable dataset.
type tables struct {
	cmfs   *registry[cmfEntry]
	spds   *registry[spdEntry]
	xy     *registry[*observerXY]
	cats   *registry[[3][3]float64]
	spaces *registry[Colourspace]
}

var (
	loadOnce sync.Once
	loaded   *tables
	loadErr  error
)

// load decodes every embedded document on first use.
func load() (*tables, error) {
	loadOnce.Do(func() {
		loaded, loadErr = decodeAll()
	})

	return loaded, loadErr
}

func decodeAll() (*tables, error) {
	t := &tables{}
	steps := []struct {
		file string
		fn   func(string, *tables) error
	}{
		{fileCMFs, decodeCMFs},
		{fileIlluminantSP, decodeSPDs},
		{fileIlluminantXY, decodeXY},
		{fileCATs, decodeCATs},
		{fileColourspaces, decodeColourspaces},
	}
	for _, s := range steps {
		if err := s.fn(s.file, t); err != nil {
			return nil, datasetErrorf(s.file, err)
		}
	}

	return t, nil
}

// decodeFile strictly decodes one embedded YAML document into out.
func decodeFile(name string, out any) error {
	f, err := files.Open("data/" + name)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(out); err != nil {
		return fmt.Errorf("%v: %w", err, ErrMalformed)
	}

	return nil
}

// num coerces a YAML scalar (int, float or numeric string) to float64.
func num(v any) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("missing number: %w", ErrMalformed)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrMalformed)
	}

	return f, nil
}

// floats coerces a YAML sequence of numbers.
func floats(vs []any) ([]float64, error) {
	out := make([]float64, len(vs))
	var err error
	for i, v := range vs {
		if out[i], err = num(v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// pair coerces a two-element sequence.
func pair(vs []any) ([2]float64, error) {
	var out [2]float64
	if len(vs) != 2 {
		return out, fmt.Errorf("want 2 values, got %d: %w", len(vs), ErrMalformed)
	}
	f, err := floats(vs)
	if err != nil {
		return out, err
	}
	copy(out[:], f)

	return out, nil
}

// mat3 coerces a 3×3 nested sequence.
func mat3(rows [][]any) ([3][3]float64, error) {
	var out [3][3]float64
	if len(rows) != 3 {
		return out, fmt.Errorf("want 3 rows, got %d: %w", len(rows), ErrMalformed)
	}
	for i, r := range rows {
		if len(r) != 3 {
			return out, fmt.Errorf("row %d has %d values: %w", i, len(r), ErrMalformed)
		}
		f, err := floats(r)
		if err != nil {
			return out, err
		}
		copy(out[i][:], f)
	}

	return out, nil
}
