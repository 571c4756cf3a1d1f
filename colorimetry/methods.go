// SPDX-License-Identifier: MIT

package colorimetry

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// methodTable resolves method names case-insensitively.
type methodTable[F any] struct {
	names []string
	funcs map[string]F
}

func newMethodTable[F any](entries map[string]F) methodTable[F] {
	t := methodTable[F]{funcs: make(map[string]F, len(entries))}
	for name, f := range entries {
		t.names = append(t.names, name)
		t.funcs[strings.ToLower(name)] = f
	}
	slices.Sort(t.names)

	return t
}

func (t methodTable[F]) lookup(tag, name string) (F, error) {
	f, ok := t.funcs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return f, colorimetryErrorf(tag, fmt.Errorf("%q not in [%s]: %w", name, strings.Join(t.names, ", "), ErrUnknownMethod))
	}

	return f, nil
}

// Names returns the sorted canonical names.
func (t methodTable[F]) Names() []string { return slices.Clone(t.names) }
