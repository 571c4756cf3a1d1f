// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// registry is a case-insensitive name → value table. It is populated once
// during loading and read-only afterwards.
type registry[T any] struct {
	kind  string
	items map[string]T
	names []string // canonical names, sorted
}

func newRegistry[T any](kind string) *registry[T] {
	return &registry[T]{kind: kind, items: make(map[string]T)}
}

// key normalises a lookup name.
func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// add registers v under its canonical name and aliases.
func (r *registry[T]) add(name string, v T, aliases ...string) {
	r.items[key(name)] = v
	r.names = append(r.names, name)
	for _, a := range aliases {
		r.items[key(a)] = v
	}
	slices.Sort(r.names)
}

// get resolves a name or alias.
func (r *registry[T]) get(name string) (T, error) {
	if v, ok := r.items[key(name)]; ok {
		return v, nil
	}
	var zero T

	return zero, fmt.Errorf("%s %q not in [%s]: %w", r.kind, name, strings.Join(r.names, ", "), ErrUnknownName)
}

// list returns a copy of the sorted canonical names.
func (r *registry[T]) list() []string { return slices.Clone(r.names) }
