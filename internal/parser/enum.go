package parser

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// EnumParser maps names to values. An exact name wins; otherwise matching
// ignores case. Surrounding spaces are ignored.
type EnumParser[T comparable] struct {
	values map[string]T
	folded map[string]T
	names  []string
}

// NewEnumParser creates a parser for the given name to value mapping.
func NewEnumParser[T comparable](values map[string]T) *EnumParser[T] {
	names := slices.Sorted(maps.Keys(values))
	folded := make(map[string]T, len(values))
	// Names differing only in case fold to the first in sorted order.
	for _, name := range names {
		upper := strings.ToUpper(name)
		if _, exists := folded[upper]; !exists {
			folded[upper] = values[name]
		}
	}
	return &EnumParser[T]{values: values, folded: folded, names: names}
}

// ValidNames returns the accepted names in sorted order.
func (p *EnumParser[T]) ValidNames() []string {
	return slices.Clone(p.names)
}

func (p *EnumParser[T]) Parse(value string) (T, error) {
	trimmed := strings.TrimSpace(value)
	if v, ok := p.values[trimmed]; ok {
		return v, nil
	}
	if v, ok := p.folded[strings.ToUpper(trimmed)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, must be one of: %s", value, strings.Join(p.names, ", "))
}
