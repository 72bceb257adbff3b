// Package normalization maps loosely written configuration values onto typed enums.
package normalization

import (
	"fmt"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

// Normalizer provides type-safe string-to-enum normalization.
type Normalizer[T comparable] struct {
	name         string
	values       map[string]T
	defaultValue T
	keys         []string // sorted, for error messages
}

// NewNormalizer creates a normalizer named name (used in error messages) over the given
// spelling->value pairs. Keys are folded with Fold.
func NewNormalizer[T comparable](name string, values map[string]T, defaultValue T) *Normalizer[T] {
	n := &Normalizer[T]{
		name:         name,
		values:       make(map[string]T, len(values)),
		defaultValue: defaultValue,
	}
	for k, v := range values {
		key := Fold(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	slices.Sort(n.keys)
	return n
}

// Normalize returns the value raw names, or the default when raw is not recognized.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[Fold(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// Parse returns the value raw names. Blank input yields the default; unknown input is a
// configuration error listing the accepted spellings.
func (n *Normalizer[T]) Parse(raw string) (T, error) {
	if Fold(raw) == "" {
		return n.defaultValue, nil
	}
	if v, ok := n.values[Fold(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, ferrors.ConfigError(fmt.Sprintf("invalid %s %q, valid options: %s", n.name, raw, strings.Join(n.keys, ", "))).
		WithContext("value", raw).
		Build()
}

// Keys returns the accepted spellings, sorted.
func (n *Normalizer[T]) Keys() []string {
	return slices.Clone(n.keys)
}

// Fold is the canonical comparison form: trimmed and lower-cased.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
