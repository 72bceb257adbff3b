package pipeline

import "fmt"

// Params is the option set a pipeline call reads. Keys are case-sensitive and each key holds
// at most one value.
type Params interface {
	Lookup(name string) (string, bool)
}

// Values is a Params backed by arbitrary template values. Each value is rendered to text with
// fmt.Sprint when it is looked up.
type Values map[string]any

func (v Values) Lookup(name string) (string, bool) {
	raw, ok := v[name]
	if !ok {
		return "", false
	}
	if s, isString := raw.(string); isString {
		return s, true
	}
	return fmt.Sprint(raw), true
}

// Strings is a Params holding already rendered text.
type Strings map[string]string

func (s Strings) Lookup(name string) (string, bool) {
	value, ok := s[name]
	return value, ok
}
