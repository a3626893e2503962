package domain

import (
	"maps"
	"slices"
	"strings"
)

// Properties holds the configuration a persistence unit declares itself.
type Properties map[string]string

// Get returns the value for key and whether it is present.
func (p Properties) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Has reports whether key is declared, regardless of its value.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// SetIfAbsent stores value under key unless the key is already declared.
// It reports whether a write happened.
func (p Properties) SetIfAbsent(key, value string) bool {
	if p.Has(key) {
		return false
	}
	p[key] = value
	return true
}

// Keys returns the declared keys in sorted order.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Clone returns a shallow copy of the properties. A nil receiver yields an empty map.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	maps.Copy(out, p)
	return out
}

// ParseBoolLenient reports whether s spells "true", ignoring case.
// Every other input, including the empty string, yields false.
func ParseBoolLenient(s string) bool {
	return strings.EqualFold(s, "true")
}
