package domain

import (
	"fmt"
	"maps"
	"slices"
)

// PropertySet is the destination the adaptor writes provider settings into.
// Values may be plain strings or opaque runtime handles.
type PropertySet map[string]any

// NewPropertySet creates an empty PropertySet.
func NewPropertySet() PropertySet {
	return make(PropertySet)
}

// Put stores value under key, replacing any previous value.
func (s PropertySet) Put(key string, value any) {
	s[key] = value
}

// Get returns the value for key and whether it is present.
func (s PropertySet) Get(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

// Has reports whether key is present.
func (s PropertySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the keys in sorted order.
func (s PropertySet) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Strings renders every value with fmt so the set can be displayed or hashed.
func (s PropertySet) Strings() map[string]string {
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[k] = formatValue(v)
	}
	return out
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
