package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// SharedCacheMode controls whether and which entities participate in the second-level cache.
type SharedCacheMode int

const (
	// SharedCacheModeUnspecified is the zero value: the unit did not choose a mode.
	SharedCacheModeUnspecified SharedCacheMode = iota
	SharedCacheModeAll
	SharedCacheModeNone
	SharedCacheModeEnableSelective
	SharedCacheModeDisableSelective
)

var sharedCacheModeNames = map[SharedCacheMode]string{
	SharedCacheModeUnspecified:      "UNSPECIFIED",
	SharedCacheModeAll:              "ALL",
	SharedCacheModeNone:             "NONE",
	SharedCacheModeEnableSelective:  "ENABLE_SELECTIVE",
	SharedCacheModeDisableSelective: "DISABLE_SELECTIVE",
}

// String returns the JPA name of the mode.
func (m SharedCacheMode) String() string {
	if name, ok := sharedCacheModeNames[m]; ok {
		return name
	}
	return "UNSPECIFIED"
}

// ParseSharedCacheMode parses a JPA shared cache mode name. Matching ignores case
// and surrounding whitespace; an empty string yields SharedCacheModeUnspecified.
func ParseSharedCacheMode(s string) (SharedCacheMode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return SharedCacheModeUnspecified, nil
	}
	for mode, name := range sharedCacheModeNames {
		if name == s {
			return mode, nil
		}
	}
	return SharedCacheModeUnspecified, zerr.With(ErrInvalidSharedCacheMode, "mode", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m SharedCacheMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SharedCacheMode) UnmarshalText(text []byte) error {
	mode, err := ParseSharedCacheMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
