package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Classification identifies the cache implementation a platform offers.
type Classification int

const (
	// ClassificationNone means the platform has no second-level cache support.
	ClassificationNone Classification = iota
	// ClassificationInfinispan is the Infinispan backed cache.
	ClassificationInfinispan
)

// String returns the lower-case name of the classification.
func (c Classification) String() string {
	switch c {
	case ClassificationInfinispan:
		return "infinispan"
	default:
		return "none"
	}
}

// ParseClassification parses a classification name, ignoring case.
func ParseClassification(s string) (Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ClassificationNone, nil
	case "infinispan":
		return ClassificationInfinispan, nil
	default:
		return ClassificationNone, zerr.With(ErrInvalidClassification, "classification", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
