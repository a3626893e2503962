package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the deployment descriptor cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read deployment descriptor")

	// ErrConfigParseFailed is returned when the deployment descriptor cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse deployment descriptor")

	// ErrMissingUnitName is returned when a persistence unit has no name.
	ErrMissingUnitName = zerr.New("persistence unit is missing a name")

	// ErrDuplicateUnit is returned when two persistence units share a scoped name.
	ErrDuplicateUnit = zerr.New("duplicate persistence unit")

	// ErrInvalidSharedCacheMode is returned for an unknown shared cache mode name.
	ErrInvalidSharedCacheMode = zerr.New("invalid shared cache mode, expected NONE, ALL, ENABLE_SELECTIVE, DISABLE_SELECTIVE or UNSPECIFIED")

	// ErrInvalidClassification is returned for an unknown cache classification.
	ErrInvalidClassification = zerr.New("invalid cache classification, expected 'none' or 'infinispan'")

	// ErrUnitNotFound is returned when a requested persistence unit is not in the deployment.
	ErrUnitNotFound = zerr.New("persistence unit not found")

	// ErrInvalidOutputFormat is returned for an unknown output format.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'text', 'json' or 'yaml'")

	// ErrRenderFailed is returned when a report cannot be written.
	ErrRenderFailed = zerr.New("failed to render report")

	// ErrResolutionFailed is returned when resolving the deployment fails.
	ErrResolutionFailed = zerr.New("resolution failed")
)
