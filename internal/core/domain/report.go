package domain

// UnitReport summarises how one persistence unit was resolved.
type UnitReport struct {
	Name                string            `json:"name" yaml:"name"`
	ScopedName          string            `json:"scopedName" yaml:"scopedName"`
	SharedCacheMode     SharedCacheMode   `json:"sharedCacheMode" yaml:"sharedCacheMode"`
	SecondLevelCache    bool              `json:"secondLevelCache" yaml:"secondLevelCache"`
	ForcedNone          bool              `json:"forcedNone,omitempty" yaml:"forcedNone,omitempty"`
	RegionsByScopedName bool              `json:"regionsByScopedName" yaml:"regionsByScopedName"`
	ManagementLabel     string            `json:"managementLabel" yaml:"managementLabel"`
	CacheLifecycle      string            `json:"cacheLifecycle,omitempty" yaml:"cacheLifecycle,omitempty"`
	Fingerprint         string            `json:"fingerprint" yaml:"fingerprint"`
	Properties          map[string]string `json:"properties" yaml:"properties"`
}

// OutputFormat selects how reports are rendered.
type OutputFormat string

const (
	// OutputText renders a styled, human readable report.
	OutputText OutputFormat = "text"
	// OutputJSON renders the reports as an indented JSON array.
	OutputJSON OutputFormat = "json"
	// OutputYAML renders the reports as a YAML sequence.
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates an output format name. Empty means text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", OutputText:
		return OutputText, nil
	case OutputJSON, OutputYAML:
		return OutputFormat(s), nil
	default:
		return "", ErrInvalidOutputFormat
	}
}
