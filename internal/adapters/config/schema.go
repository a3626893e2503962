package config

// DefaultFilename is looked up when the loader is given a directory.
const DefaultFilename = "persistence.yaml"

// Descriptor represents the structure of a persistence.yaml deployment descriptor.
type Descriptor struct {
	Version    string      `yaml:"version"`
	Deployment string      `yaml:"deployment"`
	Platform   PlatformDTO `yaml:"platform"`
	JTA        JTADTO      `yaml:"jta"`
	Units      []UnitDTO   `yaml:"units"`
}

// PlatformDTO describes the hosting platform's cache capabilities.
type PlatformDTO struct {
	DefaultCacheClassification string   `yaml:"defaultCacheClassification"`
	CacheClassifications       []string `yaml:"cacheClassifications"`
}

// JTADTO names the transaction collaborators.
type JTADTO struct {
	TransactionManager      string `yaml:"transactionManager"`
	SynchronizationRegistry string `yaml:"synchronizationRegistry"`
}

// UnitDTO represents a persistence unit definition.
type UnitDTO struct {
	Name            string            `yaml:"name"`
	ScopedName      string            `yaml:"scopedName"`
	SharedCacheMode string            `yaml:"sharedCacheMode"`
	ClassLoader     string            `yaml:"classLoader"`
	Properties      map[string]string `yaml:"properties"`
}
