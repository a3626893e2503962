package ports

// Hasher fingerprints effective provider configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputePropertiesHash returns a stable hash of the given properties.
	ComputePropertiesHash(scopedName string, properties map[string]string) string
}
