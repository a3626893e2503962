// Package hasher fingerprints effective provider configuration.
package hasher

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ormbridge/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash fingerprints of unit properties.
type Hasher struct{}

// New creates a new Hasher.
func New() *Hasher {
	return &Hasher{}
}

// ComputePropertiesHash hashes the scoped name followed by every property in
// key order. Map iteration order never affects the result.
func (h *Hasher) ComputePropertiesHash(scopedName string, properties map[string]string) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(scopedName)
	_, _ = hasher.Write([]byte{0}) // Separator

	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(properties[k])
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
