// Package management describes persistence units to management tooling.
package management

import (
	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports"
)

const (
	// IdentificationLabel is the resource kind shown for persistence units.
	IdentificationLabel = "hibernate-persistence-unit"
	// ProviderVersion is the provider release line the adaptor targets.
	ProviderVersion = "4.3"
)

var _ ports.ManagementAdaptor = (*Adaptor)(nil)

// Adaptor implements ports.ManagementAdaptor.
type Adaptor struct{}

// New creates an Adaptor.
func New() *Adaptor {
	return &Adaptor{}
}

// IdentificationLabel returns the management resource label.
func (a *Adaptor) IdentificationLabel() string {
	return IdentificationLabel
}

// Version returns the provider version.
func (a *Adaptor) Version() string {
	return ProviderVersion
}

// RegionName returns "<prefix>.<entity>", where prefix is the unit's region
// prefix property or, when unset, its scoped name.
func (a *Adaptor) RegionName(pu *domain.PersistenceUnit, entity string) string {
	prefix, ok := pu.Properties.Get(domain.CacheRegionPrefixProperty)
	if !ok {
		prefix = pu.ScopedName
	}
	return prefix + "." + entity
}
