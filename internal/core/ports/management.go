package ports

import "go.trai.ch/ormbridge/internal/core/domain"

// ManagementAdaptor exposes provider details to the management layer.
//
//go:generate go run go.uber.org/mock/mockgen -source=management.go -destination=mocks/mock_management.go -package=mocks
type ManagementAdaptor interface {
	// IdentificationLabel names the kind of resource shown in management views.
	IdentificationLabel() string
	// Version is the provider version the adaptor targets.
	Version() string
	// RegionName returns the cache region name used for an entity of the unit.
	RegionName(pu *domain.PersistenceUnit, entity string) string
}
