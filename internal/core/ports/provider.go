package ports

import "go.trai.ch/ormbridge/internal/core/domain"

// ProviderAdaptor bridges persistence units to a specific persistence provider.
//
//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks
type ProviderAdaptor interface {
	CapabilityInjector

	// AddProviderProperties writes provider defaults into dst without
	// overriding anything the unit declares itself.
	AddProviderProperties(dst domain.PropertySet, pu *domain.PersistenceUnit)

	// AddProviderDependencies decides whether the unit gets a second-level cache.
	// It may overwrite pu.SharedCacheMode.
	AddProviderDependencies(pu *domain.PersistenceUnit) domain.CacheDecision

	BeforeCreateContainerEntityManagerFactory(pu *domain.PersistenceUnit)
	AfterCreateContainerEntityManagerFactory(pu *domain.PersistenceUnit)

	ManagementAdaptor() ManagementAdaptor

	// IdentifiesCacheRegionByScopedName reports whether cache region names of
	// the unit are prefixed with its scoped name.
	IdentifiesCacheRegionByScopedName(pu *domain.PersistenceUnit) bool

	// CacheLifecycle reports the cache lifecycle state of the unit. It must be
	// read before Cleanup.
	CacheLifecycle(pu *domain.PersistenceUnit) (string, bool)

	// Cleanup releases anything held for the unit.
	Cleanup(pu *domain.PersistenceUnit)
}
