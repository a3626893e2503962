// Package provider adapts persistence units to the Hibernate persistence provider.
package provider

import (
	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports"
)

var _ ports.ProviderAdaptor = (*Adaptor)(nil)

// Adaptor implements ports.ProviderAdaptor for Hibernate.
type Adaptor struct {
	*Capabilities

	logger     ports.Logger
	injector   *PropertyInjector
	resolver   *CacheEligibilityResolver
	cache      ports.SecondLevelCache
	notifier   ports.Notifier
	management ports.ManagementAdaptor
}

// New creates an Adaptor with no capabilities injected yet.
func New(
	logger ports.Logger,
	cache ports.SecondLevelCache,
	notifier ports.Notifier,
	management ports.ManagementAdaptor,
) *Adaptor {
	return &Adaptor{
		Capabilities: NewCapabilities(),
		logger:       logger,
		injector:     NewPropertyInjector(),
		resolver:     NewCacheEligibilityResolver(logger, cache),
		cache:        cache,
		notifier:     notifier,
		management:   management,
	}
}

// AddProviderProperties writes the Hibernate defaults for pu into dst.
func (a *Adaptor) AddProviderProperties(dst domain.PropertySet, pu *domain.PersistenceUnit) {
	a.injector.Inject(dst, pu, a.Snapshot().JtaManager)
}

// AddProviderDependencies resolves second-level cache support for pu.
func (a *Adaptor) AddProviderDependencies(pu *domain.PersistenceUnit) domain.CacheDecision {
	platform := a.Snapshot().Platform
	if platform == nil {
		a.logger.Warn("no platform injected, treating second level cache as unsupported for " + pu.ScopedName)
	}
	return a.resolver.Resolve(pu, platform)
}

// BeforeCreateContainerEntityManagerFactory notifies listeners that the factory for pu is about to be built.
func (a *Adaptor) BeforeCreateContainerEntityManagerFactory(pu *domain.PersistenceUnit) {
	a.notifier.BeforeEntityManagerFactoryCreate(domain.ClassificationInfinispan, pu)
}

// AfterCreateContainerEntityManagerFactory notifies listeners that the factory for pu was built.
func (a *Adaptor) AfterCreateContainerEntityManagerFactory(pu *domain.PersistenceUnit) {
	a.notifier.AfterEntityManagerFactoryCreate(domain.ClassificationInfinispan, pu)
}

// ManagementAdaptor returns the management collaborator.
func (a *Adaptor) ManagementAdaptor() ports.ManagementAdaptor {
	return a.management
}

// IdentifiesCacheRegionByScopedName reports whether the management layer can
// find the unit's cache regions by its scoped name. It is false only when a
// custom region prefix other than the scoped name is configured.
func (a *Adaptor) IdentifiesCacheRegionByScopedName(pu *domain.PersistenceUnit) bool {
	prefix, ok := pu.Properties.Get(domain.CacheRegionPrefixProperty)
	return !ok || prefix == pu.ScopedName
}

// CacheLifecycle reports how far the unit's cache wiring got.
func (a *Adaptor) CacheLifecycle(pu *domain.PersistenceUnit) (string, bool) {
	return a.cache.Lifecycle(pu.ScopedName)
}

// Cleanup releases the cache bookkeeping held for pu.
func (a *Adaptor) Cleanup(pu *domain.PersistenceUnit) {
	a.cache.Release(pu.ScopedName)
}
