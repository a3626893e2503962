package ports

import "go.trai.ch/ormbridge/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks

// Platform describes the optional features the hosting environment supports.
type Platform interface {
	// DefaultCacheClassification returns the cache used when a unit does not pick one.
	DefaultCacheClassification() domain.Classification
	// CacheClassifications returns every cache classification the platform offers.
	CacheClassifications() []domain.Classification
}

// JtaManager is the platform's transaction integration handle.
type JtaManager interface {
	// TransactionManager returns the lookup name of the transaction manager.
	TransactionManager() string
	// SynchronizationRegistry returns the lookup name of the synchronization registry.
	SynchronizationRegistry() string
}

// CapabilityInjector installs the platform capability handles on an adaptor.
// Injecting a handle identical to the current one is a no-op.
type CapabilityInjector interface {
	InjectJtaManager(jtaManager JtaManager)
	InjectPlatform(platform Platform)
}

// CapabilityFactory builds capability handles from a deployment descriptor.
type CapabilityFactory interface {
	Platform(spec domain.PlatformSpec) Platform
	JtaManager(spec domain.JTASpec) JtaManager
}
