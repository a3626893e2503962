// Package platform provides capability handles built from a deployment descriptor.
package platform

import (
	"slices"
	"sync"

	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports"
)

var (
	_ ports.Platform          = (*StaticPlatform)(nil)
	_ ports.JtaManager        = (*TransactionManager)(nil)
	_ ports.CapabilityFactory = (*Factory)(nil)
)

// StaticPlatform reports a fixed set of cache classifications.
type StaticPlatform struct {
	defaultClassification domain.Classification
	classifications       []domain.Classification
}

// NewStaticPlatform creates a platform from spec.
func NewStaticPlatform(spec domain.PlatformSpec) *StaticPlatform {
	return &StaticPlatform{
		defaultClassification: spec.DefaultCacheClassification,
		classifications:       slices.Clone(spec.CacheClassifications),
	}
}

// DefaultCacheClassification returns the platform's default cache.
func (p *StaticPlatform) DefaultCacheClassification() domain.Classification {
	return p.defaultClassification
}

// CacheClassifications returns a copy of the supported classifications.
func (p *StaticPlatform) CacheClassifications() []domain.Classification {
	return slices.Clone(p.classifications)
}

// TransactionManager is a JTA handle identified by lookup names.
type TransactionManager struct {
	transactionManager      string
	synchronizationRegistry string
}

// NewTransactionManager creates a JTA handle from spec.
func NewTransactionManager(spec domain.JTASpec) *TransactionManager {
	return &TransactionManager{
		transactionManager:      spec.TransactionManager,
		synchronizationRegistry: spec.SynchronizationRegistry,
	}
}

// TransactionManager returns the transaction manager lookup name.
func (m *TransactionManager) TransactionManager() string {
	return m.transactionManager
}

// SynchronizationRegistry returns the synchronization registry lookup name.
func (m *TransactionManager) SynchronizationRegistry() string {
	return m.synchronizationRegistry
}

// Factory builds capability handles. Handles for equal specs are reused, so
// re-injecting them into an adaptor is a no-op.
type Factory struct {
	mu        sync.Mutex
	platforms map[string]*StaticPlatform
	managers  map[domain.JTASpec]*TransactionManager
}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{
		platforms: make(map[string]*StaticPlatform),
		managers:  make(map[domain.JTASpec]*TransactionManager),
	}
}

// Platform returns the platform handle for spec.
func (f *Factory) Platform(spec domain.PlatformSpec) ports.Platform {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := spec.DefaultCacheClassification.String()
	for _, c := range spec.CacheClassifications {
		key += "," + c.String()
	}
	if p, ok := f.platforms[key]; ok {
		return p
	}
	p := NewStaticPlatform(spec)
	f.platforms[key] = p
	return p
}

// JtaManager returns the JTA handle for spec.
func (f *Factory) JtaManager(spec domain.JTASpec) ports.JtaManager {
	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok := f.managers[spec]; ok {
		return m
	}
	m := NewTransactionManager(spec)
	f.managers[spec] = m
	return m
}
