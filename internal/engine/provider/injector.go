package provider

import (
	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports"
)

// providerDefault is one provider setting written by the injector.
type providerDefault struct {
	key string
	// always writes the value even when the unit declares the key.
	always bool
	// unlessDeclared skips the setting when the unit declares this other key.
	unlessDeclared string
	value          func(pu *domain.PersistenceUnit, jta ports.JtaManager) any
}

func constant(v any) func(*domain.PersistenceUnit, ports.JtaManager) any {
	return func(*domain.PersistenceUnit, ports.JtaManager) any { return v }
}

func scopedName(pu *domain.PersistenceUnit, _ ports.JtaManager) any {
	return pu.ScopedName
}

// providerDefaults is applied in order.
var providerDefaults = []providerDefault{
	// JPQL aliases are matched case-insensitively.
	{key: domain.JPAQLStrictComplianceProperty, value: constant("true")},
	{key: domain.NewIDGeneratorMappingsProperty, value: constant("true")},
	{key: domain.ScannerProperty, value: constant(domain.ArchiveScannerClass)},
	{
		key:    domain.AppClassLoaderProperty,
		always: true,
		value: func(pu *domain.PersistenceUnit, _ ports.JtaManager) any {
			return pu.ClassLoader
		},
	},
	{
		key: domain.JTAPlatformProperty,
		value: func(_ *domain.PersistenceUnit, jta ports.JtaManager) any {
			return NewJtaPlatform(jta)
		},
	},
	{key: domain.EntityManagerFactoryNameProperty, value: scopedName},
	{key: domain.SessionFactoryNameProperty, value: scopedName},
	{
		key:            domain.SessionFactoryNameIsJNDIProperty,
		unlessDeclared: domain.SessionFactoryNameProperty,
		value:          constant(false),
	},
}

// PropertyInjector fills provider defaults into an output property set.
type PropertyInjector struct{}

// NewPropertyInjector creates a PropertyInjector.
func NewPropertyInjector() *PropertyInjector {
	return &PropertyInjector{}
}

// Inject writes every provider default into dst whose key the unit does not
// declare in its own properties. Presence in dst itself is irrelevant.
func (i *PropertyInjector) Inject(dst domain.PropertySet, pu *domain.PersistenceUnit, jta ports.JtaManager) {
	for _, d := range providerDefaults {
		if d.unlessDeclared != "" && pu.Properties.Has(d.unlessDeclared) {
			continue
		}
		if !d.always && pu.Properties.Has(d.key) {
			continue
		}
		dst.Put(d.key, d.value(pu, jta))
	}
}
