package domain

// Provider setting keys read or written by the adaptor.
const (
	// SharedCacheModeProperty is the JPA property carrying the raw shared cache mode.
	SharedCacheModeProperty = "javax.persistence.sharedCache.mode"
	// UseSecondLevelCacheProperty is the legacy boolean switch for the second-level cache.
	UseSecondLevelCacheProperty = "hibernate.cache.use_second_level_cache"

	// JPAQLStrictComplianceProperty makes JPQL parsing follow the JPA rules strictly.
	JPAQLStrictComplianceProperty = "hibernate.query.jpaql_strict_compliance"
	// NewIDGeneratorMappingsProperty selects the enhanced identifier generators.
	NewIDGeneratorMappingsProperty = "hibernate.id.new_generator_mappings"
	// ScannerProperty names the class that scans deployment archives for entities.
	ScannerProperty = "hibernate.ejb.resource_scanner"
	// AppClassLoaderProperty carries the class loader of the unit's module.
	AppClassLoaderProperty = "hibernate.classLoader.application"
	// JTAPlatformProperty carries the JTA platform bridge.
	JTAPlatformProperty = "hibernate.transaction.jta.platform"
	// EntityManagerFactoryNameProperty names the entity manager factory.
	EntityManagerFactoryNameProperty = "hibernate.ejb.entitymanager_factory_name"
	// SessionFactoryNameProperty names the session factory.
	SessionFactoryNameProperty = "hibernate.session_factory_name"
	// SessionFactoryNameIsJNDIProperty tells the provider whether to bind the session factory name in JNDI.
	SessionFactoryNameIsJNDIProperty = "hibernate.session_factory_name_is_jndi"

	// CacheRegionPrefixProperty overrides the prefix used for cache region names.
	CacheRegionPrefixProperty = "hibernate.cache.region_prefix"
	// CacheRegionFactoryProperty names the region factory class.
	CacheRegionFactoryProperty = "hibernate.cache.region.factory_class"
	// CacheContainerProperty names the Infinispan cache container backing the regions.
	CacheContainerProperty = "hibernate.cache.infinispan.container"
)

const (
	// ArchiveScannerClass is the scanner injected when the unit declares none.
	ArchiveScannerClass = "org.jboss.as.jpa.hibernate4.HibernateArchiveScanner"
	// DefaultRegionFactoryClass is the region factory used when the unit declares none.
	DefaultRegionFactoryClass = "org.jboss.as.jpa.hibernate4.infinispan.InfinispanRegionFactory"
	// DefaultCacheContainer is the cache container used with the default region factory.
	DefaultCacheContainer = "hibernate"
)
