package domain

// PersistenceUnit is one named persistence unit as handed over by the host.
// The adaptor only ever mutates SharedCacheMode; Properties may additionally
// be extended by the second-level cache wiring collaborator.
type PersistenceUnit struct {
	// Name is the unit name as declared in the descriptor.
	Name string
	// ScopedName is unique per deployment and namespaces derived resources.
	ScopedName string
	// Properties are the properties declared by the unit itself.
	Properties Properties
	// SharedCacheMode is the JPA shared cache mode of the unit.
	SharedCacheMode SharedCacheMode
	// ClassLoader is an opaque handle passed through to the provider.
	ClassLoader any
}

// ClassLoaderRef names the module whose class loader backs a persistence unit.
type ClassLoaderRef struct {
	Module string
}

// String returns the module name.
func (r ClassLoaderRef) String() string {
	return r.Module
}
