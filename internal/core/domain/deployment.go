package domain

// Deployment is a loaded deployment descriptor: the hosting platform's
// capabilities and the persistence units it carries.
type Deployment struct {
	Name     string
	Platform PlatformSpec
	JTA      JTASpec
	Units    []*PersistenceUnit
}

// PlatformSpec describes the cache capabilities of the hosting platform.
type PlatformSpec struct {
	DefaultCacheClassification Classification
	CacheClassifications       []Classification
}

// JTASpec names the transaction collaborators exposed by the platform.
type JTASpec struct {
	TransactionManager      string
	SynchronizationRegistry string
}

// Unit returns the unit with the given name or scoped name.
func (d *Deployment) Unit(name string) (*PersistenceUnit, bool) {
	for _, u := range d.Units {
		if u.Name == name || u.ScopedName == name {
			return u, true
		}
	}
	return nil, false
}
