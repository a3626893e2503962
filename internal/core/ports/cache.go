package ports

import "go.trai.ch/ormbridge/internal/core/domain"

// SecondLevelCache wires second-level cache infrastructure for a persistence unit.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type SecondLevelCache interface {
	// AddSecondLevelCacheDependencies records the cache dependencies of the unit
	// identified by scopedName. It may add defaults to properties and never fails.
	AddSecondLevelCacheDependencies(properties domain.Properties, scopedName string)

	// Lifecycle returns the name of the unit's cache lifecycle state and
	// whether the unit is wired at all.
	Lifecycle(scopedName string) (string, bool)

	// Release drops any bookkeeping held for the unit.
	Release(scopedName string)
}
