// Package cache wires second-level cache settings into persistence units and
// tracks the cache lifecycle of every wired unit.
package cache

import (
	"fmt"
	"sync"

	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports"
)

var (
	_ ports.SecondLevelCache = (*Wirer)(nil)
	_ ports.EventListener    = (*Wirer)(nil)
)

// State is the lifecycle state of a unit's cache wiring.
type State int

const (
	// StateWired means cache dependencies were added for the unit.
	StateWired State = iota
	// StateStarting means the entity manager factory is being created.
	StateStarting
	// StateStarted means the entity manager factory was created.
	StateStarted
)

func (s State) String() string {
	switch s {
	case StateWired:
		return "wired"
	case StateStarting:
		return "starting"
	case StateStarted:
		return "started"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Wirer adds default cache region settings and keeps one record per wired unit.
type Wirer struct {
	logger ports.Logger

	mu    sync.Mutex
	units map[string]State
}

// NewWirer creates a Wirer.
func NewWirer(logger ports.Logger) *Wirer {
	return &Wirer{
		logger: logger,
		units:  make(map[string]State),
	}
}

// AddSecondLevelCacheDependencies defaults the region prefix, the region
// factory and, for the default factory, the cache container.
func (w *Wirer) AddSecondLevelCacheDependencies(properties domain.Properties, scopedName string) {
	if properties != nil {
		properties.SetIfAbsent(domain.CacheRegionPrefixProperty, scopedName)
		properties.SetIfAbsent(domain.CacheRegionFactoryProperty, domain.DefaultRegionFactoryClass)
		if properties[domain.CacheRegionFactoryProperty] == domain.DefaultRegionFactoryClass {
			properties.SetIfAbsent(domain.CacheContainerProperty, domain.DefaultCacheContainer)
		}
	}

	w.mu.Lock()
	w.units[scopedName] = StateWired
	w.mu.Unlock()

	w.logger.Trace(fmt.Sprintf("second level cache wired for %s", scopedName))
}

// Release drops the record of the unit.
func (w *Wirer) Release(scopedName string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.units, scopedName)
}

// State returns the lifecycle state of the unit and whether it is wired.
func (w *Wirer) State(scopedName string) (State, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, ok := w.units[scopedName]
	return s, ok
}

// Lifecycle returns the state name of a wired unit.
func (w *Wirer) Lifecycle(scopedName string) (string, bool) {
	s, ok := w.State(scopedName)
	if !ok {
		return "", false
	}
	return s.String(), true
}

// BeforeEntityManagerFactoryCreate moves a wired unit to starting.
func (w *Wirer) BeforeEntityManagerFactoryCreate(classification domain.Classification, pu *domain.PersistenceUnit) {
	w.advance(classification, pu, StateStarting)
}

// AfterEntityManagerFactoryCreate moves a wired unit to started.
func (w *Wirer) AfterEntityManagerFactoryCreate(classification domain.Classification, pu *domain.PersistenceUnit) {
	w.advance(classification, pu, StateStarted)
}

func (w *Wirer) advance(classification domain.Classification, pu *domain.PersistenceUnit, next State) {
	if classification != domain.ClassificationInfinispan || pu == nil {
		return
	}

	w.mu.Lock()
	current, ok := w.units[pu.ScopedName]
	if ok && current < next {
		w.units[pu.ScopedName] = next
	}
	w.mu.Unlock()

	if ok && current < next {
		w.logger.Trace(fmt.Sprintf("second level cache for %s is %s", pu.ScopedName, next))
	}
}
