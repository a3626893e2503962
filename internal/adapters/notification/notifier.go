// Package notification dispatches entity manager factory lifecycle events.
package notification

import (
	"slices"
	"sync"

	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier fans lifecycle events out to its listeners in registration order.
type Notifier struct {
	mu        sync.RWMutex
	listeners []ports.EventListener
}

// NewNotifier creates a Notifier with the given listeners registered.
func NewNotifier(listeners ...ports.EventListener) *Notifier {
	n := &Notifier{}
	for _, l := range listeners {
		n.Register(l)
	}
	return n
}

// Register adds a listener. Nil listeners are ignored.
func (n *Notifier) Register(listener ports.EventListener) {
	if listener == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, listener)
}

// BeforeEntityManagerFactoryCreate notifies every listener.
func (n *Notifier) BeforeEntityManagerFactoryCreate(classification domain.Classification, pu *domain.PersistenceUnit) {
	for _, l := range n.snapshot() {
		l.BeforeEntityManagerFactoryCreate(classification, pu)
	}
}

// AfterEntityManagerFactoryCreate notifies every listener.
func (n *Notifier) AfterEntityManagerFactoryCreate(classification domain.Classification, pu *domain.PersistenceUnit) {
	for _, l := range n.snapshot() {
		l.AfterEntityManagerFactoryCreate(classification, pu)
	}
}

func (n *Notifier) snapshot() []ports.EventListener {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return slices.Clone(n.listeners)
}
