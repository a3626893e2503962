package ports

import "go.trai.ch/ormbridge/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=lifecycle.go -destination=mocks/mock_lifecycle.go -package=mocks

// EventListener observes entity manager factory creation.
type EventListener interface {
	BeforeEntityManagerFactoryCreate(classification domain.Classification, pu *domain.PersistenceUnit)
	AfterEntityManagerFactoryCreate(classification domain.Classification, pu *domain.PersistenceUnit)
}

// Notifier fans lifecycle events out to registered listeners.
type Notifier interface {
	EventListener
	// Register adds a listener. Listeners are notified in registration order.
	Register(listener EventListener)
}
