package ports

import "go.trai.ch/ormbridge/internal/core/domain"

// ConfigLoader defines the interface for loading a deployment descriptor.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the descriptor at path.
	Load(path string) (*domain.Deployment, error)
}
