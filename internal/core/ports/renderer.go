package ports

import "go.trai.ch/ormbridge/internal/core/domain"

// Renderer writes resolution reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	Render(reports []domain.UnitReport, format domain.OutputFormat) error
}
