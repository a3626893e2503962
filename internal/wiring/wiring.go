// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ormbridge/internal/adapters/cache"
	_ "go.trai.ch/ormbridge/internal/adapters/config"
	_ "go.trai.ch/ormbridge/internal/adapters/hasher"
	_ "go.trai.ch/ormbridge/internal/adapters/logger"
	_ "go.trai.ch/ormbridge/internal/adapters/management"
	_ "go.trai.ch/ormbridge/internal/adapters/notification"
	_ "go.trai.ch/ormbridge/internal/adapters/platform"
	_ "go.trai.ch/ormbridge/internal/adapters/report"
	_ "go.trai.ch/ormbridge/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/ormbridge/internal/app"
	_ "go.trai.ch/ormbridge/internal/engine/provider"
)
