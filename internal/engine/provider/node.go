package provider

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ormbridge/internal/adapters/cache"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ormbridge/internal/adapters/logger"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ormbridge/internal/adapters/management"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ormbridge/internal/adapters/notification" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ormbridge/internal/core/ports"
)

// NodeID is the unique identifier for the provider adaptor Graft node.
const NodeID graft.ID = "engine.provider"

func init() {
	graft.Register(graft.Node[ports.ProviderAdaptor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			cache.NodeID,
			notification.NodeID,
			management.NodeID,
		},
		Run: func(ctx context.Context) (ports.ProviderAdaptor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			secondLevelCache, err := graft.Dep[ports.SecondLevelCache](ctx)
			if err != nil {
				return nil, err
			}

			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}

			mgmt, err := graft.Dep[ports.ManagementAdaptor](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, secondLevelCache, notifier, mgmt), nil
		},
	})
}
