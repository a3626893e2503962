package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ormbridge/internal/adapters/logger"
	"go.trai.ch/ormbridge/internal/core/ports"
)

// NodeID is the unique identifier for the second-level cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.SecondLevelCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SecondLevelCache, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWirer(log), nil
		},
	})
}
