package notification

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ormbridge/internal/adapters/cache"
	"go.trai.ch/ormbridge/internal/core/ports"
)

// NodeID is the unique identifier for the notifier Graft node.
const NodeID graft.ID = "adapter.notification"

func init() {
	graft.Register(graft.Node[ports.Notifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID},
		Run: func(ctx context.Context) (ports.Notifier, error) {
			secondLevelCache, err := graft.Dep[ports.SecondLevelCache](ctx)
			if err != nil {
				return nil, err
			}

			n := NewNotifier()
			if listener, ok := secondLevelCache.(ports.EventListener); ok {
				n.Register(listener)
			}
			return n, nil
		},
	})
}
