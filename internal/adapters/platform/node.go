package platform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ormbridge/internal/core/ports"
)

// NodeID is the unique identifier for the capability factory Graft node.
const NodeID graft.ID = "adapter.platform"

func init() {
	graft.Register(graft.Node[ports.CapabilityFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CapabilityFactory, error) {
			return NewFactory(), nil
		},
	})
}
