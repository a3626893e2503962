package management

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ormbridge/internal/core/ports"
)

// NodeID is the unique identifier for the management adaptor Graft node.
const NodeID graft.ID = "adapter.management"

func init() {
	graft.Register(graft.Node[ports.ManagementAdaptor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManagementAdaptor, error) {
			return New(), nil
		},
	})
}
