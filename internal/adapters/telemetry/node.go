package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/ormbridge/internal/adapters/logger"
	"go.trai.ch/ormbridge/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer used for unit resolution spans.
const InstrumentationName = "ormbridge"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tp := NewTracerProvider(log)
			// Register it as the global provider.
			otel.SetTracerProvider(tp)

			return NewOTelTracerWithProvider(InstrumentationName, tp), nil
		},
	})
}
