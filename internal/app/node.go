package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ormbridge/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ormbridge/internal/adapters/hasher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ormbridge/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ormbridge/internal/adapters/platform"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ormbridge/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ormbridge/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ormbridge/internal/core/ports"
	"go.trai.ch/ormbridge/internal/engine/provider"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			platform.NodeID,
			provider.NodeID,
			hasher.NodeID,
			telemetry.TracerNodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.CapabilityFactory](ctx)
	if err != nil {
		return nil, err
	}

	adaptor, err := graft.Dep[ports.ProviderAdaptor](ctx)
	if err != nil {
		return nil, err
	}

	h, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, factory, adaptor, h, tracer, renderer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
		Tracer: tracer,
	}, nil
}
