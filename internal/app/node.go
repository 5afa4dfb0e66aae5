package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkpin/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/apkpin/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/apkpin/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/apkpin/internal/core/ports"
	"go.trai.ch/apkpin/internal/engine/manager"
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
			manager.NodeID,
			logger.PortNodeID,
			progrock.NodeID,
			cas.CacheNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			mgr, err := graft.Dep[*manager.Manager](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[*progrock.Recorder](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.IndexCache](ctx)
			if err != nil {
				return nil, err
			}

			return New(mgr, log, recorder).WithIndexCache(cache), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.PortNodeID,
			progrock.PortNodeID,
		},
		Run: runComponentsNode,
	})
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

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}
