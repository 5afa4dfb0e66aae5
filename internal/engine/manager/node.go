package manager

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkpin/internal/adapters/apkindex"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/apkpin/internal/adapters/apko"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/apkpin/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/apkpin/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/apkpin/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/apkpin/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/apkpin/internal/core/ports"
)

// NodeID is the unique identifier for the manager Graft node.
const NodeID graft.ID = "engine.manager"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.WorkTreeNodeID,
			apkindex.NodeID,
			apko.NodeID,
			fs.HasherNodeID,
			progrock.PortNodeID,
			logger.PortNodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			tree, err := graft.Dep[ports.WorkTree](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[ports.ReleaseLookup](ctx)
			if err != nil {
				return nil, err
			}

			locker, err := graft.Dep[ports.LockGenerator](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, tree, registry, locker, hasher, telemetry, log), nil
		},
	})
}
