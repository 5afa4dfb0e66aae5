package apko

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkpin/internal/adapters/logger"
	"go.trai.ch/apkpin/internal/core/ports"
)

// NodeID is the unique identifier for the lock generator node.
const NodeID graft.ID = "adapter.apko"

func init() {
	graft.Register(graft.Node[ports.LockGenerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.PortNodeID},
		Run: func(ctx context.Context) (ports.LockGenerator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(log), nil
		},
	})
}
