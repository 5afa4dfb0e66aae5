package apkindex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkpin/internal/adapters/cas"
	"go.trai.ch/apkpin/internal/adapters/logger"
	"go.trai.ch/apkpin/internal/core/ports"
)

// NodeID is the unique identifier for the APKINDEX release lookup node.
const NodeID graft.ID = "adapter.apkindex"

func init() {
	graft.Register(graft.Node[ports.ReleaseLookup]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, logger.PortNodeID},
		Run: func(ctx context.Context) (ports.ReleaseLookup, error) {
			store, err := graft.Dep[ports.BlobStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			client, err := NewClient(store, log)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}
