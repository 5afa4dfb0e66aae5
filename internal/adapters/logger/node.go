package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkpin/internal/core/ports"
)

const (
	// NodeID provides the concrete logger so the CLI can redirect and tune it.
	NodeID graft.ID = "adapter.logger"
	// PortNodeID provides the logger as ports.Logger.
	PortNodeID graft.ID = "adapter.logger.port"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        PortNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			return graft.Dep[*Logger](ctx)
		},
	})
}
