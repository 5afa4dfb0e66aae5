package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkpin/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the concrete progrock recorder node.
	NodeID graft.ID = "adapter.telemetry.progrock"
	// PortNodeID is the unique identifier for the telemetry adapter node.
	PortNodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[*Recorder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Recorder, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Telemetry]{
		ID:        PortNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			rec, err := graft.Dep[*Recorder](ctx)
			if err != nil {
				return nil, err
			}
			return rec, nil
		},
	})
}
