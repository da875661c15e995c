package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpoint/internal/adapters/logger"
	"go.trai.ch/pinpoint/internal/core/ports"
)

const NodeID graft.ID = "adapter.instrumenter"

func init() {
	graft.Register(graft.Node[ports.Instrumenter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Instrumenter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstrumenter(log), nil
		},
	})
}
