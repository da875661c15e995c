package translator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpoint/internal/adapters/sourcemap"
	"go.trai.ch/pinpoint/internal/core/ports"
)

// NodeID is the unique identifier for the position translator Graft node.
const NodeID graft.ID = "engine.translator"

func init() {
	graft.Register(graft.Node[ports.PositionTranslator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{sourcemap.NodeID},
		Run: func(ctx context.Context) (ports.PositionTranslator, error) {
			parser, err := graft.Dep[ports.MapParser](ctx)
			if err != nil {
				return nil, err
			}
			return New(parser), nil
		},
	})
}
