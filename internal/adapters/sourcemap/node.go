package sourcemap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpoint/internal/core/ports"
)

// NodeID is the unique identifier for the source map parser Graft node.
const NodeID graft.ID = "adapter.sourcemap_parser"

func init() {
	graft.Register(graft.Node[ports.MapParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MapParser, error) {
			return NewParser(), nil
		},
	})
}
