package contentcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpoint/internal/core/ports"
)

// NodeID is the unique identifier for the content cache Graft node.
const NodeID graft.ID = "engine.content_cache"

func init() {
	graft.Register(graft.Node[ports.ContentCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContentCache, error) {
			return New(), nil
		},
	})
}
