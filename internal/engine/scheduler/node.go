package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpoint/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinpoint/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinpoint/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinpoint/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/pinpoint/internal/engine/contentcache"
	"go.trai.ch/pinpoint/internal/engine/translator"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.HasherNodeID,
			contentcache.NodeID,
			translator.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			instrumenter, err := graft.Dep[ports.Instrumenter](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.ContentCache](ctx)
			if err != nil {
				return nil, err
			}

			tr, err := graft.Dep[ports.PositionTranslator](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(instrumenter, hasher, cache, tr, tracer, m), nil
		},
	})
}
