package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpoint/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpoint/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpoint/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpoint/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpoint/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpoint/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/pinpoint/internal/engine/contentcache"
	"go.trai.ch/pinpoint/internal/engine/scheduler"
	"go.trai.ch/pinpoint/internal/engine/translator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			contentcache.NodeID,
			translator.NodeID,
			scheduler.NodeID,
			metrics.NodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
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

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, hasher, store, cache, tr, sched, m, renderer, log), nil
}
