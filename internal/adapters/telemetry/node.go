package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pinpoint/internal/adapters/logger"
	"go.trai.ch/pinpoint/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer that emits pinpoint spans.
const InstrumentationName = "go.trai.ch/pinpoint"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			var opts []sdktrace.TracerProviderOption
			if dl, ok := log.(DebugLogger); ok {
				opts = append(opts, sdktrace.WithSpanProcessor(NewLogBridge(dl)))
			}
			provider := sdktrace.NewTracerProvider(opts...)

			return NewOTelTracerWithProvider(provider, InstrumentationName), nil
		},
	})
}
