package telemetry_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/pinpoint/internal/adapters/telemetry"
	"go.trai.ch/pinpoint/internal/core/ports"
)

func newRecordedTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return telemetry.NewOTelTracerWithProvider(provider, "test"), recorder
}

func TestOTelTracer_Start(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(t.Context(), "instrument", ports.WithFile("/src/a.js"))
	span.SetAttribute("cached", true)
	span.SetAttribute("bytes", 42)
	span.SetAttribute("other", struct{ N int }{N: 1})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "instrument", ended[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String(telemetry.AttrFile, "/src/a.js"),
		attribute.Bool("cached", true),
		attribute.Int("bytes", 42),
		attribute.String("other", "{1}"),
	}, ended[0].Attributes())
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(t.Context(), "instrument")
	span.RecordError(nil)
	span.RecordError(errors.New("instrumenter exited with code 2"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "instrumenter exited with code 2", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	ctx, span := tracer.Start(t.Context(), "run")
	tracer.EmitPlan(ctx, []string{"/a.js", "/b.js"})
	span.End()

	// Without a recording span the plan is dropped.
	tracer.EmitPlan(t.Context(), []string{"/c.js"})

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
	assert.Equal(t, []attribute.KeyValue{attribute.StringSlice("files", []string{"/a.js", "/b.js"})}, events[0].Attributes)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(t.Context(), "noop", ports.WithFile("/a.js"))
	assert.Equal(t, t.Context(), ctx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	tracer.EmitPlan(ctx, []string{"/a.js"})
	span.End()
}

type debugRecorder struct {
	mu      sync.Mutex
	records []string
}

func (r *debugRecorder) Debug(msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, fmt.Sprint(append([]any{msg}, args...)...))
}

func TestLogBridge(t *testing.T) {
	rec := &debugRecorder{}
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(rec)))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracerWithProvider(provider, "test")

	_, ok := tracer.Start(t.Context(), "instrument", ports.WithFile("/src/ok.js"))
	ok.End()

	_, bad := tracer.Start(t.Context(), "instrument", ports.WithFile("/src/bad.js"))
	bad.RecordError(errors.New("boom"))
	bad.End()

	require.Len(t, rec.records, 2)
	assert.Contains(t, rec.records[0], "span finished")
	assert.Contains(t, rec.records[0], "/src/ok.js")
	assert.NotContains(t, rec.records[0], "error")
	assert.Contains(t, rec.records[1], "/src/bad.js")
	assert.Contains(t, rec.records[1], "boom")
}

func TestLogBridge_NilLogger(t *testing.T) {
	bridge := telemetry.NewLogBridge(nil)
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := provider.Tracer("test").Start(t.Context(), "quiet")
	span.End()

	require.NoError(t, bridge.ForceFlush(t.Context()))
	require.NoError(t, bridge.Shutdown(t.Context()))
}
