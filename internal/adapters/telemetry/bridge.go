package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// DebugLogger receives one record per finished span.
type DebugLogger interface {
	Debug(msg string, args ...any)
}

// LogBridge implements sdktrace.SpanProcessor and reports every finished span as a
// debug log record, so span timings show up in verbose output.
type LogBridge struct {
	logger DebugLogger
}

// NewLogBridge returns a new LogBridge writing to logger.
func NewLogBridge(logger DebugLogger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its file, duration and status.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	args := []any{"span", s.Name(), "duration", s.EndTime().Sub(s.StartTime()).String()}
	if file, ok := spanFile(s.Attributes()); ok {
		args = append(args, "file", file)
	}
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		args = append(args, "error", desc)
	}

	b.logger.Debug("span finished", args...)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(context.Context) error {
	return nil
}

func spanFile(attrs []attribute.KeyValue) (string, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == AttrFile {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}
