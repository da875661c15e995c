// Package metrics records pinpoint activity as Prometheus counters.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*Recorder)(nil)

const namespace = "pinpoint"

// Recorder implements ports.Metrics on a private registry, so several recorders can
// live in one process without clashing on the default registerer.
type Recorder struct {
	registry *prometheus.Registry

	cacheLookups   *prometheus.CounterVec
	instrumented   *prometheus.CounterVec
	mapRegistered  *prometheus.CounterVec
	positionLookup *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all counters registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Content cache lookups by result.",
		}, []string{"result"}),
		instrumented: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instrumenter_runs_total",
			Help:      "Instrumenter invocations by outcome.",
		}, []string{"outcome"}),
		mapRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "map_registrations_total",
			Help:      "Source map registrations by outcome.",
		}, []string{"outcome"}),
		positionLookup: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "position_lookups_total",
			Help:      "Position translations by result.",
		}, []string{"result"}),
	}
}

// Registry returns the registry holding the counters.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// CacheLookup records a content cache lookup.
func (r *Recorder) CacheLookup(hit bool) {
	r.cacheLookups.WithLabelValues(label(hit, "hit", "miss")).Inc()
}

// Instrumented records an instrumenter invocation.
func (r *Recorder) Instrumented(ok bool) {
	r.instrumented.WithLabelValues(label(ok, "ok", "error")).Inc()
}

// MapRegistered records a map registration attempt.
func (r *Recorder) MapRegistered(ok bool) {
	r.mapRegistered.WithLabelValues(label(ok, "ok", "error")).Inc()
}

// PositionLookup records a position translation.
func (r *Recorder) PositionLookup(found bool) {
	r.positionLookup.WithLabelValues(label(found, "found", "absent")).Inc()
}

// WriteTextfile writes every counter to path in the text exposition format. The file
// is written atomically so a node exporter never reads a partial file.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Join(domain.ErrMetricsWriteFailed, zerr.With(zerr.Wrap(err, "failed to write metrics textfile"), "path", path))
	}
	return nil
}

func label(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
