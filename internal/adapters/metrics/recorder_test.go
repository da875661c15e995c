package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinpoint/internal/adapters/metrics"
	"go.trai.ch/pinpoint/internal/core/domain"
)

func TestRecorder_Counters(t *testing.T) {
	rec := metrics.NewRecorder()

	rec.CacheLookup(true)
	rec.CacheLookup(false)
	rec.CacheLookup(false)
	rec.Instrumented(true)
	rec.MapRegistered(false)
	rec.PositionLookup(true)

	expected := `
# HELP pinpoint_cache_lookups_total Content cache lookups by result.
# TYPE pinpoint_cache_lookups_total counter
pinpoint_cache_lookups_total{result="hit"} 1
pinpoint_cache_lookups_total{result="miss"} 2
# HELP pinpoint_instrumenter_runs_total Instrumenter invocations by outcome.
# TYPE pinpoint_instrumenter_runs_total counter
pinpoint_instrumenter_runs_total{outcome="ok"} 1
# HELP pinpoint_map_registrations_total Source map registrations by outcome.
# TYPE pinpoint_map_registrations_total counter
pinpoint_map_registrations_total{outcome="error"} 1
# HELP pinpoint_position_lookups_total Position translations by result.
# TYPE pinpoint_position_lookups_total counter
pinpoint_position_lookups_total{result="found"} 1
`
	require.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected)))
}

func TestRecorder_Isolated(t *testing.T) {
	a := metrics.NewRecorder()
	b := metrics.NewRecorder()

	a.CacheLookup(true)

	n, err := testutil.GatherAndCount(a.Registry())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = testutil.GatherAndCount(b.Registry())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.Instrumented(false)

	path := filepath.Join(t.TempDir(), "pinpoint.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pinpoint_instrumenter_runs_total{outcome="error"} 1`)
}

func TestRecorder_WriteTextfile_BadDir(t *testing.T) {
	rec := metrics.NewRecorder()

	err := rec.WriteTextfile(filepath.Join(t.TempDir(), "missing", "pinpoint.prom"))
	require.ErrorIs(t, err, domain.ErrMetricsWriteFailed)
	assert.Contains(t, err.Error(), "failed to write metrics textfile")
}
