package ports

// Metrics records counters about cache and translator activity.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// CacheLookup records a content cache lookup.
	CacheLookup(hit bool)
	// Instrumented records an instrumenter invocation and whether it succeeded.
	Instrumented(ok bool)
	// MapRegistered records a map registration attempt and whether it succeeded.
	MapRegistered(ok bool)
	// PositionLookup records a position translation and whether it resolved.
	PositionLookup(found bool)
	// WriteTextfile writes the current values in the Prometheus text format.
	WriteTextfile(path string) error
}
