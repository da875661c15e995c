package ports

import "go.trai.ch/pinpoint/internal/core/domain"

// SnapshotStore persists cached instrumentation results between runs.
// Every method takes the store directory so one adapter can serve several projects.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load returns every persisted record in dir. A missing directory yields an empty map.
	Load(dir string) (map[domain.FileID]*domain.InstrumentedFile, error)

	// Put persists the record for id.
	Put(dir string, id domain.FileID, file *domain.InstrumentedFile) error

	// Delete removes the record for id. Missing records are not an error.
	Delete(dir string, id domain.FileID) error

	// Clear removes every record in dir.
	Clear(dir string) error
}
