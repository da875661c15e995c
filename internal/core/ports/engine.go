package ports

import (
	"context"
	"iter"

	"go.trai.ch/pinpoint/internal/core/domain"
)

// ContentCache maps files to their last instrumentation result, validated by content hash.
//
//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type ContentCache interface {
	// Get returns the entry for id only if its OriginalHash equals currentHash.
	Get(id domain.FileID, currentHash string) (*domain.InstrumentedFile, bool)
	// Set stores file for id, replacing any previous entry.
	Set(id domain.FileID, file *domain.InstrumentedFile)
	// Remove deletes the entry for id, if any.
	Remove(id domain.FileID)
	// Prune deletes every entry whose id is not in valid and returns the removed ids.
	Prune(valid map[domain.FileID]struct{}) []domain.FileID
	// Clear deletes every entry.
	Clear()
	// Len returns the number of entries.
	Len() int
	// All iterates over a snapshot of the entries in path order.
	All() iter.Seq2[domain.FileID, *domain.InstrumentedFile]
}

// PositionTranslator resolves instrumented positions back to original source positions.
type PositionTranslator interface {
	// RegisterMap parses raw and makes it the active table for id.
	RegisterMap(ctx context.Context, id domain.FileID, raw []byte) error
	// OriginalPosition resolves a generated line (1-based) and column (0-based).
	OriginalPosition(id domain.FileID, line, column int) (domain.OriginalPosition, bool)
	// UnregisterMap releases the table for id, if any.
	UnregisterMap(id domain.FileID) error
	// Clear releases every table.
	Clear() error
}

// Renderer presents run results to the user.
type Renderer interface {
	// Report prints the outcome of an instrumentation run.
	Report(report domain.Report)
	// Position prints a resolved original position for a generated location.
	Position(file domain.FileID, line, column int, pos domain.OriginalPosition)
}
