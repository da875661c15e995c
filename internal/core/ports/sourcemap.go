package ports

import (
	"context"

	"go.trai.ch/pinpoint/internal/core/domain"
)

// MapParser builds lookup tables from serialized position-mapping documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=sourcemap.go -destination=mocks/mock_sourcemap.go -package=mocks
type MapParser interface {
	// Parse decodes raw into a PositionTable. It returns an error wrapping
	// domain.ErrInvalidSourceMap or domain.ErrUnsupportedSourceMap on bad input.
	Parse(ctx context.Context, raw []byte) (PositionTable, error)
}

// PositionTable resolves generated positions to original ones.
// A table owns its resources until Close is called.
type PositionTable interface {
	// Lookup returns the mapping for a generated line (1-based) and column (0-based).
	Lookup(line, column int) (domain.MappedPosition, bool)
	// Close releases the table. Lookups after Close miss.
	Close() error
}
