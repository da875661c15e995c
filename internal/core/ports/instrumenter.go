package ports

import (
	"context"

	"go.trai.ch/pinpoint/internal/core/domain"
)

// Instrumenter transforms a source file and reports its position mapping.
// It is the boundary to the external AST transformer.
//
//go:generate go run go.uber.org/mock/mockgen -source=instrumenter.go -destination=mocks/mock_instrumenter.go -package=mocks
type Instrumenter interface {
	// Instrument runs the command described by cfg on file. hash is the content hash the
	// caller computed and is recorded as the result's OriginalHash.
	Instrument(
		ctx context.Context,
		cfg domain.InstrumenterConfig,
		file domain.FileID,
		hash string,
	) (*domain.InstrumentedFile, error)
}
