// Package domain contains the core domain types for instrumentation caching and
// position translation.
package domain

import "time"

// InstrumentedFile is the result of transforming one source file.
// Only OriginalHash is interpreted by the core; the rest is carried through.
type InstrumentedFile struct {
	// OriginalHash fingerprints the source content the transform ran on.
	OriginalHash string `json:"original_hash" msgpack:"original_hash"`
	// Code is the instrumented source text.
	Code string `json:"code,omitzero" msgpack:"code,omitempty"`
	// SourceMap is the raw position-mapping document for Code.
	SourceMap []byte `json:"source_map,omitzero" msgpack:"source_map,omitempty"`
	// InstrumentedAt records when the transform ran.
	InstrumentedAt time.Time `json:"instrumented_at,omitzero" msgpack:"instrumented_at,omitempty"`
}

// OriginalPosition is a location in the original source.
// Line is 1-based and Column is 0-based.
type OriginalPosition struct {
	Source string
	Line   int
	Column int
	// Name is the original identifier at this location, if the mapping records one.
	Name string
}

// MappedPosition is the raw result of a mapping-table lookup.
// A table may resolve the source without resolving line or column; HasLine and
// HasColumn report which coordinates are meaningful.
type MappedPosition struct {
	Source    string
	Line      int
	Column    int
	Name      string
	HasLine   bool
	HasColumn bool
}
