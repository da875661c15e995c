package domain

import (
	"path/filepath"
	"unique"
)

// FileID is the stable identifier of a source file, shared by the content cache and
// the position translator. It wraps a unique.Handle[string] so repeated paths are
// interned and compare by handle.
type FileID struct {
	h unique.Handle[string]
}

// NewFileID creates a FileID from a path. The path is cleaned but not made absolute;
// callers that care about absoluteness resolve the path first.
func NewFileID(path string) FileID {
	if path == "" {
		return FileID{}
	}
	return FileID{
		h: unique.Make(filepath.Clean(path)),
	}
}

// NewFileIDs converts a slice of paths to FileIDs.
func NewFileIDs(paths []string) []FileID {
	ids := make([]FileID, len(paths))
	for i, p := range paths {
		ids[i] = NewFileID(p)
	}
	return ids
}

// String returns the underlying path.
func (id FileID) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether the id was never set.
func (id FileID) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

// Value returns the underlying unique.Handle[string].
func (id FileID) Value() unique.Handle[string] {
	return id.h
}

// MarshalText implements encoding.TextMarshaler.
func (id FileID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *FileID) UnmarshalText(text []byte) error {
	*id = NewFileID(string(text))
	return nil
}
