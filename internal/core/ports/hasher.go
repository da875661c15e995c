package ports

// Hasher computes content fingerprints of source files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns the content hash of the file at path.
	HashFile(path string) (string, error)
}

// InputResolver expands include patterns into concrete files.
type InputResolver interface {
	// ResolveInputs resolves files, directories and glob patterns relative to root into a
	// sorted list of absolute file paths. Directory walks skip entries matching excludes.
	ResolveInputs(inputs, excludes []string, root string) ([]string, error)
}
