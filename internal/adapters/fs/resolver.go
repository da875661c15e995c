package fs

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob and the Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs resolves files, directories and glob patterns to a sorted, de-duplicated
// list of absolute file paths. Relative inputs are taken relative to root.
// An input that matches nothing yields domain.ErrInputNotFound.
func (r *Resolver) ResolveInputs(inputs, excludes []string, root string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, input := range inputs {
		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, input)
		}
		path, err := filepath.Abs(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", input)
		}

		matches := []string{path}
		if _, statErr := os.Stat(path); statErr != nil {
			matches, err = filepath.Glob(path)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
			}
			if len(matches) == 0 {
				return nil, errors.Join(domain.ErrInputNotFound, zerr.With(zerr.New("no files match input"), "path", path))
			}
		}

		for _, match := range matches {
			if err := r.addPath(match, excludes, uniquePaths); err != nil {
				return nil, err
			}
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}

func (r *Resolver) addPath(path string, excludes []string, seen map[string]bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Join(domain.ErrPathStatFailed, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path))
	}

	if !info.IsDir() {
		if !Excluded(filepath.Base(path), excludes) {
			seen[path] = true
		}
		return nil
	}

	for file := range r.walker.WalkFiles(path, excludes) {
		seen[file] = true
	}
	return nil
}
