// Package cas persists instrumentation results in a content-addressed record store.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/zerr"
)

// schemaVersion is bumped whenever the record layout changes. Records written with
// another version are ignored on load.
const schemaVersion uint16 = 1

const (
	recordExt  = ".mp"
	tempPrefix = "tmp-"
)

var _ ports.SnapshotStore = (*Store)(nil)

// record is the on-disk payload of one cache entry.
type record struct {
	Schema uint16                  `msgpack:"schema"`
	FileID string                  `msgpack:"file_id"`
	File   domain.InstrumentedFile `msgpack:"file"`
}

// Store implements ports.SnapshotStore with one msgpack file per source file.
type Store struct {
	mu sync.RWMutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads every record in dir.
func (s *Store) Load(dir string) (map[domain.FileID]*domain.InstrumentedFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[domain.FileID]*domain.InstrumentedFile{}, nil
		}
		return nil, errors.Join(domain.ErrStoreReadFailed, zerr.With(zerr.Wrap(err, "failed to list store"), "dir", dir))
	}

	files := make(map[domain.FileID]*domain.InstrumentedFile, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != recordExt {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		rec, err := readRecord(path)
		if err != nil {
			return nil, err
		}
		if rec.Schema != schemaVersion {
			continue
		}

		file := rec.File
		files[domain.NewFileID(rec.FileID)] = &file
	}

	return files, nil
}

// Put writes the record for id, replacing any previous one atomically.
func (s *Store) Put(dir string, id domain.FileID, file *domain.InstrumentedFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := msgpack.Marshal(&record{
		Schema: schemaVersion,
		FileID: id.String(),
		File:   *file,
	})
	if err != nil {
		return errors.Join(domain.ErrStoreMarshalFailed, zerr.With(zerr.Wrap(err, "failed to encode record"), "file", id.String()))
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrStoreCreateFailed, zerr.With(zerr.Wrap(err, "failed to create store"), "dir", dir))
	}

	tmp, err := os.CreateTemp(dir, tempPrefix+"*")
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "failed to create temp file"), "dir", dir))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "failed to write record"), "file", id.String()))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "failed to write record"), "file", id.String()))
	}
	if err := os.Rename(tmpName, recordPath(dir, id)); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "failed to write record"), "file", id.String()))
	}

	return nil
}

// Delete removes the record for id. A missing record is not an error.
func (s *Store) Delete(dir string, id domain.FileID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(recordPath(dir, id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(domain.ErrStoreDeleteFailed, zerr.With(zerr.Wrap(err, "failed to remove record"), "file", id.String()))
	}
	return nil
}

// Clear removes every record and leftover temp file in dir. Other files are kept.
func (s *Store) Clear(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(domain.ErrStoreDeleteFailed, zerr.With(zerr.Wrap(err, "failed to list store"), "dir", dir))
	}

	var errs error
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (filepath.Ext(name) != recordExt && !strings.HasPrefix(name, tempPrefix)) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove record"), "path", filepath.Join(dir, name)))
		}
	}
	if errs != nil {
		return errors.Join(domain.ErrStoreDeleteFailed, errs)
	}
	return nil
}

func readRecord(path string) (*record, error) {
	//nolint:gosec // Path is constructed from the store directory listing
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(domain.ErrStoreReadFailed, zerr.With(zerr.Wrap(err, "failed to read record"), "path", path))
	}

	var rec record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, errors.Join(domain.ErrStoreUnmarshalFailed, zerr.With(zerr.Wrap(err, "failed to decode record"), "path", path))
	}
	return &rec, nil
}

func recordPath(dir string, id domain.FileID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return filepath.Join(dir, hex.EncodeToString(hash[:])+recordExt)
}
