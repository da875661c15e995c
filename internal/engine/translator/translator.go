// Package translator maps positions in instrumented code back to the original source.
package translator

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PositionTranslator = (*Translator)(nil)

// Translator holds one parsed position table per file.
//
// Registrations are ordered by issue, not by completion: every RegisterMap call takes a
// sequence number before parsing, and a parsed table is installed only when no newer
// registration, unregistration or clear has been applied for the same file. A table
// that loses that race is closed instead of installed.
type Translator struct {
	parser ports.MapParser

	mu      sync.RWMutex
	tables  map[domain.FileID]ports.PositionTable
	floors  map[domain.FileID]uint64
	clearAt uint64
	seq     uint64
}

// New creates a Translator that builds tables with parser.
func New(parser ports.MapParser) *Translator {
	return &Translator{
		parser: parser,
		tables: make(map[domain.FileID]ports.PositionTable),
		floors: make(map[domain.FileID]uint64),
	}
}

// RegisterMap parses raw and makes it the active table for id, closing the table it
// replaces. Parsing happens outside the lock and may take a while for large documents.
// On a parse error the previous registration for id stays in place.
func (t *Translator) RegisterMap(ctx context.Context, id domain.FileID, raw []byte) error {
	t.mu.Lock()
	t.seq++
	seq := t.seq
	t.mu.Unlock()

	table, err := t.parser.Parse(ctx, raw)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to register source map"), "file", id.String())
	}

	t.mu.Lock()
	if seq <= t.floorLocked(id) {
		t.mu.Unlock()
		// A newer registration or an unregistration won; drop ours.
		return closeTable(id, table)
	}
	prev := t.tables[id]
	t.tables[id] = table
	t.floors[id] = seq
	t.mu.Unlock()

	if prev != nil {
		return closeTable(id, prev)
	}
	return nil
}

// OriginalPosition resolves a generated line (1-based) and column (0-based) of id.
// It reports false when no table is registered or the table maps no original source
// for the position. Coordinates the table leaves unresolved fall back to the queried
// ones; the source always comes from the table.
func (t *Translator) OriginalPosition(id domain.FileID, line, column int) (domain.OriginalPosition, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	table, ok := t.tables[id]
	if !ok {
		return domain.OriginalPosition{}, false
	}

	mapped, ok := table.Lookup(line, column)
	if !ok || mapped.Source == "" {
		return domain.OriginalPosition{}, false
	}

	pos := domain.OriginalPosition{
		Source: mapped.Source,
		Line:   line,
		Column: column,
		Name:   mapped.Name,
	}
	if mapped.HasLine {
		pos.Line = mapped.Line
	}
	if mapped.HasColumn {
		pos.Column = mapped.Column
	}
	return pos, true
}

// UnregisterMap closes and forgets the table for id. Registrations for id that are
// still parsing are discarded when they finish. Calling it for an unknown id is a no-op.
func (t *Translator) UnregisterMap(id domain.FileID) error {
	t.mu.Lock()
	table, ok := t.tables[id]
	delete(t.tables, id)
	t.floors[id] = t.seq
	t.mu.Unlock()

	if !ok {
		return nil
	}
	return closeTable(id, table)
}

// Clear closes every registered table, one by one, and forgets all of them.
// Registrations still parsing are discarded when they finish.
func (t *Translator) Clear() error {
	t.mu.Lock()
	tables := t.tables
	t.tables = make(map[domain.FileID]ports.PositionTable)
	t.floors = make(map[domain.FileID]uint64)
	t.clearAt = t.seq
	t.mu.Unlock()

	var errs error
	for id, table := range tables {
		errs = errors.Join(errs, closeTable(id, table))
	}
	return errs
}

// Registered reports whether a table is registered for id.
func (t *Translator) Registered(id domain.FileID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.tables[id]
	return ok
}

// Len returns the number of registered tables.
func (t *Translator) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.tables)
}

func (t *Translator) floorLocked(id domain.FileID) uint64 {
	return max(t.floors[id], t.clearAt)
}

func closeTable(id domain.FileID, table ports.PositionTable) error {
	if err := table.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to release position table"), "file", id.String())
	}
	return nil
}
