package sourcemap

import (
	"sort"
	"sync"

	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
)

var _ ports.PositionTable = (*Table)(nil)

// noIndex marks a segment without an original source or name.
const noIndex = -1

// segment is one decoded mapping entry. Original lines and columns are 0-based.
type segment struct {
	genColumn int
	source    int
	line      int
	column    int
	name      int
}

// Table is a decoded source map ready for lookups.
// Segments are grouped by generated line and sorted by generated column.
type Table struct {
	file    string
	sources []string
	names   []string

	mu     sync.RWMutex
	lines  [][]segment
	closed bool
}

// File returns the generated file name recorded in the map, if any.
func (t *Table) File() string {
	return t.file
}

// Sources returns the resolved source paths referenced by the map.
func (t *Table) Sources() []string {
	return t.sources
}

// Lookup finds the segment covering a generated line (1-based) and column (0-based).
//
// The covering segment is the one with the greatest generated column not after column
// on the same line. Segments without an original source never match.
func (t *Table) Lookup(line, column int) (domain.MappedPosition, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed || line < 1 || column < 0 || line > len(t.lines) {
		return domain.MappedPosition{}, false
	}

	segs := t.lines[line-1]
	i := sort.Search(len(segs), func(i int) bool {
		return segs[i].genColumn > column
	})
	if i == 0 {
		return domain.MappedPosition{}, false
	}

	// Among segments sharing a generated column the first one wins.
	i--
	for i > 0 && segs[i-1].genColumn == segs[i].genColumn {
		i--
	}

	seg := segs[i]
	if seg.source == noIndex {
		return domain.MappedPosition{}, false
	}

	pos := domain.MappedPosition{
		Source:    t.sources[seg.source],
		Line:      seg.line + 1,
		Column:    seg.column,
		HasLine:   true,
		HasColumn: true,
	}
	if seg.name != noIndex {
		pos.Name = t.names[seg.name]
	}
	return pos, true
}

// Close drops the decoded segments. Lookups after Close miss. Closing twice is harmless.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lines = nil
	t.closed = true
	return nil
}

// Len returns the number of decoded segments.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, segs := range t.lines {
		n += len(segs)
	}
	return n
}
