package sourcemap

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders every decoded segment of table, one per line.
func Dump(table *Table) string {
	table.mu.RLock()
	defer table.mu.RUnlock()

	var b strings.Builder
	quoted := make([]string, len(table.sources))
	for i, src := range table.sources {
		quoted[i] = strconv.Quote(src)
	}
	fmt.Fprintf(&b, "file: %s\n", table.file)
	fmt.Fprintf(&b, "sources: %s\n", strings.Join(quoted, ", "))

	for i, segs := range table.lines {
		for _, seg := range segs {
			fmt.Fprintf(&b, "%d:%d -> ", i+1, seg.genColumn)
			if seg.source == noIndex {
				b.WriteString("unmapped\n")
				continue
			}
			fmt.Fprintf(&b, "%q:%d:%d", table.sources[seg.source], seg.line+1, seg.column)
			if seg.name != noIndex {
				fmt.Fprintf(&b, " (%s)", table.names[seg.name])
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// DecodeVLQ exposes decodeVLQ for tests.
var DecodeVLQ = decodeVLQ
