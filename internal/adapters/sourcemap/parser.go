// Package sourcemap decodes Source Map revision 3 documents into lookup tables.
package sourcemap

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/zerr"
)

// supportedVersion is the only source map revision the parser accepts.
const supportedVersion = 3

var _ ports.MapParser = (*Parser)(nil)

// document is the JSON shape of a source map. Only the fields needed for lookups are
// decoded; sourcesContent is ignored.
type document struct {
	Version    int             `json:"version"`
	File       string          `json:"file"`
	SourceRoot string          `json:"sourceRoot"`
	Sources    []*string       `json:"sources"`
	Names      []string        `json:"names"`
	Mappings   string          `json:"mappings"`
	Sections   json.RawMessage `json:"sections"`
}

// Parser decodes source maps into Tables.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes raw into a Table.
//
// Malformed documents yield an error wrapping domain.ErrInvalidSourceMap. Documents
// with another version or with index sections yield domain.ErrUnsupportedSourceMap.
func (p *Parser) Parse(ctx context.Context, raw []byte) (ports.PositionTable, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(domain.ErrInvalidSourceMap, zerr.Wrap(err, "failed to decode source map json"))
	}

	if len(doc.Sections) > 0 && string(doc.Sections) != "null" {
		return nil, errors.Join(domain.ErrUnsupportedSourceMap, zerr.New("indexed source maps are not supported"))
	}
	if doc.Version != supportedVersion {
		return nil, errors.Join(
			domain.ErrUnsupportedSourceMap,
			zerr.With(zerr.New("unsupported source map version"), "version", doc.Version),
		)
	}

	sources := resolveSources(doc.SourceRoot, doc.Sources)
	lines, err := decodeMappings(ctx, doc.Mappings, len(sources), len(doc.Names))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, zerr.Wrap(ctxErr, "source map decoding cancelled")
		}
		return nil, errors.Join(domain.ErrInvalidSourceMap, err)
	}

	return &Table{
		file:    doc.File,
		sources: sources,
		names:   doc.Names,
		lines:   lines,
	}, nil
}

// resolveSources prefixes every source with root. Null sources become empty strings.
func resolveSources(root string, sources []*string) []string {
	if root != "" && !strings.HasSuffix(root, "/") {
		root += "/"
	}

	resolved := make([]string, len(sources))
	for i, src := range sources {
		if src == nil {
			continue
		}
		resolved[i] = root + *src
	}
	return resolved
}

// decodeMappings decodes the mappings string into segments grouped by generated line.
// Source, original line, original column and name are relative to the previous
// segment across line boundaries; the generated column restarts on every line.
func decodeMappings(ctx context.Context, mappings string, numSources, numNames int) ([][]segment, error) {
	var (
		lines   [][]segment
		current []segment
		prev    segment
		fields  [5]int
	)

	for pos := 0; pos <= len(mappings); {
		if pos == len(mappings) || mappings[pos] == ';' {
			slices.SortStableFunc(current, func(a, b segment) int {
				return a.genColumn - b.genColumn
			})
			lines = append(lines, current)
			current = nil
			prev.genColumn = 0
			pos++

			if err := ctx.Err(); err != nil {
				return nil, err
			}
			continue
		}
		if mappings[pos] == ',' {
			pos++
			continue
		}

		n := 0
		for pos < len(mappings) && mappings[pos] != ',' && mappings[pos] != ';' {
			if n == len(fields) {
				return nil, zerr.With(zerr.New("segment has too many fields"), "line", len(lines)+1)
			}
			value, next, err := decodeVLQ(mappings, pos)
			if err != nil {
				return nil, zerr.With(err, "line", len(lines)+1)
			}
			fields[n] = value
			n++
			pos = next
		}

		seg, err := applySegment(&prev, fields[:n], numSources, numNames)
		if err != nil {
			return nil, zerr.With(err, "line", len(lines)+1)
		}
		current = append(current, seg)
	}

	// A trailing ';' produces an empty final line that carries no segments.
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines, nil
}

// applySegment adds the relative fields to prev and returns the absolute segment.
func applySegment(prev *segment, fields []int, numSources, numNames int) (segment, error) {
	switch len(fields) {
	case 1, 4, 5:
	default:
		return segment{}, zerr.With(zerr.New("segment must have 1, 4 or 5 fields"), "fields", len(fields))
	}

	prev.genColumn += fields[0]
	if prev.genColumn < 0 {
		return segment{}, zerr.With(zerr.New("negative generated column"), "column", prev.genColumn)
	}

	seg := segment{genColumn: prev.genColumn, source: noIndex, name: noIndex}
	if len(fields) == 1 {
		return seg, nil
	}

	prev.source += fields[1]
	prev.line += fields[2]
	prev.column += fields[3]
	if prev.source < 0 || prev.source >= numSources {
		return segment{}, zerr.With(zerr.New("source index out of range"), "source", prev.source)
	}
	if prev.line < 0 {
		return segment{}, zerr.With(zerr.New("negative original line"), "original_line", prev.line)
	}
	if prev.column < 0 {
		return segment{}, zerr.With(zerr.New("negative original column"), "original_column", prev.column)
	}
	seg.source, seg.line, seg.column = prev.source, prev.line, prev.column

	if len(fields) == 5 {
		prev.name += fields[4]
		if prev.name < 0 || prev.name >= numNames {
			return segment{}, zerr.With(zerr.New("name index out of range"), "name", prev.name)
		}
		seg.name = prev.name
	}
	return seg, nil
}
