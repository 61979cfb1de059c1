package parser

import (
	"strings"
	"unicode"

	"github.com/yaklabco/mdtree/pkg/doctree"
	"github.com/yaklabco/mdtree/pkg/inline"
)

// consumeTable consumes a header row, the line after it (the alignment row,
// not validated) and all following rows that start with '|'.
//
// Data rows are padded with empty cells or truncated to the header's
// column count.
func (s *scanner) consumeTable() {
	first := s.pos
	header := parseRow(s.lines[s.pos])
	columns := len(header.Cells)
	s.pos++

	if s.pos < len(s.lines) {
		s.pos++
	}

	var rows []doctree.TableRow
	for s.pos < len(s.lines) {
		trimmed := strings.TrimLeftFunc(s.lines[s.pos], unicode.IsSpace)
		if trimmed == "" || trimmed[0] != tableCellDelim {
			break
		}
		rows = append(rows, fitRow(parseRow(s.lines[s.pos]), columns))
		s.pos++
	}

	text := strings.Join(s.lines[first:s.pos], lineSep)
	s.push(doctree.NewTable(text, header, rows), first, s.pos-1)
}

// parseRow splits a row on unescaped '|' and tokenizes each trimmed cell.
func parseRow(line string) doctree.TableRow {
	cells := splitCells(strings.TrimSpace(line))

	row := doctree.TableRow{
		Text:  line,
		Cells: make([][]doctree.Span, len(cells)),
	}
	for idx, cell := range cells {
		row.Cells[idx] = inline.Tokenize(cell)
	}
	return row
}

// splitCells splits a trimmed row. The text before the leading '|' is always
// dropped; the text after the trailing '|' is dropped when empty.
func splitCells(row string) []string {
	var parts []string

	start := 0
	for pos := 0; pos < len(row); pos++ {
		switch row[pos] {
		case '\\':
			pos++
		case tableCellDelim:
			parts = append(parts, row[start:pos])
			start = pos + 1
		}
	}
	parts = append(parts, row[start:])

	parts = parts[1:]
	if last := len(parts) - 1; last >= 0 && strings.TrimSpace(parts[last]) == "" {
		parts = parts[:last]
	}

	cells := make([]string, len(parts))
	for idx, part := range parts {
		cells[idx] = strings.TrimSpace(part)
	}
	return cells
}

// fitRow pads or truncates row to columns cells.
func fitRow(row doctree.TableRow, columns int) doctree.TableRow {
	switch {
	case len(row.Cells) > columns:
		row.Cells = row.Cells[:columns]
	case len(row.Cells) < columns:
		padded := make([][]doctree.Span, columns)
		copy(padded, row.Cells)
		row.Cells = padded
	}
	return row
}
