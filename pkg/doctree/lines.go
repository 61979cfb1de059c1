package doctree

import "strings"

// LineRange is an inclusive range of 1-based source lines.
// The zero value means the range is unknown.
type LineRange struct {
	First int
	Last  int
}

// IsValid returns true if the range has positive bounds in order.
func (r LineRange) IsValid() bool {
	return r.First > 0 && r.Last >= r.First
}

// Len returns the number of lines covered.
func (r LineRange) Len() int {
	if !r.IsValid() {
		return 0
	}
	return r.Last - r.First + 1
}

// Contains returns true if line is within the range.
func (r LineRange) Contains(line int) bool {
	return r.IsValid() && line >= r.First && line <= r.Last
}

// SplitLines splits text on universal newlines ("\n", "\r\n", "\r").
// A terminator at the very end does not start another line, so
// "a\n" yields ["a"] and "\n\n\n" yields three empty lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0

	for idx := 0; idx < len(text); idx++ {
		switch text[idx] {
		case '\n':
			lines = append(lines, text[start:idx])
			start = idx + 1
		case '\r':
			lines = append(lines, text[start:idx])
			if idx+1 < len(text) && text[idx+1] == '\n' {
				idx++
			}
			start = idx + 1
		}
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}
