// Package inline turns the raw text of a block into an ordered sequence of
// styled spans.
//
// Tokenizing runs in two passes over the bytes of the text. The first pass
// extracts links and images into an arena and marks their start offsets in a
// side table. The second pass walks the text with a running style bitmask,
// toggling bits on emphasis markers and emitting a span at every transition.
// All markers are ASCII, so multi-byte UTF-8 sequences are never split.
package inline

import (
	"strings"

	"github.com/yaklabco/mdtree/pkg/doctree"
)

// noOwner marks offsets that do not start an extracted span.
const noOwner = -1

// extracted is a link or image found by the first pass.
type extracted struct {
	span doctree.Span

	// end is the offset just past the closing ')'.
	end int
}

// tokenizer holds the private state of one Tokenize call.
type tokenizer struct {
	text string

	// arena holds extracted links and images in source order.
	arena []extracted

	// owner maps a start offset to its arena index, or noOwner.
	// It is nil when nothing was extracted.
	owner []int

	style   doctree.Style
	pending strings.Builder
	spans   []doctree.Span
}

// Tokenize splits text into styled spans. An empty text yields no spans.
// Tokenize never fails: unbalanced markers leave a trailing styled span and
// unterminated links are kept as literal text.
func Tokenize(text string) []doctree.Span {
	if text == "" {
		return nil
	}

	tok := &tokenizer{text: text}
	tok.extract()
	tok.segment()

	return tok.spans
}

// PlainText returns the text of Tokenize(text) without any styling.
func PlainText(text string) string {
	return doctree.SpansText(Tokenize(text))
}

// extract performs the first pass: link and image extraction.
// A label without ']' or a destination without ')' ends extraction for the
// rest of the text.
func (t *tokenizer) extract() {
	text := t.text
	escaped := -1

	for pos := 0; pos < len(text); {
		switch text[pos] {
		case '\\':
			escaped = pos + 1
			pos += 2
			continue
		case '[':
		default:
			pos++
			continue
		}

		labelEnd := scanUnescaped(text, pos+1, ']')
		if labelEnd < 0 {
			return
		}
		if labelEnd+1 >= len(text) || text[labelEnd+1] != '(' {
			pos = labelEnd + 1
			continue
		}
		destEnd := scanDestination(text, labelEnd+2)
		if destEnd < 0 {
			return
		}

		raw := text[pos+1 : labelEnd]
		label := Unescape(raw)
		dest := text[labelEnd+2 : destEnd]

		start := pos
		var span doctree.Span
		if pos > 0 && text[pos-1] == '!' && escaped != pos-1 {
			start = pos - 1
			src, title := splitTitle(dest)
			span = doctree.NewImageSpan(label, Unescape(src), Unescape(title))
			if raw != label {
				span.Extra[doctree.ExtraLabel] = raw
			}
		} else {
			span = doctree.NewLinkSpan(label, Unescape(strings.TrimSpace(dest)))
		}

		t.record(start, extracted{span: span, end: destEnd + 1})
		pos = destEnd + 1
	}
}

// record stores an extracted span and marks its start offset.
func (t *tokenizer) record(start int, ext extracted) {
	if t.owner == nil {
		t.owner = make([]int, len(t.text))
		for idx := range t.owner {
			t.owner[idx] = noOwner
		}
	}
	t.owner[start] = len(t.arena)
	t.arena = append(t.arena, ext)
}

// ownerAt returns the arena index of the span starting at pos, or noOwner.
func (t *tokenizer) ownerAt(pos int) int {
	if t.owner == nil {
		return noOwner
	}
	return t.owner[pos]
}

// segment performs the second pass: style segmentation.
func (t *tokenizer) segment() {
	text := t.text

	for pos := 0; pos < len(text); {
		if idx := t.ownerAt(pos); idx != noOwner {
			t.flush()
			t.spans = append(t.spans, t.arena[idx].span)
			pos = t.arena[idx].end
			continue
		}

		char := text[pos]

		if char == '\\' {
			if pos+1 < len(text) && isPunctuation(text[pos+1]) {
				t.pending.WriteByte(text[pos+1])
				pos += 2
				continue
			}
			t.pending.WriteByte(char)
			pos++
			continue
		}

		if isMarker(char) {
			double := pos+1 < len(text) && text[pos+1] == char
			flag, width := markerStyle(char, double)
			if width == 0 {
				// Single ~ = | are literal.
				t.pending.WriteByte(char)
				pos++
				continue
			}
			if flag != doctree.StyleNone {
				t.flush()
				t.style = t.style.Toggle(flag)
			}
			pos += width
			continue
		}

		t.pending.WriteByte(char)
		pos++
	}

	t.flush()
}

// flush emits the pending text with the current style.
// Text adjacent to a plain span of the same style is merged into it.
func (t *tokenizer) flush() {
	if t.pending.Len() == 0 {
		return
	}

	text := t.pending.String()
	t.pending.Reset()

	if last := len(t.spans) - 1; last >= 0 {
		prev := &t.spans[last]
		if prev.Extra == nil && prev.Style == t.style {
			prev.Text += text
			return
		}
	}

	t.spans = append(t.spans, doctree.NewTextSpan(text, t.style))
}

// isMarker returns true for bytes that may toggle a style.
func isMarker(b byte) bool {
	switch b {
	case '*', '_', '`', '~', '=', '|':
		return true
	default:
		return false
	}
}

// markerStyle returns the style toggled by a marker and the number of bytes
// it consumes. A width of 0 means the byte is literal text; StyleNone with a
// non-zero width means the marker is dropped without toggling.
func markerStyle(marker byte, double bool) (doctree.Style, int) {
	switch marker {
	case '*':
		if double {
			return doctree.StyleBold, 2
		}
		return doctree.StyleItalic, 1
	case '_':
		if double {
			return doctree.StyleUnderline, 2
		}
		return doctree.StyleItalic, 1
	case '`':
		if double {
			return doctree.StyleNone, 2
		}
		return doctree.StyleMonospace, 1
	case '~':
		if double {
			return doctree.StyleStrikethrough, 2
		}
	case '=':
		if double {
			return doctree.StyleHighlight, 2
		}
	case '|':
		if double {
			return doctree.StyleSpoiler, 2
		}
	}
	return doctree.StyleNone, 0
}
