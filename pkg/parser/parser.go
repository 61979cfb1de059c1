// Package parser implements the block scanner: it classifies the lines of a
// Markdown text into blocks and hands text-bearing blocks to the inline
// tokenizer.
//
// Parse never fails. Anything the scanner does not recognize becomes
// paragraph text, and unterminated constructs run to the end of input.
package parser

import (
	"strings"
	"unicode"

	"github.com/yaklabco/mdtree/pkg/doctree"
	"github.com/yaklabco/mdtree/pkg/inline"
)

const (
	fence          = "```"
	dividerMarker  = "---"
	maxHeadingRun  = 6
	maxListIndent  = 6
	maxOrdinalRun  = 9
	lineSep        = "\n"
	tableCellDelim = '|'
)

// scanner holds the private state of one Parse call.
type scanner struct {
	// raw holds the input lines as split; lines holds them right-trimmed.
	raw   []string
	lines []string
	pos   int

	blocks []doctree.Block

	// para buffers paragraph lines; paraFirst is the index of the first one.
	para      []string
	paraFirst int
}

// Parse builds a document from Markdown text.
// An empty input yields a document without blocks.
func Parse(input string) *doctree.Document {
	raw := doctree.SplitLines(input)

	scan := &scanner{
		raw:   raw,
		lines: make([]string, len(raw)),
	}
	for idx, line := range raw {
		scan.lines[idx] = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	scan.scan()

	return doctree.NewDocument(input, scan.blocks)
}

// PromoteImages turns every paragraph holding a single image into an Image
// block whose spans are the tokenized label.
func PromoteImages(doc *doctree.Document) *doctree.Document {
	return doctree.PromoteImages(doc, inline.Tokenize)
}

// scan runs the main classification loop.
func (s *scanner) scan() {
	for s.pos < len(s.lines) {
		s.scanLine()
	}
	s.flushParagraph()
}

// scanLine classifies the current line and consumes one or more lines.
// Rules are tried in a fixed order; the first match wins.
func (s *scanner) scanLine() {
	line := s.lines[s.pos]
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)

	switch {
	case trimmed == "":
		s.consumeSpacer()
	case strings.HasPrefix(trimmed, dividerMarker):
		s.consumeDivider(trimmed)
	case headingLevel(trimmed) > 0:
		s.consumeHeading(trimmed)
	case strings.HasPrefix(trimmed, ">"):
		s.consumeQuote()
	case strings.HasPrefix(trimmed, fence):
		s.consumeCode(trimmed)
	case startsList(line):
		s.consumeList()
	case trimmed[0] == tableCellDelim:
		s.consumeTable()
	default:
		s.bufferParagraph(trimmed)
	}
}

// push flushes any pending paragraph and appends block, recording the lines
// [first, last] (0-based, inclusive) it was built from.
func (s *scanner) push(block doctree.Block, first, last int) {
	s.flushParagraph()
	s.blocks = append(s.blocks, block.WithLines(first+1, last+1))
}

func (s *scanner) bufferParagraph(line string) {
	if len(s.para) == 0 {
		s.paraFirst = s.pos
	}
	s.para = append(s.para, line)
	s.pos++
}

func (s *scanner) flushParagraph() {
	if len(s.para) == 0 {
		return
	}

	text := strings.Join(s.para, lineSep)
	first, last := s.paraFirst, s.paraFirst+len(s.para)-1
	s.para = nil

	block := doctree.NewParagraph(text, inline.Tokenize(text))
	s.blocks = append(s.blocks, block.WithLines(first+1, last+1))
}

// consumeSpacer consumes a run of blank lines. Lines are right-trimmed, so
// whitespace-only lines are empty here.
func (s *scanner) consumeSpacer() {
	first := s.pos
	for s.pos < len(s.lines) && s.lines[s.pos] == "" {
		s.pos++
	}

	count := s.pos - first
	text := strings.Join(s.raw[first:s.pos], lineSep)
	s.push(doctree.NewSpacer(text, count), first, s.pos-1)
}

func (s *scanner) consumeDivider(trimmed string) {
	s.push(doctree.NewDivider(trimmed), s.pos, s.pos)
	s.pos++
}

func (s *scanner) consumeHeading(trimmed string) {
	level := headingLevel(trimmed)
	text := strings.TrimSpace(trimmed[level:])

	s.push(doctree.NewHeading(level, text, inline.Tokenize(text)), s.pos, s.pos)
	s.pos++
}

// consumeQuote consumes consecutive lines starting with '>'.
// A blank line ends the quote.
func (s *scanner) consumeQuote() {
	first := s.pos

	var parts []string
	for s.pos < len(s.lines) {
		trimmed := strings.TrimLeftFunc(s.lines[s.pos], unicode.IsSpace)
		if !strings.HasPrefix(trimmed, ">") {
			break
		}
		parts = append(parts, strings.TrimSpace(trimmed[1:]))
		s.pos++
	}

	text := strings.Join(parts, lineSep)
	s.push(doctree.NewQuote(text, inline.Tokenize(text)), first, s.pos-1)
}

// consumeCode consumes a fenced code block. Body lines are kept verbatim.
// Without a closing fence the block runs to the end of input.
func (s *scanner) consumeCode(trimmed string) {
	first := s.pos
	language := strings.TrimSpace(trimmed[len(fence):])
	s.pos++

	var body []string
	last := len(s.lines) - 1
	for s.pos < len(s.lines) {
		if strings.TrimSpace(s.lines[s.pos]) == fence {
			last = s.pos
			s.pos++
			break
		}
		body = append(body, s.raw[s.pos])
		s.pos++
	}

	s.push(doctree.NewCode(language, strings.Join(body, lineSep)), first, last)
}

// headingLevel returns the level of an ATX heading line, or 0.
// The '#' run must be 1 to 6 long; a longer run is paragraph text.
func headingLevel(trimmed string) int {
	run := 0
	for run < len(trimmed) && trimmed[run] == '#' {
		run++
	}
	if run > maxHeadingRun {
		return 0
	}
	return run
}
