// Package goldmark builds a reference outline of a Markdown document with the
// goldmark CommonMark parser, used to cross-check the block scanner.
package goldmark

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdtree/pkg/doctree"
)

// Flavor identifies the Markdown flavor of the reference parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// OutlineBlock is one top-level block as seen by the reference parser.
type OutlineBlock struct {
	// Kind is the closest doctree kind.
	Kind doctree.BlockKind

	// Level is the heading level; zero for other kinds.
	Level int

	// Line is the 1-based first source line; zero when it could not be located.
	Line int
}

// Outline is the reference block structure of a document.
type Outline struct {
	Flavor string
	Blocks []OutlineBlock
}

// Parser produces reference outlines.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a reference parser for the given flavor.
// Invalid flavors default to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Outline parses content and returns its top-level blocks.
//
// Line endings are normalized the way doctree.SplitLines counts them, so
// outline lines and document lines refer to the same source lines.
func (p *Parser) Outline(ctx context.Context, content []byte) (*Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("outline cancelled: %w", err)
	}

	src := normalizeNewlines(content)
	root := p.md.Parser().Parse(text.NewReader(src))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("outline cancelled: %w", err)
	}

	loc := newLocator(src)
	outline := &Outline{Flavor: p.flavor}

	prevEnd := 0
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		block := OutlineBlock{Kind: mapKind(node)}
		if heading, ok := node.(*ast.Heading); ok {
			block.Level = heading.Level
		}
		block.Line = loc.start(node, prevEnd)
		if end := loc.end(node, block.Line); end > 0 {
			prevEnd = end
		}
		outline.Blocks = append(outline.Blocks, block)
	}

	return outline, nil
}

// Check outlines the original text of doc and compares it against doc.
func (p *Parser) Check(ctx context.Context, doc *doctree.Document) ([]Divergence, error) {
	outline, err := p.Outline(ctx, []byte(doc.Original))
	if err != nil {
		return nil, err
	}
	return Compare(doc, outline), nil
}

func mapKind(node ast.Node) doctree.BlockKind {
	switch node.Kind() {
	case ast.KindHeading:
		return doctree.BlockHeading
	case ast.KindBlockquote:
		return doctree.BlockQuote
	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		return doctree.BlockCode
	case ast.KindList:
		return doctree.BlockList
	case ast.KindThematicBreak:
		return doctree.BlockDivider
	case east.KindTable:
		return doctree.BlockTable
	default:
		// Paragraphs, raw HTML and link reference definitions.
		return doctree.BlockParagraph
	}
}

// locator maps byte offsets of the parsed source to line numbers.
type locator struct {
	src    []byte
	starts []int
}

func newLocator(src []byte) *locator {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' && i+1 < len(src) {
			starts = append(starts, i+1)
		}
	}
	return &locator{src: src, starts: starts}
}

// line returns the 1-based line holding offset.
func (l *locator) line(offset int) int {
	return sort.Search(len(l.starts), func(i int) bool { return l.starts[i] > offset })
}

// text returns the content of 1-based line n without its newline.
func (l *locator) text(n int) string {
	if n < 1 || n > len(l.starts) {
		return ""
	}
	start := l.starts[n-1]
	end := len(l.src)
	if n < len(l.starts) {
		end = l.starts[n] - 1
	}
	return string(l.src[start:end])
}

// find returns the first line after from whose text satisfies match, or 0.
func (l *locator) find(from int, match func(string) bool) int {
	for n := from + 1; n <= len(l.starts); n++ {
		if match(strings.TrimSpace(l.text(n))) {
			return n
		}
	}
	return 0
}

// start locates the first line of a top-level node. prevEnd is the last
// line of the preceding block.
func (l *locator) start(node ast.Node, prevEnd int) int {
	switch n := node.(type) {
	case *ast.FencedCodeBlock:
		if n.Info != nil {
			return l.line(n.Info.Segment.Start)
		}
		return l.find(prevEnd, isFence)
	case *ast.ThematicBreak:
		return l.find(prevEnd, isThematicBreak)
	}

	if seg, ok := firstSegment(node); ok {
		return l.line(seg.Start)
	}
	return l.find(prevEnd, func(s string) bool { return s != "" })
}

// end locates the last line of a top-level node starting at line start.
func (l *locator) end(node ast.Node, start int) int {
	last := start
	if seg, ok := lastSegment(node); ok {
		last = max(last, l.line(max(seg.Stop-1, seg.Start)))
	}

	switch node.(type) {
	case *ast.FencedCodeBlock:
		if closing := l.find(last, isFence); closing > 0 {
			last = closing
		}
	case *ast.Heading:
		atx := strings.HasPrefix(strings.TrimSpace(l.text(start)), "#")
		if !atx && isSetextUnderline(strings.TrimSpace(l.text(last+1))) {
			last++
		}
	}
	return last
}

func firstSegment(node ast.Node) (text.Segment, bool) {
	if node.Type() != ast.TypeBlock {
		return text.Segment{}, false
	}
	if lines := node.Lines(); lines != nil && lines.Len() > 0 {
		return lines.At(0), true
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if seg, ok := firstSegment(child); ok {
			return seg, true
		}
	}
	return text.Segment{}, false
}

func lastSegment(node ast.Node) (text.Segment, bool) {
	if node.Type() != ast.TypeBlock {
		return text.Segment{}, false
	}
	for child := node.LastChild(); child != nil; child = child.PreviousSibling() {
		if seg, ok := lastSegment(child); ok {
			return seg, true
		}
	}
	if lines := node.Lines(); lines != nil && lines.Len() > 0 {
		return lines.At(lines.Len() - 1), true
	}
	return text.Segment{}, false
}

func isFence(s string) bool {
	return strings.HasPrefix(s, "```") || strings.HasPrefix(s, "~~~")
}

func isThematicBreak(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if len(s) < 3 {
		return false
	}
	return strings.Count(s, s[:1]) == len(s) && strings.ContainsAny(s[:1], "-*_")
}

func isSetextUnderline(s string) bool {
	return s != "" && (strings.Trim(s, "=") == "" || strings.Trim(s, "-") == "")
}

func normalizeNewlines(content []byte) []byte {
	out := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(out, []byte("\r"), []byte("\n"))
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
