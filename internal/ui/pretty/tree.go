package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/yaklabco/mdtree/pkg/doctree"
)

const (
	lineColWidth   = 8
	bodyIndent     = "          "
	itemIndent     = "  "
	itemBullet     = "• "
	bodyRule       = "│ "
	cellSeparator  = " │ "
	ellipsis       = "…"
	maxCodePreview = 3
)

// TreeFormatter renders a document as an indented outline of its blocks.
type TreeFormatter struct {
	styles *Styles
	width  int
}

// NewTreeFormatter creates a formatter that truncates lines to width columns.
// A width of zero or less selects DefaultWidth.
func NewTreeFormatter(styles *Styles, width int) *TreeFormatter {
	if width <= 0 {
		width = DefaultWidth
	}
	return &TreeFormatter{styles: styles, width: width}
}

// FormatDocument renders doc under a header naming path. languages maps
// code block indexes to annotated languages and may be nil.
func (t *TreeFormatter) FormatDocument(path string, doc *doctree.Document, languages map[int]string) string {
	var b strings.Builder

	header := t.styles.FilePath.Render(path)
	header += t.styles.Dim.Render(fmt.Sprintf(" (%d %s)", doc.Len(), plural(doc.Len(), "block", "blocks")))
	b.WriteString(header)
	b.WriteByte('\n')

	for i := range doc.Blocks {
		block := &doc.Blocks[i]
		t.line(&b, t.blockHeader(block, languages[i]))
		t.blockBody(&b, block)
	}

	return b.String()
}

func (t *TreeFormatter) line(b *strings.Builder, s string) {
	b.WriteString(ansi.Truncate(s, t.width, ellipsis))
	b.WriteByte('\n')
}

func (t *TreeFormatter) blockHeader(block *doctree.Block, language string) string {
	lines := strconv.Itoa(block.Lines.First)
	if block.Lines.Last != block.Lines.First {
		lines += "-" + strconv.Itoa(block.Lines.Last)
	}

	parts := []string{
		t.styles.Lines.Render(fmt.Sprintf("%-*s", lineColWidth, lines)),
		t.styles.Kind.Render(block.Kind.String()),
	}

	for _, attr := range blockAttrs(block, language) {
		parts = append(parts, t.styles.Attr.Render(attr))
	}

	if len(block.Spans) > 0 && block.Kind != doctree.BlockList && block.Kind != doctree.BlockTable {
		parts = append(parts, t.styles.Guide.Render(bodyRule)+t.FormatSpans(block.Spans))
	}

	return strings.Join(parts, " ")
}

func blockAttrs(block *doctree.Block, language string) []string {
	var attrs []string
	switch block.Kind {
	case doctree.BlockHeading:
		attrs = append(attrs, "level="+strconv.Itoa(block.Level()))
	case doctree.BlockCode:
		if lang := block.Language(); lang != "" {
			attrs = append(attrs, "lang="+lang)
		}
		if language != "" && language != block.Language() {
			attrs = append(attrs, "detected="+language)
		}
	case doctree.BlockList:
		attrs = append(attrs, "items="+strconv.Itoa(doctree.CountItems(block.Items())))
	case doctree.BlockTable:
		attrs = append(attrs,
			"columns="+strconv.Itoa(block.Table.Columns()),
			"rows="+strconv.Itoa(len(block.Table.Rows)))
	case doctree.BlockSpacer:
		attrs = append(attrs, "count="+strconv.Itoa(block.Count()))
	case doctree.BlockImage:
		attrs = append(attrs, "src="+block.Image.Src)
		if block.Image.Title != "" {
			attrs = append(attrs, strconv.Quote(block.Image.Title))
		}
	case doctree.BlockParagraph, doctree.BlockQuote, doctree.BlockDivider:
	}
	return attrs
}

func (t *TreeFormatter) blockBody(b *strings.Builder, block *doctree.Block) {
	rule := bodyIndent + t.styles.Guide.Render(bodyRule)

	switch block.Kind {
	case doctree.BlockCode:
		lines := doctree.SplitLines(block.Text)
		for i, line := range lines {
			if i == maxCodePreview {
				rest := len(lines) - i
				t.line(b, rule+t.styles.Dim.Render(fmt.Sprintf("%s %d more %s", ellipsis, rest, plural(rest, "line", "lines"))))
				break
			}
			t.line(b, rule+t.styles.Text.Render(line))
		}

	case doctree.BlockList:
		_ = doctree.WalkItems(block.Items(), func(item *doctree.ListItem, depth int) error {
			prefix := bodyIndent + strings.Repeat(itemIndent, depth) + t.styles.Guide.Render(itemBullet)
			t.line(b, prefix+t.styles.Dim.Render(item.Marker)+" "+t.FormatSpans(item.Spans))
			return nil
		})

	case doctree.BlockTable:
		t.line(b, rule+t.styles.Bold.Render(t.formatRow(block.Table.Header)))
		for _, row := range block.Table.Rows {
			t.line(b, rule+t.formatRow(row))
		}

	case doctree.BlockParagraph, doctree.BlockHeading, doctree.BlockQuote,
		doctree.BlockDivider, doctree.BlockSpacer, doctree.BlockImage:
	}
}

func (t *TreeFormatter) formatRow(row doctree.TableRow) string {
	cells := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		cells[i] = t.FormatSpans(cell)
	}
	return strings.Join(cells, t.styles.Guide.Render(cellSeparator))
}

// FormatSpans renders spans on one line. With color, each span carries its
// terminal style; without, styled spans are tagged as {style:text} and links
// as {link:label -> url}.
func (t *TreeFormatter) FormatSpans(spans []doctree.Span) string {
	var b strings.Builder
	for _, span := range spans {
		text := strings.ReplaceAll(span.Text, "\n", "⏎")

		if t.styles.ColorEnabled() {
			b.WriteString(t.styles.Span(span.Style).Render(text))
			if span.IsLink() || span.IsImage() {
				b.WriteString(t.styles.Dim.Render(" <" + span.URL() + ">"))
			}
			continue
		}

		switch {
		case span.IsLink(), span.IsImage():
			fmt.Fprintf(&b, "{%s:%s -> %s}", span.Style, text, span.URL())
		case span.Style == doctree.StyleNone:
			b.WriteString(text)
		default:
			fmt.Fprintf(&b, "{%s:%s}", span.Style, text)
		}
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
