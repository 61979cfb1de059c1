package doctree

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Dump renders doc as an indented outline, one node per line. The format is
// stable and meant for golden tests and debugging:
//
//	heading 1 level=1
//	  span none "Title"
//	list 3-4
//	  item "-" indent=0
//	    span bold "a"
func Dump(doc *Document) string {
	var buf bytes.Buffer
	if doc == nil {
		return ""
	}
	for idx := range doc.Blocks {
		dumpBlock(&buf, &doc.Blocks[idx])
	}
	return buf.String()
}

func dumpBlock(buf *bytes.Buffer, block *Block) {
	buf.WriteString(block.Kind.String())
	if block.Lines.IsValid() {
		if block.Lines.First == block.Lines.Last {
			fmt.Fprintf(buf, " %d", block.Lines.First)
		} else {
			fmt.Fprintf(buf, " %d-%d", block.Lines.First, block.Lines.Last)
		}
	}

	switch block.Kind {
	case BlockHeading:
		fmt.Fprintf(buf, " level=%d", block.Level())
	case BlockCode:
		fmt.Fprintf(buf, " lang=%q", block.Language())
	case BlockSpacer:
		fmt.Fprintf(buf, " count=%d", block.Count())
	case BlockTable:
		if block.Table != nil {
			fmt.Fprintf(buf, " columns=%d", block.Table.Columns())
		}
	case BlockImage:
		if block.Image != nil {
			fmt.Fprintf(buf, " src=%q", block.Image.Src)
			if block.Image.Title != "" {
				fmt.Fprintf(buf, " title=%q", block.Image.Title)
			}
		}
	case BlockParagraph, BlockQuote, BlockList, BlockDivider:
	}
	buf.WriteByte('\n')

	const indent = "  "

	switch {
	case block.Kind == BlockCode:
		fmt.Fprintf(buf, "%stext %s\n", indent, strconv.Quote(block.Text))
	case block.List != nil:
		dumpItems(buf, block.List.Items, indent)
	case block.Table != nil:
		dumpRow(buf, "header", block.Table.Header, indent)
		for _, row := range block.Table.Rows {
			dumpRow(buf, "row", row, indent)
		}
	default:
		dumpSpans(buf, block.Spans, indent)
	}
}

func dumpItems(buf *bytes.Buffer, items []ListItem, prefix string) {
	for _, item := range items {
		fmt.Fprintf(buf, "%sitem %q indent=%d\n", prefix, item.Marker, item.Indent)
		dumpSpans(buf, item.Spans, prefix+"  ")
		dumpItems(buf, item.Children, prefix+"  ")
	}
}

func dumpRow(buf *bytes.Buffer, name string, row TableRow, prefix string) {
	fmt.Fprintf(buf, "%s%s\n", prefix, name)
	for _, cell := range row.Cells {
		fmt.Fprintf(buf, "%s  cell\n", prefix)
		dumpSpans(buf, cell, prefix+"    ")
	}
}

func dumpSpans(buf *bytes.Buffer, spans []Span, prefix string) {
	for _, span := range spans {
		fmt.Fprintf(buf, "%sspan %s %s", prefix, span.Style, strconv.Quote(span.Text))
		for _, key := range slices.Sorted(maps.Keys(span.Extra)) {
			fmt.Fprintf(buf, " %s=%q", key, span.Extra[key])
		}
		buf.WriteByte('\n')
	}
}
