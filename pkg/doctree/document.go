// Package doctree defines the structured document tree produced by the
// Markdown parser: an ordered sequence of blocks, each optionally carrying
// styled inline spans. Trees are immutable once built.
package doctree

import (
	"strings"
	"sync"
)

// Document is the parse result.
type Document struct {
	// Original is the untouched input text.
	Original string

	// Blocks holds the blocks in source order.
	Blocks []Block

	plainOnce sync.Once
	plain     string
}

// NewDocument creates a document from its source and blocks.
// The caller must not modify blocks afterwards.
func NewDocument(original string, blocks []Block) *Document {
	return &Document{Original: original, Blocks: blocks}
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.Blocks)
}

// PlainText returns the text content of the document without markup.
// Blocks are separated by a single newline. The value is computed on first
// use and cached; it is safe for concurrent use.
func (d *Document) PlainText() string {
	d.plainOnce.Do(func() {
		d.plain = PlainText(d.Blocks)
	})
	return d.plain
}

// PlainText renders blocks as plain text.
func PlainText(blocks []Block) string {
	var builder strings.Builder
	for idx := range blocks {
		if idx > 0 {
			builder.WriteByte('\n')
		}
		writeBlockText(&builder, &blocks[idx])
	}
	return builder.String()
}

// BlockPlainText renders a single block as plain text.
func BlockPlainText(block *Block) string {
	var builder strings.Builder
	writeBlockText(&builder, block)
	return builder.String()
}

func writeBlockText(builder *strings.Builder, block *Block) {
	switch block.Kind {
	case BlockParagraph, BlockHeading, BlockQuote, BlockImage:
		for _, span := range block.Spans {
			builder.WriteString(span.Text)
		}
	case BlockCode:
		builder.WriteString(block.Text)
	case BlockList:
		if block.List != nil {
			first := true
			writeItemsText(builder, block.List.Items, &first)
		}
	case BlockTable:
		if block.Table != nil {
			writeRowText(builder, block.Table.Header)
			for _, row := range block.Table.Rows {
				builder.WriteByte('\n')
				writeRowText(builder, row)
			}
		}
	case BlockSpacer:
		if count := block.Count(); count > 1 {
			builder.WriteString(strings.Repeat("\n", count-1))
		}
	case BlockDivider:
	}
}

func writeItemsText(builder *strings.Builder, items []ListItem, first *bool) {
	for _, item := range items {
		if !*first {
			builder.WriteByte('\n')
		}
		*first = false
		for _, span := range item.Spans {
			builder.WriteString(span.Text)
		}
		writeItemsText(builder, item.Children, first)
	}
}

func writeRowText(builder *strings.Builder, row TableRow) {
	for idx, cell := range row.Cells {
		if idx > 0 {
			builder.WriteByte('\t')
		}
		for _, span := range cell {
			builder.WriteString(span.Text)
		}
	}
}
