package doctree

// BlockKind classifies a block.
type BlockKind uint8

// Block kinds.
const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockQuote
	BlockCode
	BlockList
	BlockDivider
	BlockTable
	BlockSpacer
	BlockImage
)

// String returns the lowercase kind name.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockQuote:
		return "quote"
	case BlockCode:
		return "code"
	case BlockList:
		return "list"
	case BlockDivider:
		return "divider"
	case BlockTable:
		return "table"
	case BlockSpacer:
		return "spacer"
	case BlockImage:
		return "image"
	default:
		return "unknown"
	}
}

// AllBlockKinds returns every block kind in declaration order.
func AllBlockKinds() []BlockKind {
	return []BlockKind{
		BlockParagraph, BlockHeading, BlockQuote, BlockCode, BlockList,
		BlockDivider, BlockTable, BlockSpacer, BlockImage,
	}
}

// IsTextBearing reports whether blocks of this kind carry inline spans.
func (k BlockKind) IsTextBearing() bool {
	switch k {
	case BlockParagraph, BlockHeading, BlockQuote, BlockImage:
		return true
	default:
		return false
	}
}

// Block is a top-level structural unit of a document.
//
// Block is a tagged union: Kind selects the variant and exactly the attribute
// pointer belonging to that variant is non-nil. Paragraph, Quote and Divider
// need no attributes beyond Text and Spans.
type Block struct {
	// Kind identifies the variant.
	Kind BlockKind

	// Text is the reconstructed source text of the block.
	Text string

	// Lines is the range of source lines the block was built from.
	Lines LineRange

	// Spans holds the inline content of paragraphs, headings, quotes and image alt text.
	Spans []Span

	Heading *HeadingAttrs
	Code    *CodeAttrs
	List    *ListAttrs
	Table   *TableAttrs
	Spacer  *SpacerAttrs
	Image   *ImageAttrs
}

// HeadingAttrs holds attributes for BlockHeading.
type HeadingAttrs struct {
	// Level is the heading level (1-6).
	Level int
}

// CodeAttrs holds attributes for BlockCode.
type CodeAttrs struct {
	// Language is the fence info string; may be empty.
	Language string
}

// ListAttrs holds attributes for BlockList.
type ListAttrs struct {
	// Items is the forest of root items.
	Items []ListItem

	// Indent is the base indentation in columns.
	Indent int
}

// TableAttrs holds attributes for BlockTable.
type TableAttrs struct {
	Header TableRow
	Rows   []TableRow
}

// Columns returns the nominal column count, defined by the header.
func (t *TableAttrs) Columns() int {
	return len(t.Header.Cells)
}

// SpacerAttrs holds attributes for BlockSpacer.
type SpacerAttrs struct {
	// Count is the number of consecutive blank lines collapsed into the block.
	Count int
}

// ImageAttrs holds attributes for BlockImage.
type ImageAttrs struct {
	Src   string
	Title string
}

// TableRow is one row of a table.
type TableRow struct {
	// Text is the raw row line.
	Text string

	// Cells holds the tokenized content of each cell.
	Cells [][]Span
}

// CellText returns the plain text of cell idx, or "" when out of range.
func (r TableRow) CellText(idx int) string {
	if idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return SpansText(r.Cells[idx])
}

// NewParagraph creates a paragraph block.
func NewParagraph(text string, spans []Span) Block {
	return Block{Kind: BlockParagraph, Text: text, Spans: spans}
}

// NewHeading creates a heading block. The level is clamped to 1..6.
func NewHeading(level int, text string, spans []Span) Block {
	level = min(max(level, 1), 6)
	return Block{
		Kind:    BlockHeading,
		Text:    text,
		Spans:   spans,
		Heading: &HeadingAttrs{Level: level},
	}
}

// NewQuote creates a quote block.
func NewQuote(text string, spans []Span) Block {
	return Block{Kind: BlockQuote, Text: text, Spans: spans}
}

// NewCode creates a code block. Code text is never tokenized.
func NewCode(language, text string) Block {
	return Block{
		Kind: BlockCode,
		Text: text,
		Code: &CodeAttrs{Language: language},
	}
}

// NewList creates a list block.
func NewList(text string, indent int, items []ListItem) Block {
	return Block{
		Kind: BlockList,
		Text: text,
		List: &ListAttrs{Items: items, Indent: indent},
	}
}

// NewDivider creates a thematic break.
func NewDivider(text string) Block {
	return Block{Kind: BlockDivider, Text: text}
}

// NewTable creates a table block.
func NewTable(text string, header TableRow, rows []TableRow) Block {
	return Block{
		Kind:  BlockTable,
		Text:  text,
		Table: &TableAttrs{Header: header, Rows: rows},
	}
}

// NewSpacer creates a spacer for count blank lines.
func NewSpacer(text string, count int) Block {
	return Block{
		Kind:   BlockSpacer,
		Text:   text,
		Spacer: &SpacerAttrs{Count: count},
	}
}

// NewImage creates a standalone image block.
func NewImage(text, src, title string, alt []Span) Block {
	return Block{
		Kind:  BlockImage,
		Text:  text,
		Spans: alt,
		Image: &ImageAttrs{Src: src, Title: title},
	}
}

// WithLines returns a copy of b covering the given source lines.
func (b Block) WithLines(first, last int) Block {
	b.Lines = LineRange{First: first, Last: last}
	return b
}

// Level returns the heading level, or 0 for other kinds.
func (b *Block) Level() int {
	if b.Heading == nil {
		return 0
	}
	return b.Heading.Level
}

// Language returns the code language, or "" for other kinds.
func (b *Block) Language() string {
	if b.Code == nil {
		return ""
	}
	return b.Code.Language
}

// Items returns the list forest, or nil for other kinds.
func (b *Block) Items() []ListItem {
	if b.List == nil {
		return nil
	}
	return b.List.Items
}

// Count returns the spacer line count, or 0 for other kinds.
func (b *Block) Count() int {
	if b.Spacer == nil {
		return 0
	}
	return b.Spacer.Count
}

// Valid reports whether exactly the attributes of b.Kind are set.
func (b *Block) Valid() bool {
	want := map[BlockKind]bool{
		BlockHeading: b.Heading != nil,
		BlockCode:    b.Code != nil,
		BlockList:    b.List != nil,
		BlockTable:   b.Table != nil,
		BlockSpacer:  b.Spacer != nil,
		BlockImage:   b.Image != nil,
	}
	for kind, set := range want {
		if set != (kind == b.Kind) {
			return false
		}
	}
	return true
}
