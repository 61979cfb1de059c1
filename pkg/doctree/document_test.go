package doctree_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtree/pkg/doctree"
)

func plain(text string) []doctree.Span {
	return []doctree.Span{doctree.NewTextSpan(text, doctree.StyleNone)}
}

func sampleDocument() *doctree.Document {
	items := []doctree.ListItem{
		{
			Text: "a", Spans: plain("a"), Marker: "-",
			Children: []doctree.ListItem{
				{Text: "b", Spans: plain("b"), Indent: 2, Marker: "-"},
			},
		},
		{Text: "c", Spans: plain("c"), Marker: "-"},
	}
	header := doctree.TableRow{Cells: [][]doctree.Span{plain("h1"), plain("h2")}}
	rows := []doctree.TableRow{{Cells: [][]doctree.Span{plain("x"), nil}}}

	return doctree.NewDocument("source", []doctree.Block{
		doctree.NewHeading(1, "Title", []doctree.Span{
			doctree.NewTextSpan("Ti", doctree.StyleBold),
			doctree.NewTextSpan("tle", doctree.StyleNone),
		}),
		doctree.NewSpacer("\n", 2),
		doctree.NewParagraph("see [x](u)", []doctree.Span{
			doctree.NewTextSpan("see ", doctree.StyleNone),
			doctree.NewLinkSpan("x", "u"),
		}),
		doctree.NewCode("go", "**raw**"),
		doctree.NewList("- a", 0, items),
		doctree.NewDivider("---"),
		doctree.NewTable("| h1 | h2 |", header, rows),
	})
}

func TestDocument_PlainText(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()
	want := "Title\n\n\nsee x\n**raw**\na\nb\nc\n\nh1\th2\nx\t"
	assert.Equal(t, want, doc.PlainText())
	assert.Equal(t, want, doctree.PlainText(doc.Blocks))
}

func TestDocument_PlainTextConcurrent(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()
	want := doctree.PlainText(doc.Blocks)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, doc.PlainText())
		}()
	}
	wg.Wait()
}

func TestBlockPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block doctree.Block
		want  string
	}{
		{"divider", doctree.NewDivider("---"), ""},
		{"single spacer", doctree.NewSpacer("", 1), ""},
		{"triple spacer", doctree.NewSpacer("", 3), "\n\n"},
		{"quote", doctree.NewQuote("q", plain("q")), "q"},
		{"image", doctree.NewImage("![alt](s)", "s", "", plain("alt")), "alt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, doctree.BlockPlainText(&tt.block))
		})
	}
}

func TestBlock_Constructors(t *testing.T) {
	t.Parallel()

	heading := doctree.NewHeading(9, "x", nil)
	assert.Equal(t, 6, heading.Level())
	low := doctree.NewHeading(0, "x", nil)
	assert.Equal(t, 1, low.Level())

	for _, block := range sampleDocument().Blocks {
		assert.True(t, block.Valid(), "block %s", block.Kind)
	}

	broken := doctree.NewParagraph("p", nil)
	broken.Code = &doctree.CodeAttrs{}
	assert.False(t, broken.Valid())

	code := doctree.NewCode("go", "x")
	assert.Equal(t, "go", code.Language())
	assert.Zero(t, code.Level())
	assert.Nil(t, code.Items())
	assert.Zero(t, code.Count())
}

func TestBlockKind_String(t *testing.T) {
	t.Parallel()

	names := make([]string, 0)
	for _, kind := range doctree.AllBlockKinds() {
		names = append(names, kind.String())
	}
	assert.Equal(t, []string{
		"paragraph", "heading", "quote", "code", "list",
		"divider", "table", "spacer", "image",
	}, names)
	assert.Equal(t, "unknown", doctree.BlockKind(200).String())
}

func TestSpan_Constructors(t *testing.T) {
	t.Parallel()

	link := doctree.NewLinkSpan("docs", "https://x.io")
	assert.True(t, link.IsLink())
	assert.False(t, link.IsImage())
	assert.Equal(t, "https://x.io", link.URL())

	image := doctree.NewImageSpan("alt", "a.png", "")
	assert.True(t, image.IsImage())
	assert.Equal(t, "alt", image.Text)
	assert.NotContains(t, image.Extra, doctree.ExtraTitle)

	titled := doctree.NewImageSpan("alt", "a.png", "T")
	assert.Equal(t, "T", titled.Extra[doctree.ExtraTitle])

	assert.Empty(t, doctree.NewTextSpan("x", doctree.StyleNone).URL())
}

func TestListItem(t *testing.T) {
	t.Parallel()

	items := sampleDocument().Blocks[4].Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Depth())
	assert.Equal(t, 1, items[1].Depth())
	assert.Equal(t, 3, doctree.CountItems(items))
	assert.False(t, items[0].Ordered())
	assert.True(t, doctree.ListItem{Marker: "3)"}.Ordered())
}

func TestTableRow_CellText(t *testing.T) {
	t.Parallel()

	row := doctree.TableRow{Cells: [][]doctree.Span{plain("a"), nil}}
	assert.Equal(t, "a", row.CellText(0))
	assert.Empty(t, row.CellText(1))
	assert.Empty(t, row.CellText(5))
	assert.Empty(t, row.CellText(-1))
}
