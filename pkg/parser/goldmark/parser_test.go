package goldmark

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/yaklabco/mdtree/pkg/doctree"
)

func TestParser_New(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flavor     string
		wantFlavor string
	}{
		{"commonmark", FlavorCommonMark, FlavorCommonMark},
		{"gfm", FlavorGFM, FlavorGFM},
		{"invalid defaults to commonmark", "invalid", FlavorCommonMark},
		{"empty defaults to commonmark", "", FlavorCommonMark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := New(tt.flavor).Flavor(); got != tt.wantFlavor {
				t.Errorf("Flavor() = %q, want %q", got, tt.wantFlavor)
			}
		})
	}
}

func TestParser_Outline(t *testing.T) {
	t.Parallel()

	heading := func(level, line int) OutlineBlock {
		return OutlineBlock{Kind: doctree.BlockHeading, Level: level, Line: line}
	}
	block := func(kind doctree.BlockKind, line int) OutlineBlock {
		return OutlineBlock{Kind: kind, Line: line}
	}

	tests := []struct {
		name    string
		flavor  string
		content string
		want    []OutlineBlock
	}{
		{
			name:    "empty",
			content: "",
			want:    nil,
		},
		{
			name:    "heading and paragraph",
			content: "# Hello\n\nWorld\n",
			want:    []OutlineBlock{heading(1, 1), block(doctree.BlockParagraph, 3)},
		},
		{
			name:    "quote",
			content: "> quote\n> more\n\ntext\n",
			want:    []OutlineBlock{block(doctree.BlockQuote, 1), block(doctree.BlockParagraph, 4)},
		},
		{
			name:    "fenced code then divider",
			content: "```go\nfmt.Println()\n```\n\n---\n",
			want:    []OutlineBlock{block(doctree.BlockCode, 1), block(doctree.BlockDivider, 5)},
		},
		{
			name:    "empty fence without info",
			content: "```\n```\n\n---\n",
			want:    []OutlineBlock{block(doctree.BlockCode, 1), block(doctree.BlockDivider, 4)},
		},
		{
			name:    "setext heading then divider",
			content: "Title\n=====\n\n***\n",
			want:    []OutlineBlock{heading(1, 1), block(doctree.BlockDivider, 4)},
		},
		{
			name:    "two lists",
			content: "- a\n- b\n\n1. x\n",
			want:    []OutlineBlock{block(doctree.BlockList, 1), block(doctree.BlockList, 4)},
		},
		{
			name:    "indented code",
			content: "    indented\n",
			want:    []OutlineBlock{block(doctree.BlockCode, 1)},
		},
		{
			name:    "crlf",
			content: "# A\r\n\r\nB\r\n",
			want:    []OutlineBlock{heading(1, 1), block(doctree.BlockParagraph, 3)},
		},
		{
			name:    "html block",
			content: "<div>\nhi\n</div>\n",
			want:    []OutlineBlock{block(doctree.BlockParagraph, 1)},
		},
		{
			name:    "table is a paragraph in commonmark",
			flavor:  FlavorCommonMark,
			content: "| a | b |\n| - | - |\n| 1 | 2 |\n",
			want:    []OutlineBlock{block(doctree.BlockParagraph, 1)},
		},
		{
			name:    "table in gfm",
			flavor:  FlavorGFM,
			content: "| a | b |\n| - | - |\n| 1 | 2 |\n",
			want:    []OutlineBlock{block(doctree.BlockTable, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outline, err := New(tt.flavor).Outline(context.Background(), []byte(tt.content))
			if err != nil {
				t.Fatalf("Outline() error = %v", err)
			}
			if !reflect.DeepEqual(outline.Blocks, tt.want) {
				t.Errorf("Outline() = %+v, want %+v", outline.Blocks, tt.want)
			}
		})
	}
}

func TestParser_Outline_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(FlavorGFM).Outline(ctx, []byte("# x"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Outline() error = %v, want context.Canceled", err)
	}
}
