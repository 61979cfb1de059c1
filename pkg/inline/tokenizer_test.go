package inline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtree/pkg/doctree"
	"github.com/yaklabco/mdtree/pkg/inline"
)

func text(str string, style doctree.Style) doctree.Span {
	return doctree.NewTextSpan(str, style)
}

func TestTokenize_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, inline.Tokenize(""))
}

func TestTokenize_Emphasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []doctree.Span
	}{
		{
			name:  "plain",
			input: "just words",
			want:  []doctree.Span{text("just words", doctree.StyleNone)},
		},
		{
			name:  "bold then plain",
			input: "**Bold** text",
			want: []doctree.Span{
				text("Bold", doctree.StyleBold),
				text(" text", doctree.StyleNone),
			},
		},
		{
			name:  "single markers are italic",
			input: "*a* _b_",
			want: []doctree.Span{
				text("a", doctree.StyleItalic),
				text(" ", doctree.StyleNone),
				text("b", doctree.StyleItalic),
			},
		},
		{
			name:  "reopened style continues the run",
			input: "**a****b**",
			want:  []doctree.Span{text("ab", doctree.StyleBold)},
		},
		{
			name:  "same style from different markers",
			input: "*a*_b_",
			want:  []doctree.Span{text("ab", doctree.StyleItalic)},
		},
		{
			name:  "double underscore is underline",
			input: "__under__",
			want:  []doctree.Span{text("under", doctree.StyleUnderline)},
		},
		{
			name:  "paired extensions",
			input: "~~gone~~ ==mark== ||secret||",
			want: []doctree.Span{
				text("gone", doctree.StyleStrikethrough),
				text(" ", doctree.StyleNone),
				text("mark", doctree.StyleHighlight),
				text(" ", doctree.StyleNone),
				text("secret", doctree.StyleSpoiler),
			},
		},
		{
			name:  "monospace",
			input: "use `go vet` here",
			want: []doctree.Span{
				text("use ", doctree.StyleNone),
				text("go vet", doctree.StyleMonospace),
				text(" here", doctree.StyleNone),
			},
		},
		{
			name:  "triple star combines bits",
			input: "***both***",
			want:  []doctree.Span{text("both", doctree.StyleBold|doctree.StyleItalic)},
		},
		{
			name:  "interleaved markers use independent bits",
			input: "**a _b** c_",
			want: []doctree.Span{
				text("a ", doctree.StyleBold),
				text("b", doctree.StyleBold|doctree.StyleItalic),
				text(" c", doctree.StyleItalic),
			},
		},
		{
			name:  "single tilde equals and pipe are literal",
			input: "a ~ b = c | d",
			want:  []doctree.Span{text("a ~ b = c | d", doctree.StyleNone)},
		},
		{
			name:  "double backtick is dropped",
			input: "``x``",
			want:  []doctree.Span{text("x", doctree.StyleNone)},
		},
		{
			name:  "unbalanced marker styles the tail",
			input: "unclosed **bold",
			want: []doctree.Span{
				text("unclosed ", doctree.StyleNone),
				text("bold", doctree.StyleBold),
			},
		},
		{
			name:  "third marker reopens",
			input: "*a*b*c",
			want: []doctree.Span{
				text("a", doctree.StyleItalic),
				text("b", doctree.StyleNone),
				text("c", doctree.StyleItalic),
			},
		},
		{
			name:  "multibyte text is kept whole",
			input: "**héllo** wörld ✓",
			want: []doctree.Span{
				text("héllo", doctree.StyleBold),
				text(" wörld ✓", doctree.StyleNone),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, inline.Tokenize(tt.input))
		})
	}
}

func TestTokenize_Escapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"star", `\*`, "*"},
		{"underscore", `\_`, "_"},
		{"backtick", "\\`", "`"},
		{"hash", `\#`, "#"},
		{"bracket", `\[`, "["},
		{"backslash", `\\`, `\`},
		{"escaped emphasis", `\*not italic\*`, "*not italic*"},
		{"non punctuation keeps backslash", `a\b`, `a\b`},
		{"trailing backslash", `end\`, `end\`},
		{"escaped link", `\[a](b)`, "[a](b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spans := inline.Tokenize(tt.input)
			require.Len(t, spans, 1)
			assert.Equal(t, doctree.StyleNone, spans[0].Style)
			assert.Equal(t, tt.want, spans[0].Text)
		})
	}
}

func TestTokenize_Links(t *testing.T) {
	t.Parallel()

	t.Run("link", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize("[link](https://example.com/path)")
		require.Len(t, spans, 1)
		assert.True(t, spans[0].IsLink())
		assert.Equal(t, doctree.StyleLink, spans[0].Style)
		assert.Equal(t, "link", spans[0].Text)
		assert.Equal(t, "https://example.com/path", spans[0].URL())
	})

	t.Run("image without alt", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize("![](https://example.com/image.jpg)")
		require.Len(t, spans, 1)
		assert.True(t, spans[0].IsImage())
		assert.Empty(t, spans[0].Text)
		assert.Equal(t, "https://example.com/image.jpg", spans[0].URL())
	})

	t.Run("image with alt and title", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize(`![a cat](cat.png "Sleeping")`)
		require.Len(t, spans, 1)
		assert.Equal(t, doctree.StyleImage, spans[0].Style)
		assert.Equal(t, "a cat", spans[0].Text)
		assert.Equal(t, "cat.png", spans[0].URL())
		assert.Equal(t, "a cat", spans[0].Extra[doctree.ExtraAlt])
		assert.Equal(t, "Sleeping", spans[0].Extra[doctree.ExtraTitle])
		assert.NotContains(t, spans[0].Extra, doctree.ExtraLabel)
	})

	t.Run("escaped image label keeps raw label", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize(`![\*a\*](s)`)
		require.Len(t, spans, 1)
		assert.Equal(t, "*a*", spans[0].Text)
		assert.Equal(t, `\*a\*`, spans[0].Extra[doctree.ExtraLabel])
	})

	t.Run("balanced parentheses", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize("[text](url(with)brackets)")
		require.Len(t, spans, 1)
		assert.Equal(t, "url(with)brackets", spans[0].URL())
	})

	t.Run("escaped parenthesis", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize(`[a](x\)y)`)
		require.Len(t, spans, 1)
		assert.Equal(t, "x)y", spans[0].URL())
	})

	t.Run("escaped bracket in label", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize(`[a\]b](u)`)
		require.Len(t, spans, 1)
		assert.Equal(t, "a]b", spans[0].Text)
	})

	t.Run("surrounding text", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize("see [docs](https://x.io) now")
		require.Len(t, spans, 3)
		assert.Equal(t, text("see ", doctree.StyleNone), spans[0])
		assert.Equal(t, "docs", spans[1].Text)
		assert.Equal(t, text(" now", doctree.StyleNone), spans[2])
	})

	t.Run("link ignores surrounding emphasis", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize("**[a](u)**")
		require.Len(t, spans, 1)
		assert.Equal(t, doctree.StyleLink, spans[0].Style)
	})

	t.Run("escaped bang makes a link", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize(`\![a](u)`)
		require.Len(t, spans, 2)
		assert.Equal(t, text("!", doctree.StyleNone), spans[0])
		assert.True(t, spans[1].IsLink())
	})

	t.Run("bracket without destination", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize("x [a] y [b](u)")
		require.Len(t, spans, 2)
		assert.Equal(t, text("x [a] y ", doctree.StyleNone), spans[0])
		assert.Equal(t, "b", spans[1].Text)
	})

	t.Run("unterminated destination stays literal", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize("[a](b")
		require.Len(t, spans, 1)
		assert.Equal(t, text("[a](b", doctree.StyleNone), spans[0])
	})

	t.Run("unterminated destination disables later links", func(t *testing.T) {
		t.Parallel()

		spans := inline.Tokenize("[a](b [c](d)")
		require.Len(t, spans, 1)
		for _, span := range spans {
			assert.False(t, span.IsLink())
		}
	})
}

func TestTokenize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"**Bold** and *italic* with `code`",
		"~~a~~ ==b== ||c||",
		`\*literal\* and \_more\_`,
		"[label](url) plain",
	}

	for _, input := range inputs {
		for _, span := range inline.Tokenize(input) {
			if span.Text == "" || span.Extra != nil {
				continue
			}
			again := inline.Tokenize(escapeMarkers(span.Text))
			require.Len(t, again, 1, "retokenizing %q", span.Text)
			assert.Equal(t, doctree.StyleNone, again[0].Style)
			assert.Equal(t, span.Text, again[0].Text)
		}
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bold and link", inline.PlainText("**Bold** and [link](u)"))
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a*b", inline.Unescape(`a\*b`))
	assert.Equal(t, `a\b`, inline.Unescape(`a\b`))
	assert.Equal(t, `a\`, inline.Unescape(`a\`))
	assert.Equal(t, "plain", inline.Unescape("plain"))
}

// escapeMarkers backslash-escapes punctuation so resolved text can be fed
// back to the tokenizer.
func escapeMarkers(str string) string {
	var out []byte
	for idx := 0; idx < len(str); idx++ {
		switch str[idx] {
		case '*', '_', '`', '~', '=', '|', '[', ']', '(', ')', '!', '\\':
			out = append(out, '\\')
		}
		out = append(out, str[idx])
	}
	return string(out)
}
