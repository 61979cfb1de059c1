package doctree

// Keys used in Span.Extra.
const (
	ExtraURL   = "url"
	ExtraAlt   = "alt"
	ExtraTitle = "title"

	// ExtraLabel holds the raw image label when escapes changed it.
	ExtraLabel = "label"
)

// Span is a run of inline text carrying a uniform style.
type Span struct {
	// Text is the rendered text with escapes already resolved.
	Text string

	// Style is the set of style flags active for the whole span.
	Style Style

	// Extra carries link and image attributes ("url", "alt", "title").
	// It is nil for plain styled text.
	Extra map[string]string
}

// NewTextSpan creates a span of styled text.
func NewTextSpan(text string, style Style) Span {
	return Span{Text: text, Style: style}
}

// NewLinkSpan creates a link span.
func NewLinkSpan(label, url string) Span {
	return Span{
		Text:  label,
		Style: StyleLink,
		Extra: map[string]string{ExtraURL: url},
	}
}

// NewImageSpan creates an image span. The alt text doubles as the span text.
// An empty title is omitted from Extra.
func NewImageSpan(alt, src, title string) Span {
	extra := map[string]string{
		ExtraURL: src,
		ExtraAlt: alt,
	}
	if title != "" {
		extra[ExtraTitle] = title
	}
	return Span{Text: alt, Style: StyleImage, Extra: extra}
}

// URL returns the link or image destination, if any.
func (s Span) URL() string {
	return s.Extra[ExtraURL]
}

// IsLink reports whether the span is a link.
func (s Span) IsLink() bool {
	return s.Style.Has(StyleLink)
}

// IsImage reports whether the span is an image.
func (s Span) IsImage() bool {
	return s.Style.Has(StyleImage)
}

// SpansText concatenates the text of spans.
func SpansText(spans []Span) string {
	switch len(spans) {
	case 0:
		return ""
	case 1:
		return spans[0].Text
	}

	size := 0
	for _, span := range spans {
		size += len(span.Text)
	}
	buf := make([]byte, 0, size)
	for _, span := range spans {
		buf = append(buf, span.Text...)
	}
	return string(buf)
}
