package doctree

// TokenizeFunc splits raw inline text into styled spans.
type TokenizeFunc func(text string) []Span

// PromoteImages returns a new document in which every paragraph consisting of
// exactly one image span is replaced by a standalone Image block. The image
// label, tokenized with tokenize, becomes the block's spans. doc itself is
// not modified.
func PromoteImages(doc *Document, tokenize TokenizeFunc) *Document {
	if doc == nil {
		return nil
	}

	blocks := make([]Block, len(doc.Blocks))
	for idx, block := range doc.Blocks {
		if image, ok := promotable(block); ok {
			blocks[idx] = NewImage(block.Text, image.URL(), image.Extra[ExtraTitle], altSpans(image, tokenize)).
				WithLines(block.Lines.First, block.Lines.Last)
			continue
		}
		blocks[idx] = block
	}

	return NewDocument(doc.Original, blocks)
}

func promotable(block Block) (Span, bool) {
	if block.Kind != BlockParagraph || len(block.Spans) != 1 {
		return Span{}, false
	}
	span := block.Spans[0]
	if !span.IsImage() {
		return Span{}, false
	}
	return span, true
}

// altSpans tokenizes the raw label of image. Without a tokenizer the
// resolved alt text is kept as one plain span.
func altSpans(image Span, tokenize TokenizeFunc) []Span {
	label, ok := image.Extra[ExtraLabel]
	if !ok {
		label = image.Extra[ExtraAlt]
	}
	if label == "" {
		return nil
	}
	if tokenize == nil {
		return []Span{NewTextSpan(image.Extra[ExtraAlt], StyleNone)}
	}
	return tokenize(label)
}
