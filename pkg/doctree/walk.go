package doctree

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(block *Block) error

// Walk visits the blocks of doc in order.
// If walkFunc returns a non-nil error, the walk stops and returns that error.
func Walk(doc *Document, walkFunc WalkFunc) error {
	if doc == nil {
		return nil
	}

	for idx := range doc.Blocks {
		if err := walkFunc(&doc.Blocks[idx]); err != nil {
			return err
		}
	}

	return nil
}

// ItemFunc is the function signature for WalkItems callbacks.
// depth is 0 for root items.
type ItemFunc func(item *ListItem, depth int) error

// WalkItems performs a pre-order traversal of a list forest.
func WalkItems(items []ListItem, itemFunc ItemFunc) error {
	return walkItems(items, 0, itemFunc)
}

func walkItems(items []ListItem, depth int, itemFunc ItemFunc) error {
	for idx := range items {
		if err := itemFunc(&items[idx], depth); err != nil {
			return err
		}
		if err := walkItems(items[idx].Children, depth+1, itemFunc); err != nil {
			return err
		}
	}
	return nil
}

// SpanFunc is the function signature for WalkSpans callbacks.
type SpanFunc func(block *Block, span *Span) error

// WalkSpans visits every span reachable from doc: block spans, list item
// spans and table cell spans, in document order.
func WalkSpans(doc *Document, spanFunc SpanFunc) error {
	return Walk(doc, func(block *Block) error {
		if err := visitSpans(block, block.Spans, spanFunc); err != nil {
			return err
		}

		switch {
		case block.List != nil:
			return WalkItems(block.List.Items, func(item *ListItem, _ int) error {
				return visitSpans(block, item.Spans, spanFunc)
			})
		case block.Table != nil:
			if err := visitRow(block, block.Table.Header, spanFunc); err != nil {
				return err
			}
			for _, row := range block.Table.Rows {
				if err := visitRow(block, row, spanFunc); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func visitRow(block *Block, row TableRow, spanFunc SpanFunc) error {
	for _, cell := range row.Cells {
		if err := visitSpans(block, cell, spanFunc); err != nil {
			return err
		}
	}
	return nil
}

func visitSpans(block *Block, spans []Span, spanFunc SpanFunc) error {
	for idx := range spans {
		if err := spanFunc(block, &spans[idx]); err != nil {
			return err
		}
	}
	return nil
}

// FindByKind returns pointers to all blocks of the specified kind.
func FindByKind(doc *Document, kind BlockKind) []*Block {
	var result []*Block

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(doc, func(block *Block) error {
		if block.Kind == kind {
			result = append(result, block)
		}
		return nil
	})

	return result
}

// CountByKind returns the number of blocks of each kind present in doc.
func CountByKind(doc *Document) map[BlockKind]int {
	counts := make(map[BlockKind]int)

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(doc, func(block *Block) error {
		counts[block.Kind]++
		return nil
	})

	return counts
}

// CountSpans returns the number of spans reachable from doc.
func CountSpans(doc *Document) int {
	count := 0

	//nolint:errcheck,revive // WalkSpans only returns nil errors in this usage
	WalkSpans(doc, func(_ *Block, _ *Span) error {
		count++
		return nil
	})

	return count
}
