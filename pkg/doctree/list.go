package doctree

// ListItem is one entry of a list forest.
type ListItem struct {
	// Text is the item's own line content, trimmed, without the marker.
	Text string

	// Spans is the tokenized Text.
	Spans []Span

	// Indent is the column of the marker. An item indented between its
	// parent and the parent's earlier children takes their Indent, so
	// siblings always share one value.
	Indent int

	// Marker is the literal bullet or number token ("-", "*", "+", "1.", "2)").
	Marker string

	// Children are the nested items. Every child has a greater Indent.
	Children []ListItem
}

// Ordered reports whether the marker is numeric.
func (it ListItem) Ordered() bool {
	return len(it.Marker) > 0 && it.Marker[0] >= '0' && it.Marker[0] <= '9'
}

// Depth returns the height of the subtree rooted at it (1 for a leaf).
func (it ListItem) Depth() int {
	deepest := 0
	for _, child := range it.Children {
		deepest = max(deepest, child.Depth())
	}
	return deepest + 1
}

// CountItems returns the number of items in a forest, children included.
func CountItems(items []ListItem) int {
	count := 0
	for _, item := range items {
		count += 1 + CountItems(item.Children)
	}
	return count
}
