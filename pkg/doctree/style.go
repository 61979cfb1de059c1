package doctree

import "strings"

// Style is a bitmask of inline style flags.
// Flags are independent; a span's appearance is the union of its set bits.
type Style uint16

// Style flags.
const (
	StyleNone Style = 0

	StyleBold Style = 1 << (iota - 1)
	StyleItalic
	StyleUnderline
	StyleStrikethrough
	StyleMonospace
	StyleLink
	StyleHighlight
	StyleSpoiler
	StyleImage
)

// styleNames lists flag names in bit order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var styleNames = []struct {
	flag Style
	name string
}{
	{StyleBold, "bold"},
	{StyleItalic, "italic"},
	{StyleUnderline, "underline"},
	{StyleStrikethrough, "strikethrough"},
	{StyleMonospace, "monospace"},
	{StyleLink, "link"},
	{StyleHighlight, "highlight"},
	{StyleSpoiler, "spoiler"},
	{StyleImage, "image"},
}

// Has reports whether every bit of flag is set.
func (s Style) Has(flag Style) bool {
	return flag != StyleNone && s&flag == flag
}

// Toggle returns s with the bits of flag flipped.
func (s Style) Toggle(flag Style) Style {
	return s ^ flag
}

// Names returns the names of the set flags in bit order.
func (s Style) Names() []string {
	var names []string
	for _, entry := range styleNames {
		if s&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	return names
}

// String returns the set flag names joined by "|", or "none".
func (s Style) String() string {
	if s == StyleNone {
		return "none"
	}
	return strings.Join(s.Names(), "|")
}

// ParseStyle converts a "|"-separated list of flag names back into a Style.
// Unknown names are ignored.
func ParseStyle(str string) Style {
	var style Style
	for _, part := range strings.Split(str, "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		for _, entry := range styleNames {
			if entry.name == part {
				style |= entry.flag
			}
		}
	}
	return style
}
