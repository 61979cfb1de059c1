package inline

import "strings"

// isPunctuation returns true for ASCII punctuation, the set of characters a
// backslash can escape.
func isPunctuation(b byte) bool {
	switch b {
	case '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
		':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^', '_', '`', '{', '|', '}', '~':
		return true
	default:
		return false
	}
}

// Unescape resolves backslash escapes of ASCII punctuation. A backslash before
// any other character, or at the end of text, is kept.
func Unescape(text string) string {
	if strings.IndexByte(text, '\\') < 0 {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text))

	for pos := 0; pos < len(text); pos++ {
		if text[pos] == '\\' && pos+1 < len(text) && isPunctuation(text[pos+1]) {
			pos++
		}
		builder.WriteByte(text[pos])
	}

	return builder.String()
}

// scanUnescaped returns the offset of the first unescaped target at or after
// from, or -1.
func scanUnescaped(text string, from int, target byte) int {
	for pos := from; pos < len(text); pos++ {
		switch text[pos] {
		case '\\':
			pos++
		case target:
			return pos
		}
	}
	return -1
}

// scanDestination returns the offset of the ')' that closes a link
// destination starting at from, or -1. Unescaped parentheses inside the
// destination must balance, so "a(b)c)" closes at the last byte.
func scanDestination(text string, from int) int {
	depth := 0
	for pos := from; pos < len(text); pos++ {
		switch text[pos] {
		case '\\':
			pos++
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return pos
			}
			depth--
		}
	}
	return -1
}

// splitTitle separates an image destination of the form `src "title"` into
// its parts. Single quotes are accepted as title delimiters too. A
// destination without a quoted suffix is returned whole with an empty title.
func splitTitle(dest string) (string, string) {
	dest = strings.TrimSpace(dest)
	if len(dest) < 2 {
		return dest, ""
	}

	quote := dest[len(dest)-1]
	if quote != '"' && quote != '\'' {
		return dest, ""
	}

	open := strings.LastIndexByte(dest[:len(dest)-1], quote)
	if open <= 0 || (dest[open-1] != ' ' && dest[open-1] != '\t') {
		return dest, ""
	}

	return strings.TrimSpace(dest[:open]), dest[open+1 : len(dest)-1]
}
