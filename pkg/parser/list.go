package parser

import (
	"strings"

	"github.com/yaklabco/mdtree/pkg/doctree"
	"github.com/yaklabco/mdtree/pkg/inline"
)

// listRecord is one matched list line before the forest is rebuilt.
type listRecord struct {
	indent  int
	marker  string
	content string
}

// matchListMarker matches a list line: up to six spaces, then a bullet
// (*, + or -) or 1 to 9 digits followed by '.' or ')', then whitespace and
// non-empty content. line must be right-trimmed.
func matchListMarker(line string) (listRecord, bool) {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	if indent > maxListIndent || indent == len(line) {
		return listRecord{}, false
	}

	end := indent
	switch line[end] {
	case '*', '+', '-':
		end++
	default:
		for end < len(line) && isDigit(line[end]) {
			end++
		}
		digits := end - indent
		if digits == 0 || digits > maxOrdinalRun || end == len(line) {
			return listRecord{}, false
		}
		if line[end] != '.' && line[end] != ')' {
			return listRecord{}, false
		}
		end++
	}

	if end == len(line) || (line[end] != ' ' && line[end] != '\t') {
		return listRecord{}, false
	}

	content := strings.TrimSpace(line[end:])
	if content == "" {
		return listRecord{}, false
	}

	return listRecord{
		indent:  indent,
		marker:  line[indent:end],
		content: content,
	}, true
}

// startsList reports whether line opens a top-level list.
func startsList(line string) bool {
	rec, ok := matchListMarker(line)
	return ok && rec.indent == 0
}

// consumeList collects the list opened at the current line and every
// following list line at any indentation.
func (s *scanner) consumeList() {
	first := s.pos

	var records []listRecord
	for s.pos < len(s.lines) {
		rec, ok := matchListMarker(s.lines[s.pos])
		if !ok {
			break
		}
		records = append(records, rec)
		s.pos++
	}

	text := strings.Join(s.lines[first:s.pos], lineSep)
	s.push(doctree.NewList(text, 0, buildForest(records)), first, s.pos-1)
}

// listNode is an arena entry used while rebuilding the forest.
type listNode struct {
	item     doctree.ListItem
	children []int
}

// buildForest turns indent-tagged records into a tree in one forward pass.
//
// The stack holds the arena indexes of the open levels, innermost last.
// Levels whose indent is not below the record's are closed; the record then
// becomes a child of the innermost open level, or a root when none is left.
// A record indented between its parent and that parent's existing children
// joins the children and takes their indent, so siblings always share one
// indent.
func buildForest(records []listRecord) []doctree.ListItem {
	nodes := make([]listNode, len(records))
	stack := make([]int, 0, len(records))

	var roots []int

	for idx, rec := range records {
		for len(stack) > 0 && nodes[stack[len(stack)-1]].item.Indent >= rec.indent {
			stack = stack[:len(stack)-1]
		}

		indent := rec.indent
		if len(stack) == 0 {
			if len(roots) > 0 {
				indent = nodes[roots[0]].item.Indent
			}
			roots = append(roots, idx)
		} else {
			parent := &nodes[stack[len(stack)-1]]
			if len(parent.children) > 0 {
				indent = nodes[parent.children[0]].item.Indent
			}
			parent.children = append(parent.children, idx)
		}

		nodes[idx].item = doctree.ListItem{
			Text:   rec.content,
			Spans:  inline.Tokenize(rec.content),
			Indent: indent,
			Marker: rec.marker,
		}
		stack = append(stack, idx)
	}

	return materialize(nodes, roots)
}

func materialize(nodes []listNode, idxs []int) []doctree.ListItem {
	if len(idxs) == 0 {
		return nil
	}

	items := make([]doctree.ListItem, len(idxs))
	for pos, idx := range idxs {
		items[pos] = nodes[idx].item
		items[pos].Children = materialize(nodes, nodes[idx].children)
	}
	return items
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
