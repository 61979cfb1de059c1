package goldmark

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/yaklabco/mdtree/pkg/doctree"
)

// missing names the side of a divergence that has no block at the line.
const missing = "none"

// Divergence is a disagreement between a document and its reference outline
// about the block starting at Line.
type Divergence struct {
	Line      int
	Ours      string
	Reference string
}

// String formats the divergence for display.
func (d Divergence) String() string {
	return fmt.Sprintf("line %d: %s, reference %s", d.Line, d.Ours, d.Reference)
}

// Compare pairs the blocks of doc with the outline blocks starting on the
// same line and reports every line where the two disagree.
//
// Spacer blocks have no reference counterpart and are skipped. Image blocks
// compare as paragraphs. Outline blocks with an unknown line are ignored.
func Compare(doc *doctree.Document, outline *Outline) []Divergence {
	reference := make(map[int]OutlineBlock)
	if outline != nil {
		for _, block := range outline.Blocks {
			if block.Line > 0 {
				if _, seen := reference[block.Line]; !seen {
					reference[block.Line] = block
				}
			}
		}
	}

	var divergences []Divergence
	matched := make(map[int]bool)

	if doc != nil {
		for i := range doc.Blocks {
			block := &doc.Blocks[i]
			if block.Kind == doctree.BlockSpacer {
				continue
			}

			line := block.Lines.First
			ours := describe(comparableKind(block.Kind), block.Level())

			ref, ok := reference[line]
			if !ok {
				divergences = append(divergences, Divergence{Line: line, Ours: ours, Reference: missing})
				continue
			}
			matched[line] = true

			if theirs := describe(ref.Kind, ref.Level); theirs != ours {
				divergences = append(divergences, Divergence{Line: line, Ours: ours, Reference: theirs})
			}
		}
	}

	for line, ref := range reference {
		if !matched[line] {
			divergences = append(divergences, Divergence{Line: line, Ours: missing, Reference: describe(ref.Kind, ref.Level)})
		}
	}

	slices.SortFunc(divergences, func(a, b Divergence) int { return a.Line - b.Line })
	return divergences
}

func comparableKind(kind doctree.BlockKind) doctree.BlockKind {
	if kind == doctree.BlockImage {
		return doctree.BlockParagraph
	}
	return kind
}

func describe(kind doctree.BlockKind, level int) string {
	if kind == doctree.BlockHeading {
		return kind.String() + "(" + strconv.Itoa(level) + ")"
	}
	return kind.String()
}
