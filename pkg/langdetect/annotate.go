package langdetect

import "github.com/yaklabco/mdtree/pkg/doctree"

// Annotation describes the language of one code block.
type Annotation struct {
	// Block is the index of the code block in Document.Blocks.
	Block int

	// Line is the first source line of the block.
	Line int

	// Declared is the fence info string as written.
	Declared string

	// Language is the canonical or detected language.
	Language string

	// Detected is true when Language was guessed from the code because the
	// fence carried no info string.
	Detected bool
}

// Annotate returns one Annotation per code block in doc, in block order.
func Annotate(doc *doctree.Document) []Annotation {
	if doc == nil {
		return nil
	}

	var out []Annotation
	for i := range doc.Blocks {
		block := &doc.Blocks[i]
		if block.Kind != doctree.BlockCode {
			continue
		}

		ann := Annotation{
			Block:    i,
			Line:     block.Lines.First,
			Declared: block.Language(),
		}
		if lang := Canonical(ann.Declared); lang != "" {
			ann.Language = lang
		} else {
			ann.Language = Detect([]byte(block.Text))
			ann.Detected = true
		}
		out = append(out, ann)
	}
	return out
}

// ByBlock indexes annotations by block index.
func ByBlock(anns []Annotation) map[int]Annotation {
	index := make(map[int]Annotation, len(anns))
	for _, ann := range anns {
		index[ann.Block] = ann
	}
	return index
}
