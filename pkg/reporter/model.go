package reporter

import (
	"github.com/yaklabco/mdtree/pkg/doctree"
	"github.com/yaklabco/mdtree/pkg/langdetect"
	"github.com/yaklabco/mdtree/pkg/runner"
)

// schemaVersion identifies the layout of the structured output.
const schemaVersion = "1.0.0"

// Output is the top-level structure of json and yaml output.
type Output struct {
	Version string     `json:"version" yaml:"version"`
	Files   []FileTree `json:"files" yaml:"files"`
	Summary Summary    `json:"summary" yaml:"summary"`
}

// FileTree is the document tree of one input.
type FileTree struct {
	Path   string      `json:"path" yaml:"path"`
	Error  string      `json:"error,omitempty" yaml:"error,omitempty"`
	Blocks []BlockNode `json:"blocks" yaml:"blocks"`
}

// BlockNode is a serialized block. Only the fields of its kind are set.
type BlockNode struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Lines    [2]int         `json:"lines" yaml:"lines,flow"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Level    int            `json:"level,omitempty" yaml:"level,omitempty"`
	Language string         `json:"language,omitempty" yaml:"language,omitempty"`
	Detected string         `json:"detected,omitempty" yaml:"detected,omitempty"`
	Count    int            `json:"count,omitempty" yaml:"count,omitempty"`
	Src      string         `json:"src,omitempty" yaml:"src,omitempty"`
	Title    string         `json:"title,omitempty" yaml:"title,omitempty"`
	Spans    []SpanNode     `json:"spans,omitempty" yaml:"spans,omitempty"`
	Items    []ItemNode     `json:"items,omitempty" yaml:"items,omitempty"`
	Header   [][]SpanNode   `json:"header,omitempty" yaml:"header,omitempty"`
	Rows     [][][]SpanNode `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// ItemNode is a serialized list item.
type ItemNode struct {
	Marker   string     `json:"marker" yaml:"marker"`
	Indent   int        `json:"indent" yaml:"indent"`
	Text     string     `json:"text" yaml:"text"`
	Spans    []SpanNode `json:"spans,omitempty" yaml:"spans,omitempty"`
	Children []ItemNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// SpanNode is a serialized inline span.
type SpanNode struct {
	Text  string   `json:"text" yaml:"text"`
	Style []string `json:"style,omitempty" yaml:"style,omitempty,flow"`
	URL   string   `json:"url,omitempty" yaml:"url,omitempty"`
	Alt   string   `json:"alt,omitempty" yaml:"alt,omitempty"`
	Title string   `json:"title,omitempty" yaml:"title,omitempty"`
}

// Summary contains aggregate statistics.
type Summary struct {
	FilesParsed   int            `json:"filesParsed" yaml:"filesParsed"`
	FilesFailed   int            `json:"filesFailed" yaml:"filesFailed"`
	Bytes         int64          `json:"bytes" yaml:"bytes"`
	Blocks        int            `json:"blocks" yaml:"blocks"`
	Spans         int            `json:"spans" yaml:"spans"`
	BlocksByKind  map[string]int `json:"blocksByKind" yaml:"blocksByKind"`
	CodeLanguages map[string]int `json:"codeLanguages,omitempty" yaml:"codeLanguages,omitempty"`
}

// BuildOutput converts a run result into its serializable form.
// Text is omitted from block nodes when compact is set.
func BuildOutput(result *runner.Result, workDir string, compact bool) *Output {
	output := &Output{
		Version: schemaVersion,
		Files:   make([]FileTree, 0),
		Summary: Summary{BlocksByKind: make(map[string]int)},
	}
	if result == nil {
		return output
	}

	output.Files = make([]FileTree, 0, len(result.Files))
	for i := range result.Files {
		file := &result.Files[i]
		tree := FileTree{
			Path:   DisplayPath(file.Path, workDir),
			Blocks: make([]BlockNode, 0),
		}
		if file.Error != nil {
			tree.Error = file.Error.Error()
		}
		if file.Document != nil {
			tree.Blocks = buildBlocks(file.Document, langdetect.ByBlock(file.Languages), compact)
		}
		output.Files = append(output.Files, tree)
	}

	stats := result.Stats
	output.Summary.FilesParsed = stats.FilesParsed
	output.Summary.FilesFailed = stats.FilesFailed
	output.Summary.Bytes = stats.Bytes
	output.Summary.Blocks = stats.Blocks
	output.Summary.Spans = stats.Spans
	for kind, n := range stats.BlocksByKind {
		output.Summary.BlocksByKind[kind] = n
	}
	if len(stats.CodeLanguages) > 0 {
		output.Summary.CodeLanguages = stats.CodeLanguages
	}

	return output
}

func buildBlocks(doc *doctree.Document, languages map[int]langdetect.Annotation, compact bool) []BlockNode {
	nodes := make([]BlockNode, 0, len(doc.Blocks))
	for i := range doc.Blocks {
		block := &doc.Blocks[i]
		node := BlockNode{
			Kind:  block.Kind.String(),
			Lines: [2]int{block.Lines.First, block.Lines.Last},
			Spans: buildSpans(block.Spans),
		}
		if !compact || block.Kind == doctree.BlockCode {
			node.Text = block.Text
		}

		switch block.Kind {
		case doctree.BlockHeading:
			node.Level = block.Level()
		case doctree.BlockCode:
			node.Language = block.Language()
			if ann, ok := languages[i]; ok && ann.Detected {
				node.Detected = ann.Language
			}
		case doctree.BlockList:
			node.Items = buildItems(block.Items())
		case doctree.BlockTable:
			node.Header = buildCells(block.Table.Header)
			for _, row := range block.Table.Rows {
				node.Rows = append(node.Rows, buildCells(row))
			}
		case doctree.BlockSpacer:
			node.Count = block.Count()
		case doctree.BlockImage:
			node.Src = block.Image.Src
			node.Title = block.Image.Title
		case doctree.BlockParagraph, doctree.BlockQuote, doctree.BlockDivider:
		}

		nodes = append(nodes, node)
	}
	return nodes
}

func buildItems(items []doctree.ListItem) []ItemNode {
	if len(items) == 0 {
		return nil
	}
	nodes := make([]ItemNode, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, ItemNode{
			Marker:   item.Marker,
			Indent:   item.Indent,
			Text:     item.Text,
			Spans:    buildSpans(item.Spans),
			Children: buildItems(item.Children),
		})
	}
	return nodes
}

func buildCells(row doctree.TableRow) [][]SpanNode {
	cells := make([][]SpanNode, 0, len(row.Cells))
	for _, cell := range row.Cells {
		spans := buildSpans(cell)
		if spans == nil {
			spans = []SpanNode{}
		}
		cells = append(cells, spans)
	}
	return cells
}

func buildSpans(spans []doctree.Span) []SpanNode {
	if len(spans) == 0 {
		return nil
	}
	nodes := make([]SpanNode, 0, len(spans))
	for _, span := range spans {
		node := SpanNode{Text: span.Text}
		if span.Style != doctree.StyleNone {
			node.Style = span.Style.Names()
		}
		if span.Extra != nil {
			node.URL = span.Extra[doctree.ExtraURL]
			node.Alt = span.Extra[doctree.ExtraAlt]
			node.Title = span.Extra[doctree.ExtraTitle]
		}
		nodes = append(nodes, node)
	}
	return nodes
}
