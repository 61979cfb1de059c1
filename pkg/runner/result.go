package runner

import (
	"time"

	"github.com/yaklabco/mdtree/pkg/doctree"
	"github.com/yaklabco/mdtree/pkg/fsutil"
	"github.com/yaklabco/mdtree/pkg/langdetect"
)

// FileOutcome is the parse result for one input.
type FileOutcome struct {
	// Path is the file path that was processed ("-" for stdin).
	Path string

	// Document is the parsed tree. Nil if Error is set.
	Document *doctree.Document

	// Info describes the input as it was read.
	Info *fsutil.FileInfo

	// Languages annotates code blocks when language detection is enabled.
	Languages []langdetect.Annotation

	// Duration is the time spent reading and parsing.
	Duration time.Duration

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of inputs found during discovery.
	FilesDiscovered int

	// FilesParsed is the number of inputs parsed successfully.
	FilesParsed int

	// FilesFailed is the number of inputs that could not be read.
	FilesFailed int

	// Bytes is the total size of parsed inputs.
	Bytes int64

	// Blocks is the total number of top-level blocks.
	Blocks int

	// BlocksByKind maps block kind names to counts.
	BlocksByKind map[string]int

	// Spans is the total number of inline spans, including list items and table cells.
	Spans int

	// CodeLanguages maps annotated code languages to counts.
	CodeLanguages map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each input, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Duration is the wall time of the run.
	Duration time.Duration
}

// HasFailures reports whether any input failed to parse.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0
}

// Documents returns the parsed documents in result order, skipping failures.
func (r *Result) Documents() []*doctree.Document {
	if r == nil {
		return nil
	}
	docs := make([]*doctree.Document, 0, len(r.Files))
	for _, f := range r.Files {
		if f.Document != nil {
			docs = append(docs, f.Document)
		}
	}
	return docs
}

func newStats() Stats {
	return Stats{
		BlocksByKind:  make(map[string]int),
		CodeLanguages: make(map[string]int),
	}
}

// accumulate appends outcome and folds it into the stats.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil || outcome.Document == nil {
		r.Stats.FilesFailed++
		return
	}

	r.Stats.FilesParsed++
	if outcome.Info != nil {
		r.Stats.Bytes += outcome.Info.Size
	}

	doc := outcome.Document
	r.Stats.Blocks += doc.Len()
	for kind, n := range doctree.CountByKind(doc) {
		r.Stats.BlocksByKind[kind.String()] += n
	}
	r.Stats.Spans += doctree.CountSpans(doc)

	for _, ann := range outcome.Languages {
		r.Stats.CodeLanguages[ann.Language]++
	}
}
