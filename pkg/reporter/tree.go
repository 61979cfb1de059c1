package reporter

import (
	"bufio"
	"context"

	"github.com/yaklabco/mdtree/internal/ui/pretty"
	"github.com/yaklabco/mdtree/pkg/runner"
)

// TreeReporter renders each document as an outline of its blocks.
type TreeReporter struct {
	opts   Options
	bw     *bufio.Writer
	styles *pretty.Styles
	tree   *pretty.TreeFormatter
}

// NewTreeReporter creates a tree reporter. Color and width are resolved
// against opts.Writer.
func NewTreeReporter(opts Options) *TreeReporter {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))

	width := opts.Width
	if width <= 0 {
		width = pretty.TerminalWidth(opts.Writer)
	}

	return &TreeReporter{
		opts:   opts,
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
		styles: styles,
		tree:   pretty.NewTreeFormatter(styles, width),
	}
}

// Report implements Reporter.
func (r *TreeReporter) Report(ctx context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return nil
	}

	for i, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			r.bw.WriteByte('\n')
		}

		path := DisplayPath(file.Path, r.opts.WorkingDir)
		if file.Error != nil {
			r.bw.WriteString(r.styles.FilePath.Render(path))
			r.bw.WriteString(": ")
			r.bw.WriteString(r.styles.Error.Render(file.Error.Error()))
			r.bw.WriteByte('\n')
			continue
		}

		languages := make(map[int]string, len(file.Languages))
		for _, ann := range file.Languages {
			languages[ann.Block] = ann.Language
		}
		r.bw.WriteString(r.tree.FormatDocument(path, file.Document, languages))
	}

	if r.opts.ShowSummary && len(result.Files) > 0 {
		r.bw.WriteByte('\n')
		r.bw.WriteString(r.styles.FormatSummaryOneLine(result.Stats, result.Duration))
	}
	return nil
}
