package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdtree/pkg/runner"
)

// PlainReporter writes the plain text of each document.
// With more than one input, each document is preceded by a "==> path <==" line.
type PlainReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewPlainReporter creates a new plain text reporter.
func NewPlainReporter(opts Options) *PlainReporter {
	return &PlainReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *PlainReporter) Report(ctx context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return nil
	}

	multi := len(result.Files) > 1
	for i, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if file.Document == nil {
			continue
		}
		if multi {
			if i > 0 {
				r.bw.WriteByte('\n')
			}
			fmt.Fprintf(r.bw, "==> %s <==\n", DisplayPath(file.Path, r.opts.WorkingDir))
		}
		text := file.Document.PlainText()
		r.bw.WriteString(text)
		if text != "" && text[len(text)-1] != '\n' {
			r.bw.WriteByte('\n')
		}
	}
	return nil
}
