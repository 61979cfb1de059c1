package runner

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/mdtree/internal/logging"
	"github.com/yaklabco/mdtree/pkg/config"
	"github.com/yaklabco/mdtree/pkg/doctree"
	"github.com/yaklabco/mdtree/pkg/fsutil"
	"github.com/yaklabco/mdtree/pkg/langdetect"
	"github.com/yaklabco/mdtree/pkg/parser"
)

// StdinPath names standard input in paths and outcomes.
const StdinPath = "-"

// ParseFunc turns Markdown source into a document tree.
type ParseFunc func(input string) *doctree.Document

// Runner reads and parses Markdown inputs.
type Runner struct {
	// Parse is the parser applied to every input.
	Parse ParseFunc
}

// New creates a Runner. A nil parse selects parser.Parse.
func New(parse ParseFunc) *Runner {
	if parse == nil {
		parse = parser.Parse
	}
	return &Runner{Parse: parse}
}

// Run discovers files under opts.Paths and parses them concurrently.
// Outcomes are ordered by path regardless of completion order. A file that
// cannot be read is recorded in its FileOutcome and does not stop the run;
// only cancellation of ctx does.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))
	logger.Debug("parsing", logging.FieldJobs, jobs)

	// Each worker owns one slot, so no locking is needed.
	outcomes := make([]FileOutcome, len(files))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		if gctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.parseFile(gctx, path, opts)
			return nil
		})
	}

	waitErr := group.Wait()

	for _, outcome := range outcomes {
		if outcome.Path == "" {
			continue
		}
		if outcome.Error != nil {
			logger.Warn("parse failed", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Error)
		}
		result.accumulate(outcome)
	}
	result.Duration = time.Since(start)

	if waitErr != nil {
		return result, fmt.Errorf("run cancelled: %w", waitErr)
	}
	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	logger.Debug("run complete",
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
		logging.FieldDuration, result.Duration,
	)

	return result, nil
}

// RunReader parses a single input read from src, typically stdin.
func (r *Runner) RunReader(ctx context.Context, name string, src io.Reader, opts Options) (*Result, error) {
	start := time.Now()

	content, info, err := fsutil.ReadAll(ctx, name, src, opts.maxInputBytes())

	outcome := FileOutcome{Path: name, Info: info, Error: err}
	if err == nil {
		r.finish(&outcome, content, opts.Config)
	}
	outcome.Duration = time.Since(start)

	result := &Result{Stats: newStats()}
	result.Stats.FilesDiscovered = 1
	result.accumulate(outcome)
	result.Duration = outcome.Duration

	return result, nil
}

func (r *Runner) parseFile(ctx context.Context, path string, opts Options) FileOutcome {
	ctx = logging.WithFields(ctx, logging.FieldPath, path)
	start := time.Now()
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path, opts.maxInputBytes())
	if err != nil {
		outcome.Error = err
		outcome.Duration = time.Since(start)
		return outcome
	}

	outcome.Info = info
	r.finish(&outcome, content, opts.Config)
	outcome.Duration = time.Since(start)

	logging.FromContext(ctx).Debug("parsed",
		logging.FieldBlocks, outcome.Document.Len(),
		logging.FieldDuration, outcome.Duration,
	)
	return outcome
}

// finish parses content and applies the configured post-passes.
func (r *Runner) finish(outcome *FileOutcome, content []byte, cfg *config.Config) {
	doc := r.Parse(string(content))
	if cfg.ShouldPromoteImages() {
		doc = parser.PromoteImages(doc)
	}
	if cfg.ShouldDetectLanguages() {
		outcome.Languages = langdetect.Annotate(doc)
	}
	outcome.Document = doc
}
