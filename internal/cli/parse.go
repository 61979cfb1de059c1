package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtree/internal/logging"
	"github.com/yaklabco/mdtree/pkg/config"
	"github.com/yaklabco/mdtree/pkg/fsutil"
	"github.com/yaklabco/mdtree/pkg/reporter"
	"github.com/yaklabco/mdtree/pkg/runner"
)

type parseFlags struct {
	format          string
	output          string
	jobs            int
	ignore          []string
	extensions      []string
	detectLanguages bool
	promoteImages   bool
	compact         bool
	maxInputBytes   int64
	skipVendored    bool
	followSymlinks  bool
	noSummary       bool
	width           int
}

func newParseCommand(globals *globalFlags) *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [paths...]",
		Short: "Parse Markdown files and print their document trees",
		Long: `Parse Markdown files and print their document trees.

By default, parses all .md and .markdown files in the current directory and
its subdirectories. Specify files or directories to parse them instead, or
"-" to read a single document from stdin.`,
		Example: `  mdtree parse                         Parse the current directory
  mdtree parse README.md               Parse one file
  cat notes.md | mdtree parse -        Parse stdin
  mdtree parse docs --format json      Print trees as JSON
  mdtree parse --detect-languages      Annotate untagged code blocks`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, globals, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", string(config.FormatTree),
		"output format: tree, json, yaml, plain, summary")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil, "file extensions to parse (default .md,.markdown)")
	cmd.Flags().BoolVar(&flags.detectLanguages, "detect-languages", false, "annotate code blocks with their language")
	cmd.Flags().BoolVar(&flags.promoteImages, "promote-images", false, "turn image-only paragraphs into image blocks")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "omit indentation and block text in json and yaml")
	cmd.Flags().Int64Var(&flags.maxInputBytes, "max-input-bytes", config.DefaultMaxInputBytes,
		"reject inputs larger than this many bytes (0 = no limit)")
	cmd.Flags().BoolVar(&flags.skipVendored, "skip-vendored", false, "skip vendored directories such as node_modules")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links to directories")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary line after tree output")
	cmd.Flags().IntVar(&flags.width, "width", 0, "truncate tree lines to this many columns (0 = terminal width)")

	return cmd
}

// cliConfig builds a Config holding only the parse flags that were set.
func (f *parseFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{
		Jobs:    f.jobs,
		Compact: f.compact,
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("extensions") {
		cfg.Extensions = f.extensions
	}
	if changed("detect-languages") {
		cfg.DetectLanguages = config.Bool(f.detectLanguages)
	}
	if changed("promote-images") {
		cfg.PromoteImages = config.Bool(f.promoteImages)
	}
	if changed("max-input-bytes") {
		cfg.MaxInputBytes = f.maxInputBytes
	}
	return cfg
}

func runParse(cmd *cobra.Command, args []string, globals *globalFlags, flags *parseFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if cmd.Flags().Changed("format") && !config.OutputFormat(flags.format).IsValid() {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidUsage, flags.format)
	}

	cfg, workDir, err := loadConfig(cmd, globals, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	opts := runner.OptionsFromConfig(cfg, args)
	opts.WorkingDir = workDir
	opts.SkipVendored = flags.skipVendored
	opts.FollowSymlinks = flags.followSymlinks

	logger.Debug("starting parse run",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
	)

	result, err := runInputs(cmd, args, opts)
	if err != nil {
		return fmt.Errorf("parse run failed: %w", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	var buf bytes.Buffer
	if flags.output != "" {
		out = &buf
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      out,
		Format:      format,
		Color:       cfg.Color,
		Compact:     cfg.Compact,
		ShowSummary: !flags.noSummary,
		Width:       flags.width,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if flags.output != "" {
		written, err := fsutil.WriteAtomicIfChanged(ctx, flags.output, buf.Bytes(), fsutil.DefaultFileMode)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Debug("report written", logging.FieldOutput, flags.output, "changed", written)
	}

	logger.Debug("parse complete",
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
		logging.FieldBlocks, result.Stats.Blocks,
		logging.FieldSpans, result.Stats.Spans,
		logging.FieldDuration, result.Duration,
	)

	if result.HasFailures() {
		return ErrParseFailures
	}
	return nil
}
