package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtree/internal/logging"
	"github.com/yaklabco/mdtree/internal/ui/pretty"
	"github.com/yaklabco/mdtree/pkg/config"
	"github.com/yaklabco/mdtree/pkg/parser/goldmark"
	"github.com/yaklabco/mdtree/pkg/reporter"
	"github.com/yaklabco/mdtree/pkg/runner"
)

type checkFlags struct {
	flavor       string
	jobs         int
	ignore       []string
	skipVendored bool
}

func newCheckCommand(globals *globalFlags) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Compare block structure against a reference parser",
		Long: `Compare the block structure of Markdown files against a CommonMark or GFM
reference parser.

Each top-level block is paired with the reference block starting on the same
line. A line where the kinds or heading levels disagree, or where only one side
starts a block, is reported as a divergence. Blank-line spacers are ignored.
The command exits with status 1 when any divergence is found.`,
		Example: `  mdtree check                  Check the current directory
  mdtree check --flavor gfm     Compare against GitHub Flavored Markdown`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, globals, flags)
		},
	}

	cmd.Flags().StringVar(&flags.flavor, "flavor", string(config.FlavorCommonMark), "reference flavor: commonmark, gfm")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.skipVendored, "skip-vendored", false, "skip vendored directories such as node_modules")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, globals *globalFlags, flags *checkFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cliCfg := &config.Config{Jobs: flags.jobs}
	if cmd.Flags().Changed("flavor") {
		if !config.Flavor(flags.flavor).IsValid() {
			return fmt.Errorf("%w: unknown flavor %q", ErrInvalidUsage, flags.flavor)
		}
		cliCfg.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}

	cfg, workDir, err := loadConfig(cmd, globals, cliCfg)
	if err != nil {
		return err
	}

	opts := runner.OptionsFromConfig(cfg, args)
	opts.WorkingDir = workDir
	opts.SkipVendored = flags.skipVendored

	result, err := runInputs(cmd, args, opts)
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out))
	ref := goldmark.New(string(cfg.Flavor))

	var divergent, total int
	for _, file := range result.Files {
		if file.Document == nil {
			continue
		}

		divergences, err := ref.Check(ctx, file.Document)
		if err != nil {
			return fmt.Errorf("check %s: %w", file.Path, err)
		}
		if len(divergences) == 0 {
			continue
		}

		divergent++
		total += len(divergences)
		path := reporter.DisplayPath(file.Path, workDir)
		for _, d := range divergences {
			fmt.Fprint(out, styles.FormatDivergence(path, d.Line, d.Ours, d.Reference))
		}
	}

	fmt.Fprint(out, styles.FormatCheckSummary(result.Stats.FilesParsed, divergent, total))

	logger.Debug("check complete",
		logging.FieldFlavor, ref.Flavor(),
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldDivergences, total,
	)

	if result.HasFailures() {
		return ErrParseFailures
	}
	if total > 0 {
		return ErrDivergence
	}
	return nil
}
