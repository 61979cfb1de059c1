package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtree/internal/configloader"
	"github.com/yaklabco/mdtree/internal/logging"
	"github.com/yaklabco/mdtree/pkg/config"
	"github.com/yaklabco/mdtree/pkg/runner"
)

// loadConfig resolves the effective configuration for a command. cliCfg
// carries only the flags the user set explicitly.
func loadConfig(cmd *cobra.Command, globals *globalFlags, cliCfg *config.Config) (*config.Config, string, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if cmd.Flags().Changed("color") {
		cliCfg.Color = config.ColorMode(globals.color)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: globals.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", fmt.Errorf("load configuration: %w", err)
	}

	cfg := loadResult.Config
	if !globals.debug {
		logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	logger.Debug("configuration loaded",
		logging.FieldConfig, loadResult.LoadedFrom,
		logging.FieldFormat, cfg.Format,
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldMaxBytes, cfg.MaxInputBytes,
	)

	return cfg, workDir, nil
}

// readsStdin reports whether args name standard input alone.
func readsStdin(args []string) bool {
	return len(args) == 1 && args[0] == runner.StdinPath
}

// runInputs parses stdin or the discovered files, logging inputs that failed.
func runInputs(cmd *cobra.Command, args []string, opts runner.Options) (*runner.Result, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	r := runner.New(nil)

	var (
		result *runner.Result
		err    error
	)
	if readsStdin(args) {
		result, err = r.RunReader(ctx, runner.StdinPath, cmd.InOrStdin(), opts)
	} else {
		for _, arg := range args {
			if arg == runner.StdinPath {
				return nil, fmt.Errorf("%w: %q cannot be combined with other paths", ErrInvalidUsage, runner.StdinPath)
			}
		}
		result, err = r.Run(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	if len(result.Files) == 0 {
		logger.Warn("no Markdown files found", logging.FieldPaths, opts.Paths)
	}
	for _, file := range result.Files {
		if file.Error != nil {
			logger.Error("parse failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
		}
	}

	return result, nil
}
