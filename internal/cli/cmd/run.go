package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"ytpick/internal/catalog"
	"ytpick/internal/config"
	"ytpick/internal/dirs"
	"ytpick/internal/downloader"
	"ytpick/internal/flow"
	"ytpick/internal/model"
	"ytpick/internal/pipeline"
	"ytpick/internal/progress"
	"ytpick/internal/prompt"
	"ytpick/internal/ui"
	"ytpick/internal/util/deps"
)

type runMode struct {
	DryRunOnly bool
}

// assembleRunInputs resolves the URL, passthrough arguments and options with
// precedence flag > env > config file > default.
func assembleRunInputs(cmd *cobra.Command, args []string) (string, model.CLIOptions, error) {
	positional, extras := args, []string(nil)
	if d := cmd.ArgsLenAtDash(); d >= 0 {
		positional, extras = args[:d], args[d:]
	}
	if len(positional) != 1 || strings.TrimSpace(positional[0]) == "" {
		return "", model.CLIOptions{}, errors.New("usage: ytpick [flags] <url> [-- yt-dlp args...]")
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	opts := model.CLIOptions{
		UseDirs:         viper.GetBool(config.KeyDirs),
		Quiet:           viper.GetBool(config.KeyQuiet),
		Verbose:         viper.GetBool(config.KeyVerbose),
		DryRun:          dryRun,
		DLBinary:        viper.GetString(config.KeyDLBinary),
		Extras:          extras,
		ThumbnailHelper: viper.GetString(config.KeyThumbnailHelper),
	}

	if raw := viper.GetString(config.KeyPreset); raw != "" {
		p, err := model.ParsePreset(raw)
		if err != nil {
			return "", model.CLIOptions{}, err
		}
		opts.Preset = &p
	}
	return positional[0], opts, nil
}

func runExecute(cmd *cobra.Command, args []string, mode runMode) error {
	url, opts, err := assembleRunInputs(cmd, args)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	if mode.DryRunOnly {
		opts.DryRun = true
	}
	logger := newLogger(opts.Verbose)
	reporter := ui.NewConsoleReporter(os.Stderr, isTerminal(os.Stderr), opts.Verbose)

	found, err := checkDeps(opts, reporter, logger)
	if err != nil {
		return err
	}

	var p prompt.Prompter = ui.NewPrompter(cmd.Context())
	if !isInteractive() {
		logger.Warn("not a terminal; accepting prompt defaults")
		p = prompt.Defaults{}
	}

	tempBase, _ := dirs.TempBaseDir()
	svc := pipeline.NewService(
		pipeline.WithDownloaderPath(found.downloader),
		pipeline.WithCLIOptions(opts),
		pipeline.WithPrompter(p),
		pipeline.WithReporter(reporter),
		pipeline.WithLogger(logger),
		pipeline.WithTempBase(tempBase),
		pipeline.WithThumbnailHelper(found.thumbHelper),
	)

	res, err := svc.Run(cmd.Context(), url)
	if err != nil {
		return exitFor(err)
	}
	if res.Planned {
		fmt.Fprintln(cmd.OutOrStdout(), res.Command)
	}
	return nil
}

type foundDeps struct {
	downloader  string
	thumbHelper bool
}

// checkDeps locates the external tools a run needs. Only yt-dlp is required.
func checkDeps(opts model.CLIOptions, reporter progress.Reporter, logger *slog.Logger) (foundDeps, error) {
	reporter.Update(progress.Update{Stage: progress.StageDeps, Percent: -1, Message: "Checking dependencies"})

	path, err := deps.FindDownloader(opts.DLBinary)
	if err != nil {
		return foundDeps{}, &ExitError{Code: ExitMissingDep, Err: err}
	}
	if _, ferr := deps.FindFFmpeg(); ferr != nil {
		logger.Warn("ffmpeg not found; merging and embedding will fail", "err", ferr)
	}
	found := foundDeps{
		downloader:  path,
		thumbHelper: deps.HasThumbnailHelper(opts.ThumbnailHelper),
	}
	logger.Debug("dependencies",
		"yt-dlp", found.downloader,
		"thumbnail_helper", opts.ThumbnailHelper,
		"thumbnail_helper_found", found.thumbHelper,
	)
	return found, nil
}

// exitFor maps pipeline errors to exit codes. A user abort is a clean exit.
func exitFor(err error) error {
	var schemaErr *catalog.SchemaError
	switch {
	case err == nil, errors.Is(err, flow.ErrAborted):
		return nil
	case errors.Is(err, downloader.ErrProbe):
		return &ExitError{Code: ExitProbeError, Err: err}
	case errors.As(err, &schemaErr), errors.Is(err, catalog.ErrEmptyCatalog):
		return &ExitError{Code: ExitSchemaError, Err: err}
	case errors.Is(err, downloader.ErrDownload):
		return &ExitError{Code: ExitDownloadError, Err: err}
	default:
		return &ExitError{Code: ExitCLIError, Err: err}
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// isInteractive reports whether prompts can be shown.
func isInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}
