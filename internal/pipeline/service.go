// Package pipeline runs one pick: probe, parse, select, assemble, download.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"ytpick/internal/catalog"
	"ytpick/internal/command"
	"ytpick/internal/dirs"
	"ytpick/internal/downloader"
	"ytpick/internal/flow"
	"ytpick/internal/model"
	"ytpick/internal/progress"
	"ytpick/internal/prompt"
	"ytpick/internal/util"
)

// Service orchestrates the probe → select → download workflow.
type Service struct {
	dlPath      string
	opts        model.CLIOptions
	runner      util.CmdRunner
	reporter    progress.Reporter
	prompter    prompt.Prompter
	logger      *slog.Logger
	tempBase    string
	thumbHelper bool
	outputDir   func(model.Preset) (string, error)
}

// Option configures a Service.
type Option func(*Service)

// WithDownloaderPath sets the yt-dlp binary path.
func WithDownloaderPath(p string) Option {
	return func(s *Service) {
		s.dlPath = p
	}
}

// WithCLIOptions sets the options parsed from flags, env and config.
func WithCLIOptions(o model.CLIOptions) Option {
	return func(s *Service) {
		s.opts = o
	}
}

// WithRunner injects a custom command runner (useful for testing).
func WithRunner(r util.CmdRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}

// WithReporter attaches a progress reporter.
func WithReporter(rp progress.Reporter) Option {
	return func(s *Service) {
		s.reporter = rp
	}
}

// WithPrompter sets the prompt renderer for the selection flow.
func WithPrompter(p prompt.Prompter) Option {
	return func(s *Service) {
		s.prompter = p
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithTempBase sets where probe workdirs are created.
func WithTempBase(dir string) Option {
	return func(s *Service) {
		s.tempBase = dir
	}
}

// WithThumbnailHelper records whether the thumbnail helper is installed.
func WithThumbnailHelper(present bool) Option {
	return func(s *Service) {
		s.thumbHelper = present
	}
}

// WithOutputDirResolver overrides how --dirs picks the output directory.
func WithOutputDirResolver(fn func(model.Preset) (string, error)) Option {
	return func(s *Service) {
		s.outputDir = fn
	}
}

// NewService constructs a new Service with the provided options.
// It applies sensible defaults for missing components.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, o := range opts {
		o(s)
	}
	if s.runner == nil {
		s.runner = util.NewDefaultRunner()
	}
	if s.reporter == nil {
		s.reporter = progress.Discard{}
	}
	if s.prompter == nil {
		s.prompter = prompt.Defaults{}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.outputDir == nil {
		s.outputDir = dirs.OutputDirFor
	}
	return s
}

// Result is the outcome of Run.
type Result struct {
	URL        string
	Title      string
	Selection  model.SelectionResult
	Spec       command.Spec
	Args       []string // full download argv, binary excluded
	Command    string   // shell-quoted download command
	OutputDir  string
	OutputPath string // as reported by yt-dlp; may be empty
	Planned    bool   // dry run: nothing was downloaded
}

// Run executes the full pipeline for a single URL. The probe workdir is
// removed on every return path, cancellation included.
// It never prints; when a Reporter is present, it emits progress and a
// final Result on success.
func (s *Service) Run(ctx context.Context, url string) (Result, error) {
	res := Result{URL: url}
	if s.dlPath == "" {
		return res, errors.New("downloader path is required")
	}

	wd, err := util.MakeTempWorkdir(s.tempBase, "probe")
	if err != nil {
		return res, err
	}
	defer func() {
		path := wd.Path
		if rerr := wd.Release(); rerr != nil {
			s.logger.Warn("remove workdir", "dir", path, "err", rerr)
			return
		}
		s.logger.Debug("removed workdir", "dir", path)
	}()
	s.logger.Debug("created workdir", "dir", wd.Path)

	jobID := url
	dlOpts := downloader.Options{
		DownloaderPath: s.dlPath,
		Quiet:          s.opts.Quiet,
		Verbose:        s.opts.Verbose,
		Extras:         s.opts.Extras,
		Runner:         s.runner,
		Reporter:       s.reporter,
		JobID:          jobID,
	}

	// Step 1: probe
	s.update(jobID, progress.StageProbe, "Fetching metadata")
	sidecar, err := downloader.Probe(ctx, url, wd.Path, dlOpts)
	if err != nil {
		s.update(jobID, progress.StageError, "Probe failed")
		return res, err
	}
	s.logger.Debug("probe finished", "sidecar", sidecar)

	// Step 2: parse
	desc, err := catalog.Load(sidecar)
	if err != nil {
		s.update(jobID, progress.StageError, "Unreadable metadata")
		return res, err
	}
	res.Title = desc.Title
	s.logger.Debug("catalog loaded",
		"id", desc.ID,
		"formats", len(desc.Formats),
		"music", catalog.IsMusicLike(desc),
		"extractor", desc.ExtractorKey,
	)

	// Step 3: select
	s.update(jobID, progress.StageSelect, desc.Title)
	flowOpts := []flow.Option{
		flow.WithPrompter(s.prompter),
		flow.WithThumbnailHelper(s.thumbHelper),
	}
	if s.opts.Preset != nil {
		flowOpts = append(flowOpts, flow.WithPresetOverride(*s.opts.Preset))
	}
	sel, err := flow.New(desc, flowOpts...).Run()
	if err != nil {
		if errors.Is(err, flow.ErrAborted) {
			s.logger.Debug("selection aborted")
		}
		return res, err
	}
	res.Selection = sel
	s.logger.Debug("selection complete", "preset", sel.Preset, "formats", sel.FormatIDs)

	// Step 4: assemble
	spec, err := command.Assemble(sel)
	if err != nil {
		return res, fmt.Errorf("assemble command: %w", err)
	}
	res.Spec = spec

	if s.opts.UseDirs {
		dir, derr := s.outputDir(sel.Preset)
		if derr != nil {
			return res, fmt.Errorf("resolve output dir: %w", derr)
		}
		res.OutputDir = dir
	}
	req := downloader.Request{Sidecar: sidecar, URL: url, OutputDir: res.OutputDir, Spec: spec}

	if s.opts.DryRun {
		// The sidecar goes away with the workdir, so the printed command
		// names the URL instead.
		planned := req
		planned.Sidecar = ""
		res.Args = downloader.DownloadArgs(planned, s.opts.Quiet, s.opts.Extras)
		res.Command = util.CommandLine(s.dlPath, res.Args)
		res.Planned = true
		s.reporter.Result(progress.Result{JobID: jobID, Command: res.Command})
		return res, nil
	}

	// Step 5: download
	if res.OutputDir != "" {
		if err := util.EnsureDir(res.OutputDir); err != nil {
			return res, fmt.Errorf("create output dir: %w", err)
		}
	}
	res.Args = downloader.DownloadArgs(req, s.opts.Quiet, s.opts.Extras)
	res.Command = util.CommandLine(s.dlPath, res.Args)
	s.update(jobID, progress.StageDownloading, "Starting download")
	out, err := downloader.Download(ctx, req, dlOpts)
	if err != nil {
		s.update(jobID, progress.StageError, "Download failed")
		return res, err
	}
	res.OutputPath = out

	s.reporter.Update(progress.Update{
		JobID:   jobID,
		Stage:   progress.StageCompleted,
		Percent: 100,
		Message: "Done",
	})
	s.reporter.Result(progress.Result{JobID: jobID, OutputPath: out})
	return res, nil
}

func (s *Service) update(jobID string, stage progress.Stage, msg string) {
	s.reporter.Update(progress.Update{JobID: jobID, Stage: stage, Percent: -1, Message: msg})
}
