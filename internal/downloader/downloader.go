// Package downloader runs yt-dlp: once to write the info-json sidecar and
// once to download the selected formats from it.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ytpick/internal/command"
	"ytpick/internal/progress"
	"ytpick/internal/util"
)

var (
	// ErrProbe wraps a failed metadata probe.
	ErrProbe = errors.New("probe failed")
	// ErrDownload wraps a failed download.
	ErrDownload = errors.New("download failed")
)

// Options controls downloader behavior.
type Options struct {
	DownloaderPath string // Path to yt-dlp
	Quiet          bool   // Pass --quiet to yt-dlp
	Verbose        bool   // Echo commands before running them
	Extras         []string

	Runner   util.CmdRunner
	Reporter progress.Reporter
	JobID    string
}

func (o Options) runner() util.CmdRunner {
	if o.Runner == nil {
		return util.NewDefaultRunner()
	}
	return o.Runner
}

// ProbeArgs builds the argv that writes the sidecar for url into workdir
// without downloading media.
func ProbeArgs(url, workdir string, quiet bool, extras []string) []string {
	var args []string
	if quiet {
		args = append(args, "--quiet")
	}
	args = append(args,
		"--write-info-json",
		"--skip-download",
		"--no-playlist",
		"-P", workdir,
		url,
	)
	return append(args, extras...)
}

// Probe asks yt-dlp for the metadata of url and returns the sidecar path.
func Probe(ctx context.Context, url, workdir string, opts Options) (string, error) {
	if opts.DownloaderPath == "" {
		return "", errors.New("downloader path is required")
	}
	res, err := opts.runner().Run(ctx, util.CmdSpec{
		Path:       opts.DownloaderPath,
		Args:       ProbeArgs(url, workdir, opts.Quiet, opts.Extras),
		Echo:       opts.Verbose,
		StderrLine: opts.logLine(progress.StreamStderr),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v%s", ErrProbe, err, stderrTail(res.Stderr))
	}
	sidecar, err := SelectSidecarFile(workdir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProbe, err)
	}
	return sidecar, nil
}

// Request is one download invocation.
type Request struct {
	Sidecar   string       // info-json written by Probe
	URL       string       // used instead of the sidecar when Sidecar is empty
	OutputDir string       // -P target; empty keeps yt-dlp's default
	Spec      command.Spec // selector, output template and option flags
}

// DownloadArgs builds the download argv. Extras go last so they can
// override anything before them. Without a sidecar the URL is passed and
// yt-dlp extracts again.
func DownloadArgs(req Request, quiet bool, extras []string) []string {
	var args []string
	if quiet {
		args = append(args, "--quiet")
	}
	if req.OutputDir != "" {
		args = append(args, "-P", req.OutputDir)
	}
	if req.Sidecar != "" {
		args = append(args, "--load-info-json", req.Sidecar)
	}
	args = append(args, "--no-playlist")
	args = append(args, req.Spec.Args()...)
	if req.Sidecar == "" && req.URL != "" {
		args = append(args, req.URL)
	}
	return append(args, extras...)
}

// Download runs yt-dlp for req and returns the final output path when
// yt-dlp reported one.
func Download(ctx context.Context, req Request, opts Options) (string, error) {
	if opts.DownloaderPath == "" {
		return "", errors.New("downloader path is required")
	}
	var output string
	onLine := func(line string) {
		if dest, ok := ParseDestination(line); ok {
			output = dest
		}
		if opts.Reporter == nil {
			return
		}
		if u, ok := ParseProgress(line, opts.JobID); ok {
			opts.Reporter.Update(u)
			return
		}
		opts.Reporter.Log(progress.Log{JobID: opts.JobID, Stream: progress.StreamStdout, Line: line})
	}
	res, err := opts.runner().Run(ctx, util.CmdSpec{
		Path:       opts.DownloaderPath,
		Args:       DownloadArgs(req, opts.Quiet, opts.Extras),
		Echo:       opts.Verbose,
		Stream:     opts.Reporter == nil,
		StdoutLine: onLine,
		StderrLine: opts.logLine(progress.StreamStderr),
	})
	if err != nil {
		return output, fmt.Errorf("%w: %v%s", ErrDownload, err, stderrTail(res.Stderr))
	}
	return output, nil
}

func (o Options) logLine(stream progress.LogStream) func(string) {
	if o.Reporter == nil {
		return nil
	}
	return func(line string) {
		o.Reporter.Log(progress.Log{JobID: o.JobID, Stream: stream, Line: line})
	}
}

// stderrTail returns the last non-empty stderr line, formatted for
// appending to an error.
func stderrTail(stderr []byte) string {
	lines := strings.Split(strings.TrimSpace(string(stderr)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return ": " + l
		}
	}
	return ""
}
