package downloader

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"ytpick/internal/progress"
)

// Postprocessor tags yt-dlp prints once the transfer is over.
var postprocessors = []string{
	"[Merger]",
	"[ExtractAudio]",
	"[EmbedThumbnail]",
	"[EmbedSubtitle]",
	"[FFmpegMetadata]",
	"[Metadata]",
	"[SponsorBlock]",
	"[ModifyChapters]",
	"[FixupM3u8]",
	"[FixupM4a]",
}

// ParseProgress parses yt-dlp progress output lines.
// Returns a progress.Update if the line is a progress or postprocessing
// line, and ok=true.
func ParseProgress(line, jobID string) (u progress.Update, ok bool) {
	// yt-dlp outputs lines like: [download]  45.2% of 10.00MiB at  1.50MiB/s ETA 00:04
	line = strings.TrimSpace(line)
	for _, tag := range postprocessors {
		if strings.HasPrefix(line, tag) {
			return progress.Update{
				JobID:   jobID,
				Stage:   progress.StagePostProcessing,
				Percent: -1,
				Message: strings.Trim(tag, "[]"),
			}, true
		}
	}
	if !strings.HasPrefix(line, "[download]") {
		return progress.Update{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(line, "[download]"))

	// Parse percent; lines without one (Destination, resume notes) are not progress
	idx := strings.Index(rest, "%")
	if idx == -1 {
		return progress.Update{}, false
	}
	percent, err := strconv.ParseFloat(strings.TrimSpace(rest[:idx]), 64)
	if err != nil {
		return progress.Update{}, false
	}

	// Parse total (e.g., "of ~10.00MiB")
	var total *string
	if i := strings.Index(rest, " of "); i != -1 {
		if f := strings.Fields(rest[i+4:]); len(f) > 0 {
			s := f[0]
			if s == "~" && len(f) > 1 {
				s += f[1]
			}
			total = &s
		}
	}

	// Parse speed (e.g., "at 1.50MiB/s")
	var speed *string
	if i := strings.Index(rest, " at "); i != -1 {
		if f := strings.Fields(rest[i+4:]); len(f) > 0 && f[0] != "Unknown" {
			s := f[0]
			speed = &s
		}
	}

	// Parse ETA (e.g., "ETA 00:04")
	var eta *time.Duration
	if i := strings.Index(rest, "ETA "); i != -1 {
		if f := strings.Fields(rest[i+4:]); len(f) > 0 {
			if d, err := parseETA(f[0]); err == nil {
				eta = &d
			}
		}
	}

	return progress.Update{
		JobID:   jobID,
		Stage:   progress.StageDownloading,
		Percent: percent,
		Total:   total,
		Speed:   speed,
		ETA:     eta,
		Message: "Downloading",
	}, true
}

// ParseDestination extracts the output path from the lines yt-dlp prints
// when it picks, merges into or reuses a file.
func ParseDestination(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, prefix := range []string{
		"[download] Destination: ",
		"[ExtractAudio] Destination: ",
	} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix), true
		}
	}
	if rest, ok := strings.CutPrefix(line, "[Merger] Merging formats into "); ok {
		return strings.Trim(rest, `"`), true
	}
	if rest, ok := strings.CutPrefix(line, "[download] "); ok {
		if p, ok := strings.CutSuffix(rest, " has already been downloaded"); ok {
			return p, true
		}
	}
	return "", false
}

// parseETA parses duration strings like "00:04", "01:23:45", etc.
func parseETA(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, errors.New("too many fields in ETA")
	}
	var d time.Duration
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, err
		}
		d = d*60 + time.Duration(n)
	}
	return d * time.Second, nil
}
