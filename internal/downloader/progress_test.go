package downloader

import (
	"testing"
	"time"

	"ytpick/internal/progress"
)

func TestParseProgress(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		jobID       string
		wantOk      bool
		wantStage   progress.Stage
		wantPercent float64
		wantETA     *time.Duration
		wantTotal   string
		wantSpeed   string
	}{
		{
			name:        "typical download progress",
			line:        "[download]  45.2% of 10.00MiB at  1.50MiB/s ETA 00:04",
			jobID:       "job1",
			wantOk:      true,
			wantStage:   progress.StageDownloading,
			wantPercent: 45.2,
			wantETA:     durationPtr(4 * time.Second),
			wantTotal:   "10.00MiB",
			wantSpeed:   "1.50MiB/s",
		},
		{
			name:        "approximate total without ETA",
			line:        "[download]  25.0% of ~ 5.00MiB at  500.00KiB/s",
			jobID:       "job2",
			wantOk:      true,
			wantStage:   progress.StageDownloading,
			wantPercent: 25.0,
			wantTotal:   "~5.00MiB",
			wantSpeed:   "500.00KiB/s",
		},
		{
			name:        "progress with HH:MM:SS ETA",
			line:        "[download]  10.5% of 100.00MiB at  1.00MiB/s ETA 01:23:45",
			jobID:       "job3",
			wantOk:      true,
			wantStage:   progress.StageDownloading,
			wantPercent: 10.5,
			wantETA:     durationPtr(1*time.Hour + 23*time.Minute + 45*time.Second),
			wantTotal:   "100.00MiB",
			wantSpeed:   "1.00MiB/s",
		},
		{
			name:        "finished line",
			line:        "[download] 100% of    3.27MiB in 00:00:01 at 2.61MiB/s",
			jobID:       "job4",
			wantOk:      true,
			wantStage:   progress.StageDownloading,
			wantPercent: 100,
			wantTotal:   "3.27MiB",
			wantSpeed:   "2.61MiB/s",
		},
		{
			name:        "merger",
			line:        `[Merger] Merging formats into "Song.mkv"`,
			jobID:       "job5",
			wantOk:      true,
			wantStage:   progress.StagePostProcessing,
			wantPercent: -1,
		},
		{
			name:   "destination is not progress",
			line:   "[download] Destination: Song.f137.mp4",
			jobID:  "job6",
			wantOk: false,
		},
		{
			name:   "non-download line",
			line:   "[youtube] dQw4w9WgXcQ: Downloading webpage",
			jobID:  "job7",
			wantOk: false,
		},
		{
			name:   "empty line",
			line:   "",
			jobID:  "job8",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := ParseProgress(tt.line, tt.jobID)

			if ok != tt.wantOk {
				t.Errorf("ParseProgress() ok = %v, want %v", ok, tt.wantOk)
			}

			if !tt.wantOk {
				return
			}

			if u.JobID != tt.jobID {
				t.Errorf("ParseProgress() JobID = %v, want %v", u.JobID, tt.jobID)
			}

			if u.Percent != tt.wantPercent {
				t.Errorf("ParseProgress() Percent = %v, want %v", u.Percent, tt.wantPercent)
			}

			if u.Stage != tt.wantStage {
				t.Errorf("ParseProgress() Stage = %v, want %v", u.Stage, tt.wantStage)
			}

			if tt.wantETA != nil {
				if u.ETA == nil || *u.ETA != *tt.wantETA {
					t.Errorf("ParseProgress() ETA = %v, want %v", ptrDur(u.ETA), *tt.wantETA)
				}
			}

			if got := deref(u.Total); got != tt.wantTotal {
				t.Errorf("ParseProgress() Total = %q, want %q", got, tt.wantTotal)
			}
			if got := deref(u.Speed); got != tt.wantSpeed {
				t.Errorf("ParseProgress() Speed = %q, want %q", got, tt.wantSpeed)
			}
		})
	}
}

func TestParseDestination(t *testing.T) {
	tests := []struct {
		line   string
		want   string
		wantOk bool
	}{
		{"[download] Destination: /music/Song.webm", "/music/Song.webm", true},
		{"[ExtractAudio] Destination: /music/Song.opus", "/music/Song.opus", true},
		{`[Merger] Merging formats into "/video/Song.mkv"`, "/video/Song.mkv", true},
		{"[download] /video/Song.mkv has already been downloaded", "/video/Song.mkv", true},
		{"[download]  45.2% of 10.00MiB", "", false},
		{"[info] Downloading 1 format(s): 137+251", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseDestination(tt.line)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("ParseDestination() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestParseETA(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    time.Duration
		wantErr bool
	}{
		{name: "MM:SS format", s: "04:30", want: 4*time.Minute + 30*time.Second},
		{name: "HH:MM:SS format", s: "01:23:45", want: 1*time.Hour + 23*time.Minute + 45*time.Second},
		{name: "seconds only", s: "45", want: 45 * time.Second},
		{name: "zero seconds", s: "00:00", want: 0},
		{name: "one hour exactly", s: "01:00:00", want: 1 * time.Hour},
		{name: "invalid format", s: "invalid", wantErr: true},
		{name: "invalid seconds", s: "04:xx", wantErr: true},
		{name: "too many colons", s: "1:2:3:4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseETA(tt.s)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseETA(%q) expected error, got nil", tt.s)
				}
				return
			}
			if err != nil {
				t.Errorf("parseETA(%q) unexpected error: %v", tt.s, err)
				return
			}
			if got != tt.want {
				t.Errorf("parseETA(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

// Helper functions
func durationPtr(d time.Duration) *time.Duration {
	return &d
}

func ptrDur(d *time.Duration) string {
	if d == nil {
		return "<nil>"
	}
	return d.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
