package progress

import "time"

// Stage identifies a high-level step in the pipeline.
type Stage string

const (
	StageDeps           Stage = "deps"
	StageProbe          Stage = "probe"
	StageSelect         Stage = "select"
	StageDownloading    Stage = "downloading"
	StagePostProcessing Stage = "postprocessing"
	StageCompleted      Stage = "completed"
	StageError          Stage = "error"
)

// LogStream indicates which stream produced a log line.
type LogStream int

const (
	StreamStdout LogStream = iota
	StreamStderr
)

// Update conveys progress or stage changes for a job.
// Percent is 0..100 when known; set to a negative value (e.g., -1) to mean unknown.
type Update struct {
	JobID   string
	Stage   Stage
	Percent float64 // 0..100, or <0 if unknown

	ETA     *time.Duration // optional
	Total   *string        // optional, e.g. "10.00MiB" or "~80.30MiB"
	Speed   *string        // optional, e.g. "2.5MiB/s"
	Message string         // short human-friendly status line
}

// Log is a line of subprocess output associated with a job.
type Log struct {
	JobID  string
	Stream LogStream
	Line   string
}

// Result is emitted once per job when it completes or fails.
type Result struct {
	JobID      string
	OutputPath string
	Command    string // shell-quoted download command; set on dry runs
	Err        error  // nil on success
}

// Reporter is implemented by UI or any observer interested in progress events.
type Reporter interface {
	Update(u Update)
	Log(l Log)
	Result(r Result)
}

// Discard is a Reporter that drops every event.
type Discard struct{}

func (Discard) Update(Update) {}
func (Discard) Log(Log)       {}
func (Discard) Result(Result) {}
