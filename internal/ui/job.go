package ui

import (
	"io"
	"sync"

	bubblesprogress "github.com/charmbracelet/bubbles/progress"

	"ytpick/internal/progress"
)

// ConsoleReporter prints pipeline progress line by line. On a terminal the
// download bar redraws in place.
type ConsoleReporter struct {
	mu      sync.Mutex
	out     io.Writer
	live    bool
	verbose bool
	styles  Styles

	stage   progress.Stage
	status  string
	percent float64 // -1 means unknown
	bar     bubblesprogress.Model
	drawn   bool // a live line is on screen
}

// NewConsoleReporter writes to out. live enables in-place redraws and
// should only be set for terminals.
func NewConsoleReporter(out io.Writer, live, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{
		out:     out,
		live:    live,
		verbose: verbose,
		styles:  defaultStyles(),
		percent: -1,
		bar: bubblesprogress.New(
			bubblesprogress.WithDefaultGradient(),
			bubblesprogress.WithWidth(40),
		),
	}
}
