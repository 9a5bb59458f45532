package ui

import (
	"fmt"
	"strings"

	"ytpick/internal/progress"
)

func (r *ConsoleReporter) Update(u progress.Update) {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := u.Stage != r.stage
	r.stage = u.Stage
	r.percent = u.Percent
	r.status = u.Message

	if u.Stage == progress.StageDownloading && u.Percent >= 0 {
		if r.live {
			fmt.Fprint(r.out, "\r\x1b[2K"+r.viewProgress(u))
			r.drawn = true
		} else if changed {
			r.println(r.viewStage(u))
		}
		return
	}
	if changed || u.Stage == progress.StagePostProcessing {
		r.println(r.viewStage(u))
	}
}

func (r *ConsoleReporter) Log(l progress.Log) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := strings.TrimRight(l.Line, "\r\n")
	switch {
	case strings.HasPrefix(line, "ERROR"):
		r.println(r.styles.Error.Render(line))
	case strings.HasPrefix(line, "WARNING"):
		r.println(r.styles.Warning.Render(line))
	case r.verbose:
		r.println(r.styles.Faint.Render(line))
	}
}

func (r *ConsoleReporter) Result(res progress.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case res.Err != nil:
		r.println(r.styles.Error.Render("✗ " + res.Err.Error()))
	case res.Command != "":
		r.println(r.styles.Success.Render("✓ Planned (dry run)"))
	case res.OutputPath != "":
		r.println(r.styles.Success.Render("✓ Saved: " + res.OutputPath))
	default:
		r.println(r.styles.Success.Render("✓ Done"))
	}
}

// println ends any live line before writing s.
func (r *ConsoleReporter) println(s string) {
	if r.drawn {
		fmt.Fprintln(r.out)
		r.drawn = false
	}
	fmt.Fprintln(r.out, s)
}

func (r *ConsoleReporter) viewStage(u progress.Update) string {
	stageStyle := r.styles.Faint
	switch u.Stage {
	case progress.StageDeps, progress.StageProbe, progress.StageSelect:
		stageStyle = r.styles.StageMeta
	case progress.StageDownloading:
		stageStyle = r.styles.StageDL
	case progress.StagePostProcessing:
		stageStyle = r.styles.StagePost
	case progress.StageCompleted:
		stageStyle = r.styles.Success
	case progress.StageError:
		stageStyle = r.styles.Error
	}
	line := stageStyle.Render(fmt.Sprintf("%-14s", u.Stage))
	if u.Message != "" {
		line += " " + truncate(u.Message, 80)
	}
	return line
}

func (r *ConsoleReporter) viewProgress(u progress.Update) string {
	pct := u.Percent
	if pct > 100 {
		pct = 100
	}
	parts := []string{fmt.Sprintf("%s %5.1f%%", r.bar.ViewAs(pct/100.0), pct)}
	if u.Total != nil {
		parts = append(parts, "of "+*u.Total)
	}
	if u.Speed != nil {
		parts = append(parts, "at "+*u.Speed)
	}
	if u.ETA != nil {
		parts = append(parts, "ETA "+u.ETA.String())
	}
	return strings.Join(parts, " ")
}

func truncate(s string, n int) string {
	if n <= 0 || len([]rune(s)) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n-1]) + "…"
}
