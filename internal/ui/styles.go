package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Answer    lipgloss.Style
	Cursor    lipgloss.Style
	Selected  lipgloss.Style
	Option    lipgloss.Style
	Help      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Faint     lipgloss.Style
	StageMeta lipgloss.Style
	StageDL   lipgloss.Style
	StagePost lipgloss.Style
}

func defaultStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:     base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Prompt:    base.Bold(true),
		Answer:    base.Foreground(lipgloss.Color("#22D3EE")),
		Cursor:    base.Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		Selected:  base.Foreground(lipgloss.Color("#22C55E")),
		Option:    base.Foreground(lipgloss.Color("#D1D5DB")),
		Help:      base.Faint(true).Italic(true),
		Success:   base.Foreground(lipgloss.Color("#22C55E")),
		Error:     base.Foreground(lipgloss.Color("#EF4444")),
		Warning:   base.Foreground(lipgloss.Color("#F59E0B")),
		Faint:     base.Faint(true),
		StageMeta: base.Foreground(lipgloss.Color("#60A5FA")),
		StageDL:   base.Foreground(lipgloss.Color("#06B6D4")),
		StagePost: base.Foreground(lipgloss.Color("#D946EF")),
	}
}
