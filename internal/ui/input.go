package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ytpick/internal/prompt"
)

// confirmModel renders a yes/no prompt.
type confirmModel struct {
	title string
	help  string
	value bool

	done      bool
	cancelled bool
	styles    Styles
}

func newConfirmModel(q prompt.Confirm, styles Styles) confirmModel {
	return confirmModel{title: q.Message, help: q.Help, value: q.Default, styles: styles}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyLeft, tea.KeyRight, tea.KeyTab:
		m.value = !m.value
	case tea.KeyRunes:
		switch strings.ToLower(string(key.Runes)) {
		case "y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n":
			m.value = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) answer() string {
	if m.value {
		return "yes"
	}
	return "no"
}

func (m confirmModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	hint := "(y/N)"
	if m.value {
		hint = "(Y/n)"
	}
	s := m.styles.Prompt.Render("? "+m.title) + " " + m.styles.Faint.Render(hint) + " " + m.styles.Answer.Render(m.answer())
	if m.help != "" {
		s += "\n" + m.styles.Warning.Render("  "+m.help)
	}
	return s
}

// textModel renders a free text prompt prefilled with the default.
type textModel struct {
	title string
	help  string
	input textinput.Model

	done      bool
	cancelled bool
	styles    Styles
}

func newTextModel(q prompt.Text, styles Styles) textModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = q.Default
	ti.SetValue(q.Default)
	ti.CursorEnd()
	ti.Focus()
	return textModel{title: q.Message, help: q.Help, input: ti, styles: styles}
}

func (m textModel) Init() tea.Cmd { return textinput.Blink }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) answer() string { return m.input.Value() }

func (m textModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	s := m.styles.Prompt.Render("? "+m.title) + " " + m.input.View()
	if m.help != "" {
		s += "\n" + m.styles.Help.Render("  "+m.help)
	}
	return s
}
