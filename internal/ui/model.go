package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ytpick/internal/prompt"
)

// listModel renders single and multi choice prompts.
type listModel struct {
	title   string
	help    string
	options []prompt.Option
	multi   bool
	picked  map[int]bool

	cursor int
	offset int
	height int // visible rows; <=0 shows all

	done      bool
	cancelled bool
	styles    Styles
}

func newSelectModel(q prompt.Select, styles Styles) listModel {
	cursor := q.Default
	if cursor < 0 || cursor >= len(q.Options) {
		cursor = 0
	}
	m := listModel{
		title:   q.Message,
		options: q.Options,
		cursor:  cursor,
		height:  10,
		styles:  styles,
	}
	m.scroll()
	return m
}

func newMultiSelectModel(q prompt.MultiSelect, styles Styles) listModel {
	return listModel{
		title:   q.Message,
		help:    q.Help,
		options: q.Options,
		multi:   true,
		picked:  make(map[int]bool),
		height:  10,
		styles:  styles,
	}
}

func (m listModel) Init() tea.Cmd { return nil }

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.options) == 0 && !m.multi {
			m.cancelled = true
		}
		m.done = true
		return m, tea.Quit
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown, tea.KeyTab:
		m.move(1)
	case tea.KeyHome:
		m.cursor = 0
		m.scroll()
	case tea.KeyEnd:
		m.cursor = len(m.options) - 1
		m.scroll()
	case tea.KeySpace:
		m.toggle()
	case tea.KeyRunes:
		switch string(key.Runes) {
		case "k":
			m.move(-1)
		case "j":
			m.move(1)
		case "x":
			m.toggle()
		}
	}
	return m, nil
}

func (m *listModel) move(delta int) {
	n := len(m.options)
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
	m.scroll()
}

func (m *listModel) toggle() {
	if !m.multi || len(m.options) == 0 {
		return
	}
	m.picked[m.cursor] = !m.picked[m.cursor]
}

// scroll keeps the cursor inside the visible window.
func (m *listModel) scroll() {
	if m.height <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// selection returns the picked indices in display order.
func (m listModel) selection() []int {
	if !m.multi {
		return []int{m.cursor}
	}
	out := []int{}
	for i := range m.options {
		if m.picked[i] {
			out = append(out, i)
		}
	}
	return out
}

// answer is the echo line printed once the prompt closes.
func (m listModel) answer() string {
	var parts []string
	for _, i := range m.selection() {
		if i < len(m.options) {
			parts = append(parts, m.options[i].Echo())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func (m listModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render("? " + m.title))
	b.WriteString("\n")

	end := len(m.options)
	if m.height > 0 && m.offset+m.height < end {
		end = m.offset + m.height
	}
	for i := m.offset; i < end; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		label := m.styles.Option.Render(m.options[i].Label)
		if m.multi {
			box := "[ ] "
			if m.picked[i] {
				box = m.styles.Selected.Render("[x] ")
			}
			label = box + label
		}
		b.WriteString(cursor + label + "\n")
	}

	help := "↑/↓ move • enter select • esc cancel"
	if m.multi {
		help = "↑/↓ move • space toggle • enter confirm • esc cancel"
		if m.help != "" {
			help = m.help + " • " + help
		}
	}
	if m.height > 0 && len(m.options) > m.height {
		help = fmt.Sprintf("%d/%d • %s", m.cursor+1, len(m.options), help)
	}
	b.WriteString(m.styles.Help.Render(help))
	return b.String()
}
