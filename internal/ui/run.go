package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ytpick/internal/prompt"
)

// Prompter renders prompts with bubbletea, one short-lived program per
// question. Once a prompt closes, a one-line summary of the answer stays on
// screen.
type Prompter struct {
	ctx    context.Context
	in     io.Reader
	out    io.Writer
	styles Styles

	// program runs one prompt model to completion; nil means runProgram.
	program func(tea.Model) (tea.Model, error)
}

// NewPrompter returns a Prompter bound to the terminal.
func NewPrompter(ctx context.Context) *Prompter {
	return &Prompter{ctx: ctx, in: os.Stdin, out: os.Stderr, styles: defaultStyles()}
}

// run reports killed when the context ended the program while it was open,
// which callers treat as a cancelled answer.
func (p *Prompter) run(m tea.Model) (final tea.Model, killed bool, err error) {
	program := p.program
	if program == nil {
		program = p.runProgram
	}
	final, err = program(m)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil, true, nil
	}
	return final, false, err
}

func (p *Prompter) runProgram(m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m,
		tea.WithContext(p.ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	return prog.Run()
}

func (p *Prompter) echo(title, answer string) {
	fmt.Fprintf(p.out, "%s %s\n", p.styles.Prompt.Render("? "+title), p.styles.Answer.Render(answer))
}

func (p *Prompter) Select(q prompt.Select) (prompt.Answer[int], error) {
	final, killed, err := p.run(newSelectModel(q, p.styles))
	if err != nil {
		return prompt.Answer[int]{}, err
	}
	if killed {
		return prompt.Cancel[int](), nil
	}
	m := final.(listModel)
	if m.cancelled {
		return prompt.Cancel[int](), nil
	}
	p.echo(q.Message, m.answer())
	return prompt.Choice(m.cursor), nil
}

func (p *Prompter) MultiSelect(q prompt.MultiSelect) (prompt.Answer[[]int], error) {
	final, killed, err := p.run(newMultiSelectModel(q, p.styles))
	if err != nil {
		return prompt.Answer[[]int]{}, err
	}
	if killed {
		return prompt.Cancel[[]int](), nil
	}
	m := final.(listModel)
	if m.cancelled {
		return prompt.Cancel[[]int](), nil
	}
	p.echo(q.Message, m.answer())
	return prompt.Choice(m.selection()), nil
}

func (p *Prompter) Confirm(q prompt.Confirm) (prompt.Answer[bool], error) {
	final, killed, err := p.run(newConfirmModel(q, p.styles))
	if err != nil {
		return prompt.Answer[bool]{}, err
	}
	if killed {
		return prompt.Cancel[bool](), nil
	}
	m := final.(confirmModel)
	if m.cancelled {
		return prompt.Cancel[bool](), nil
	}
	p.echo(q.Message, m.answer())
	return prompt.Choice(m.value), nil
}

func (p *Prompter) Text(q prompt.Text) (prompt.Answer[string], error) {
	final, killed, err := p.run(newTextModel(q, p.styles))
	if err != nil {
		return prompt.Answer[string]{}, err
	}
	if killed {
		return prompt.Cancel[string](), nil
	}
	m := final.(textModel)
	if m.cancelled {
		return prompt.Cancel[string](), nil
	}
	p.echo(q.Message, m.answer())
	return prompt.Choice(m.answer()), nil
}
