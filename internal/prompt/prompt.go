// Package prompt defines the questions the selection flow asks and the
// answers it expects back. Rendering lives in internal/ui.
package prompt

// Answer is either a value or a cancellation. Cancelled answers carry the
// zero Value.
type Answer[T any] struct {
	Value     T
	Cancelled bool
}

// Choice wraps a picked value.
func Choice[T any](v T) Answer[T] { return Answer[T]{Value: v} }

// Cancel returns a cancelled answer.
func Cancel[T any]() Answer[T] { return Answer[T]{Cancelled: true} }

// Option is one selectable row.
type Option struct {
	Label string
	// Answer is echoed after the row is picked; empty means echo Label.
	Answer string
}

// Echo returns the text shown once the option is chosen.
func (o Option) Echo() string {
	if o.Answer != "" {
		return o.Answer
	}
	return o.Label
}

// Select asks for exactly one of Options.
type Select struct {
	Message string
	Options []Option
	Default int
}

// MultiSelect asks for any subset of Options; an empty subset is valid.
type MultiSelect struct {
	Message string
	Options []Option
	Help    string
}

// Confirm asks a yes/no question.
type Confirm struct {
	Message string
	Default bool
	Help    string
}

// Text asks for a line of free text.
type Text struct {
	Message string
	Default string
	Help    string
}

// Prompter renders prompts. The error return is reserved for I/O failures;
// user cancellation is reported through Answer.Cancelled.
type Prompter interface {
	Select(q Select) (Answer[int], error)
	MultiSelect(q MultiSelect) (Answer[[]int], error)
	Confirm(q Confirm) (Answer[bool], error)
	Text(q Text) (Answer[string], error)
}
