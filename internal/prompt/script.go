package prompt

import (
	"fmt"
	"sync"
)

// Script is a Prompter that replays canned answers in order. It records
// every question it was asked. Intended for tests and non-interactive runs.
type Script struct {
	mu      sync.Mutex
	answers []any
	Asked   []any
}

// NewScript builds a Script. Each answer must be an Answer[int],
// Answer[[]int], Answer[bool] or Answer[string] matching the prompt kind
// it will be consumed by.
func NewScript(answers ...any) *Script {
	return &Script{answers: answers}
}

// Remaining reports how many answers were not consumed.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

func next[T any](s *Script, q any) (Answer[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Asked = append(s.Asked, q)
	if len(s.answers) == 0 {
		return Answer[T]{}, fmt.Errorf("script exhausted at %T", q)
	}
	a, ok := s.answers[0].(Answer[T])
	if !ok {
		return Answer[T]{}, fmt.Errorf("script answer %T does not fit %T", s.answers[0], q)
	}
	s.answers = s.answers[1:]
	return a, nil
}

func (s *Script) Select(q Select) (Answer[int], error)             { return next[int](s, q) }
func (s *Script) MultiSelect(q MultiSelect) (Answer[[]int], error) { return next[[]int](s, q) }
func (s *Script) Confirm(q Confirm) (Answer[bool], error)          { return next[bool](s, q) }
func (s *Script) Text(q Text) (Answer[string], error)              { return next[string](s, q) }

// Defaults is a Prompter that accepts every default without asking.
// Multi-selects resolve to the empty subset.
type Defaults struct{}

func (Defaults) Select(q Select) (Answer[int], error) {
	if len(q.Options) == 0 {
		return Cancel[int](), nil
	}
	return Choice(q.Default), nil
}
func (Defaults) MultiSelect(MultiSelect) (Answer[[]int], error) { return Choice([]int{}), nil }
func (Defaults) Confirm(q Confirm) (Answer[bool], error)        { return Choice(q.Default), nil }
func (Defaults) Text(q Text) (Answer[string], error)            { return Choice(q.Default), nil }
