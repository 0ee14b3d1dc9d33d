// Package dsl provides a fluent builder for dialog definitions, for hosts
// that wire dialogs programmatically instead of loading them from files.
package dsl

import (
	"parley/pkg/domain"
)

// Builder accumulates steps for a dialog.
type Builder struct {
	steps []domain.Step
}

// StepBuilder provides a fluent API for configuring a single step.
type StepBuilder struct {
	step    domain.Step
	builder *Builder
}

// NewDialog starts a new dialog definition.
func NewDialog() *Builder {
	return &Builder{}
}

// Step begins a new step with the given identifier.
// Any step being configured before this call is sealed into the dialog.
func (b *Builder) Step(id string) *StepBuilder {
	return &StepBuilder{
		step:    domain.Step{ID: id},
		builder: b,
	}
}

// Build validates and returns the dialog.
func (b *Builder) Build() (*domain.Dialog, error) {
	return domain.NewDialog(b.steps...)
}

// Slot appends a required slot with its prompt. Declaration order is the
// fill order the engine prompts in.
func (s *StepBuilder) Slot(name, prompt string) *StepBuilder {
	s.step.Slots = append(s.step.Slots, domain.Slot{Name: name, Prompt: prompt})
	return s
}

// Handle sets the step's handler.
func (s *StepBuilder) Handle(h domain.Handler) *StepBuilder {
	s.step.Handler = h
	return s
}

// Transition sets the prompt that chains this step into the next one.
// A step without a transition terminates the dialog.
func (s *StepBuilder) Transition(msg string) *StepBuilder {
	s.step.Transition = msg
	return s
}

// Step seals the current step and begins the next one.
func (s *StepBuilder) Step(id string) *StepBuilder {
	s.builder.steps = append(s.builder.steps, s.step)
	return s.builder.Step(id)
}

// Build seals the current step and builds the dialog.
func (s *StepBuilder) Build() (*domain.Dialog, error) {
	s.builder.steps = append(s.builder.steps, s.step)
	return s.builder.Build()
}
