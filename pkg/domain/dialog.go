package domain

import (
	"context"
	"fmt"
)

// Slot is a single named piece of information a step needs before it can run.
// The value is an opaque string; interpretation belongs to the step's handler.
type Slot struct {
	Name   string `json:"name" yaml:"name"`
	Prompt string `json:"prompt" yaml:"prompt"`
}

// SlotView is a read-only view over a session's filled slot values.
// Handlers receive one instead of the session itself so they cannot mutate
// dialog state mid-turn.
type SlotView interface {
	// Get returns the filled value for a slot name, if present.
	Get(name string) (string, bool)
}

// Handler produces a step's result text. The engine guarantees that every
// slot the step requires is present in the view before the handler runs.
type Handler func(ctx context.Context, slots SlotView) (string, error)

// Step is one unit of dialog: an ordered slot list (fill order), a handler,
// and an optional transition prompt that chains into the next step.
type Step struct {
	ID         string
	Slots      []Slot
	Handler    Handler
	Transition string
}

// Dialog is an immutable ordered sequence of steps. It is constructed once
// at startup and shared read-only across all sessions.
type Dialog struct {
	steps []Step
}

// NewDialog validates and freezes a step sequence.
// A dialog must have at least one step; every step needs a unique non-empty
// ID and a handler. Slot lists may be empty ("run immediately"), but each
// declared slot needs a name and a prompt, unique within its step.
func NewDialog(steps ...Step) (*Dialog, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	seenSteps := make(map[string]struct{}, len(steps))
	for i, step := range steps {
		if step.ID == "" {
			return nil, fmt.Errorf("step %d: missing ID", i)
		}
		if _, dup := seenSteps[step.ID]; dup {
			return nil, fmt.Errorf("step %q: duplicate ID", step.ID)
		}
		seenSteps[step.ID] = struct{}{}

		if step.Handler == nil {
			return nil, fmt.Errorf("step %q: missing handler", step.ID)
		}

		seenSlots := make(map[string]struct{}, len(step.Slots))
		for _, slot := range step.Slots {
			if slot.Name == "" {
				return nil, fmt.Errorf("step %q: slot with empty name", step.ID)
			}
			if slot.Prompt == "" {
				return nil, fmt.Errorf("step %q: slot %q has no prompt", step.ID, slot.Name)
			}
			if _, dup := seenSlots[slot.Name]; dup {
				return nil, fmt.Errorf("step %q: duplicate slot %q", step.ID, slot.Name)
			}
			seenSlots[slot.Name] = struct{}{}
		}
	}

	frozen := make([]Step, len(steps))
	copy(frozen, steps)
	return &Dialog{steps: frozen}, nil
}

// Steps returns the ordered step sequence.
// The returned slice is a copy; mutating it does not affect the dialog.
func (d *Dialog) Steps() []Step {
	out := make([]Step, len(d.steps))
	copy(out, d.steps)
	return out
}

// Len returns the number of steps.
func (d *Dialog) Len() int {
	return len(d.steps)
}

// Step returns the step at the given position.
func (d *Dialog) Step(i int) Step {
	return d.steps[i]
}
