package domain

import "context"

// SlotEvent describes a slot being filled or prompted for.
type SlotEvent struct {
	SessionID string
	Step      string
	Slot      string
	Value     string
}

// StepEvent describes a step handler that ran to completion.
type StepEvent struct {
	SessionID string
	Step      string
	Mode      Mode
}

// LifecycleHooks lets hosts observe engine activity (logging, metrics)
// without coupling the core to any observability stack.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	// OnSlotFill fires after an incoming slot value is written to the session.
	OnSlotFill func(ctx context.Context, e *SlotEvent)

	// OnPrompt fires when the engine asks for a missing slot.
	OnPrompt func(ctx context.Context, e *SlotEvent)

	// OnStepRun fires after a step's handler produced its result.
	OnStepRun func(ctx context.Context, e *StepEvent)
}
