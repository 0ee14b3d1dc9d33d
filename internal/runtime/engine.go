package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"parley/internal/logging"
	"parley/pkg/domain"
)

// Engine is the core slot-filling state machine.
//
// Advance evaluates exactly one step per invocation: the step under the
// session cursor. Either it returns a question for that step's earliest
// missing slot, or it runs the step's handler and returns its outcome.
// It never cascades into the next step within the same call; a completed
// step with a transition prompt moves the cursor so the NEXT call picks
// up the following step.
type Engine struct {
	dialog    *domain.Dialog
	separator string
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithSeparator overrides the text joining a handler result with its
// transition prompt.
func WithSeparator(sep string) EngineOption {
	return func(e *Engine) {
		e.separator = sep
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine for a validated dialog.
func NewEngine(dialog *domain.Dialog, opts ...EngineOption) *Engine {
	e := &Engine{
		dialog:    dialog,
		separator: domain.DefaultSeparator,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Advance records an optional incoming slot value, then evaluates the
// session's current step.
//
// The incoming value is written before any evaluation, even when the slot
// belongs to no step under evaluation, so out-of-order fills are kept and
// can satisfy a later step. Unknown slot names are accepted without error.
//
// Handler failures propagate to the caller; the session cursor is not
// advanced in that case, so the turn can be retried.
func (e *Engine) Advance(ctx context.Context, sess *domain.Session, slot, value string) (domain.Result, error) {
	if slot != "" {
		sess.Set(slot, value)
		e.logger.Debug("slot filled", "session_id", sess.ID, "slot", slot)
		e.emitSlotFill(ctx, sess, slot, value)
	}

	if sess.Status == domain.SessionCompleted || sess.Cursor >= e.dialog.Len() {
		sess.Status = domain.SessionCompleted
		e.logger.Warn("advance on completed session", "session_id", sess.ID)
		return domain.Result{Mode: domain.ModeStatement}, nil
	}

	step := e.dialog.Step(sess.Cursor)

	// Fail-fast prompting: ask for the earliest-declared missing slot of
	// the current step, one per turn.
	for _, s := range step.Slots {
		if _, ok := sess.Get(s.Name); !ok {
			e.logger.Debug("prompting for slot", "session_id", sess.ID, "step", step.ID, "slot", s.Name)
			e.emitPrompt(ctx, sess, step.ID, s.Name)
			return domain.Result{
				Mode: domain.ModeQuestion,
				Text: s.Prompt,
				Slot: s.Name,
			}, nil
		}
	}

	// Every required slot is present: run the handler.
	text, err := step.Handler(ctx, sess)
	if err != nil {
		return domain.Result{}, fmt.Errorf("step %q handler: %w", step.ID, err)
	}

	if step.Transition != "" {
		sess.Cursor++
		e.logger.Debug("step chained", "session_id", sess.ID, "step", step.ID, "cursor", sess.Cursor)
		e.emitStepRun(ctx, sess, step.ID, domain.ModeQuestion)
		return domain.Result{
			Mode: domain.ModeQuestion,
			Text: text + e.separator + step.Transition,
			Step: step.ID,
		}, nil
	}

	sess.Status = domain.SessionCompleted
	e.logger.Debug("dialog completed", "session_id", sess.ID, "step", step.ID)
	e.emitStepRun(ctx, sess, step.ID, domain.ModeStatement)
	return domain.Result{
		Mode: domain.ModeStatement,
		Text: text,
		Step: step.ID,
	}, nil
}

// Dialog returns the dialog this engine evaluates.
func (e *Engine) Dialog() *domain.Dialog {
	return e.dialog
}

func (e *Engine) emitSlotFill(ctx context.Context, sess *domain.Session, slot, value string) {
	if e.hooks.OnSlotFill == nil {
		return
	}
	e.hooks.OnSlotFill(ctx, &domain.SlotEvent{
		SessionID: sess.ID,
		Slot:      slot,
		Value:     value,
	})
}

func (e *Engine) emitPrompt(ctx context.Context, sess *domain.Session, stepID, slot string) {
	if e.hooks.OnPrompt == nil {
		return
	}
	e.hooks.OnPrompt(ctx, &domain.SlotEvent{
		SessionID: sess.ID,
		Step:      stepID,
		Slot:      slot,
	})
}

func (e *Engine) emitStepRun(ctx context.Context, sess *domain.Session, stepID string, mode domain.Mode) {
	if e.hooks.OnStepRun == nil {
		return
	}
	e.hooks.OnStepRun(ctx, &domain.StepEvent{
		SessionID: sess.ID,
		Step:      stepID,
		Mode:      mode,
	})
}
