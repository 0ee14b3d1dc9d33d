package parley

import (
	"context"
	"log/slog"

	"parley/internal/logging"
	"parley/internal/runtime"
	"parley/pkg/domain"
)

// Engine is the high-level entry point for the Parley library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	opts    []runtime.EngineOption
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSeparator overrides the separator between a step result and its
// transition prompt (default "...").
func WithSeparator(sep string) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, runtime.WithSeparator(sep))
	}
}

// WithName labels the engine; the name is attached to log records.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New initializes an Engine for a validated dialog.
func New(dialog *domain.Dialog, opts ...Option) (*Engine, error) {
	if dialog == nil {
		return nil, domain.ErrNoSteps
	}

	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("dialog", eng.Name)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	}
	runtimeOpts = append(runtimeOpts, eng.opts...)

	eng.runtime = runtime.NewEngine(dialog, runtimeOpts...)
	return eng, nil
}

// Advance records an optional incoming (slot, value) pair and evaluates the
// session's current step, returning either a question or a statement.
// Pass an empty slot for a bare trigger with no new information.
func (e *Engine) Advance(ctx context.Context, sess *domain.Session, slot, value string) (domain.Result, error) {
	return e.runtime.Advance(ctx, sess, slot, value)
}

// Dialog returns the dialog definition this engine evaluates.
func (e *Engine) Dialog() *domain.Dialog {
	return e.runtime.Dialog()
}
