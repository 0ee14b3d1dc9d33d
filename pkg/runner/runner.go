// Package runner drives a dialog to completion over an IOHandler. It is
// the reference host for interactive frontends: it binds each free-text
// utterance to the slot the engine just prompted for, so no
// natural-language understanding is needed on the happy path.
package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"parley"
	"parley/internal/logging"
	"parley/pkg/domain"
	"parley/pkg/ports"
)

// Runner executes the conversation loop for one session.
type Runner struct {
	// Handler is the IO strategy. If nil, standard text IO is used.
	Handler IOHandler

	// Logger is used for internal debug logging. If nil, logs are dropped.
	Logger *slog.Logger

	// Store, when set, persists the session after every turn so a killed
	// process can resume mid-conversation.
	Store ports.SessionStore
}

// NewRunner creates a Runner with default stdin/stdout IO.
func NewRunner() *Runner {
	return &Runner{
		Handler: NewTextHandler(nil, nil),
		Logger:  logging.NewNop(),
	}
}

// Run advances the dialog until it produces a statement or input ends.
//
// The binding rule: when the engine asked for a specific slot, the next
// utterance fills that slot. Transition questions name no slot; the next
// utterance only nudges the engine into its follow-up step.
func (r *Runner) Run(ctx context.Context, eng *parley.Engine, sess *domain.Session) error {
	handler := r.Handler
	if handler == nil {
		handler = NewTextHandler(nil, nil)
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	slot, value := "", ""
	for {
		res, err := eng.Advance(ctx, sess, slot, value)
		if err != nil {
			return err
		}
		logger.Debug("turn", "session_id", sess.ID, "mode", res.Mode, "slot", res.Slot)

		if r.Store != nil {
			if err := r.Store.Save(ctx, sess); err != nil {
				return err
			}
		}

		if err := handler.Output(ctx, res); err != nil {
			return err
		}

		if !res.IsQuestion() {
			return nil
		}

		input, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("input closed, ending conversation", "session_id", sess.ID)
				return nil
			}
			return err
		}

		if res.Slot != "" {
			slot, value = res.Slot, input
		} else {
			slot, value = "", ""
		}
	}
}
