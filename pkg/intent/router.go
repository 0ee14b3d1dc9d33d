// Package intent is a reference implementation of the intent-invocation
// boundary in front of the dialog engine. Platforms deliver named intents;
// the router maps each one to the slot it fills, to a bare trigger, or to
// a canned reply that bypasses the engine entirely (the fixed yes/no
// intents of voice platforms).
package intent

import (
	"context"
	"fmt"

	"parley/pkg/domain"
)

// Binding describes what a platform intent means to the dialog.
type Binding struct {
	// Slot is the slot the intent's value fills. Empty for bare triggers.
	Slot string

	// Reply, when set, is a canned statement returned without consulting
	// the engine.
	Reply string
}

// Advancer is the slice of the engine the router needs.
type Advancer interface {
	Advance(ctx context.Context, sess *domain.Session, slot, value string) (domain.Result, error)
}

// Router maps intent identifiers to bindings. It is constructed at
// startup and read-only afterwards.
type Router struct {
	bindings map[string]Binding
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{bindings: make(map[string]Binding)}
}

// Bind maps an intent to the slot it fills.
func (r *Router) Bind(intentName, slot string) *Router {
	r.bindings[intentName] = Binding{Slot: slot}
	return r
}

// Trigger maps an intent to a bare engine trigger carrying no slot.
func (r *Router) Trigger(intentName string) *Router {
	r.bindings[intentName] = Binding{}
	return r
}

// Reply maps an intent to a canned statement outside the slot-filling loop.
func (r *Router) Reply(intentName, text string) *Router {
	r.bindings[intentName] = Binding{Reply: text}
	return r
}

// Resolve looks up the binding for an intent.
func (r *Router) Resolve(intentName string) (Binding, bool) {
	b, ok := r.bindings[intentName]
	return b, ok
}

// Dispatch resolves an intent and drives the engine accordingly.
// Unknown intents are an error: unlike slot names, the intent surface is
// a closed set declared at startup.
func (r *Router) Dispatch(ctx context.Context, eng Advancer, sess *domain.Session, intentName, value string) (domain.Result, error) {
	binding, ok := r.Resolve(intentName)
	if !ok {
		return domain.Result{}, fmt.Errorf("unknown intent %q", intentName)
	}

	if binding.Reply != "" {
		return domain.Result{Mode: domain.ModeStatement, Text: binding.Reply}, nil
	}

	return eng.Advance(ctx, sess, binding.Slot, value)
}
