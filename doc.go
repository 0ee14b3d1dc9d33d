/*
Package parley is a slot-filling dialog manager for multi-step
conversational tasks.

A Dialog is an ordered sequence of steps; each step declares the slots it
needs (in fill order), a handler that turns the filled slots into a result
message, and an optional transition prompt that chains into the next step.
On every inbound utterance the engine either asks for the earliest missing
slot of the current step, or runs that step's handler and returns a final
or chained response.

# Concept

The engine is a pure synchronous computation over a Session value and an
immutable Dialog. Sessions are plain data passed into and out of every
call, never process-wide state: persistence (memory, redis) and per-session
serialization live behind ports so the core can be embedded in any host,
whether a CLI, an HTTP service, or a voice-platform webhook.

Natural-language understanding is the caller's job. The engine consumes a
named slot plus an opaque value (or a bare trigger) and produces a tagged
Result: a question that expects more input, or a statement that ends the
conversation.

# Usage

	package main

	import (
		"context"
		"log"

		"parley"
		"parley/pkg/domain"
		"parley/pkg/dsl"
	)

	func main() {
		dialog, err := dsl.NewDialog().
			Step("greet").
			Slot("Name", "Who are you?").
			Handle(func(ctx context.Context, slots domain.SlotView) (string, error) {
				name, _ := slots.Get("Name")
				return "Hello, " + name + "!", nil
			}).
			Build()
		if err != nil {
			log.Fatal(err)
		}

		eng, err := parley.New(dialog)
		if err != nil {
			log.Fatal(err)
		}

		sess := domain.NewSession("conv-1")
		ctx := context.Background()

		res, _ := eng.Advance(ctx, sess, "", "")
		log.Println(res.Text) // "Who are you?"

		res, _ = eng.Advance(ctx, sess, "Name", "Ada")
		log.Println(res.Text) // "Hello, Ada!"
	}
*/
package parley
