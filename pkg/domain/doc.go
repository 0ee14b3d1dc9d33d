// Package domain contains the core value types of the dialog manager:
// dialogs and their steps, per-conversation sessions, engine results, and
// the lifecycle events hosts can observe.
//
// Everything here is transport-agnostic. Adapters (HTTP, CLI, stores)
// depend on this package; it depends on nothing but the standard library.
package domain
