package domain

import "errors"

// ErrNoSteps is returned when a dialog is constructed without any steps.
var ErrNoSteps = errors.New("dialog has no steps")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")
