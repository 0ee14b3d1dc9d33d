// Package middleware provides SessionStore decorators: at-rest encryption
// and PII masking. Sessions collect exactly the kind of values (phone
// numbers, addresses) that should not sit in a store as plaintext JSON;
// wrapping the store keeps that concern out of the engine and adapters.
package middleware

import "parley/pkg/ports"

// Middleware allows wrapping a SessionStore to add behavior.
type Middleware func(ports.SessionStore) ports.SessionStore
