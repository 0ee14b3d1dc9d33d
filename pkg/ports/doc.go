// Package ports defines the interfaces between the dialog core and its
// adapters: session persistence and distributed locking. Implementations
// live under pkg/adapters.
package ports
