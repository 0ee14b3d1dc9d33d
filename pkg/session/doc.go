// Package session provides the Manager, which serializes access to
// per-conversation state. The engine itself guarantees nothing about
// overlapping turns for one conversation; hosts route every
// load-advance-save cycle through Manager.WithLock instead.
package session
