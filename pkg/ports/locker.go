package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker coordinates session access across replicas.
// Duplicate or retried deliveries for the same conversation must not
// overlap inside an advance; the session manager uses a locker to
// serialize them when more than one process is involved.
type DistributedLocker interface {
	// Lock acquires a lock for the given key (typically a session ID).
	// It blocks until the lock is acquired or the context is canceled.
	// The returned UnlockFunc MUST be called to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
